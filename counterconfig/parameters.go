// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package counterconfig holds the tunable parameters a replica chooses at
// startup for its counter-context and bloom-filter components: the node Id
// width L, and the default k/m a component should pass to bloom.New when it
// doesn't have better information. These never vary within a running
// process, so they are constructed once and passed down, not looked up.
package counterconfig

import "time"

// Parameters bundles the process-wide constants for a counter-context
// replica.
type Parameters struct {
	// IdWidth is the byte width L of a node Id: 4 for IPv4, 16 for IPv6.
	IdWidth int

	// BloomK is the default number of hash functions a read-repair bloom
	// filter is built with.
	BloomK uint16

	// BloomM is the default number of buckets a read-repair bloom filter
	// is sized to.
	BloomM uint64

	// GossipInterval is how often a replica exchanges digests with its
	// peers. Unused by the pure counter/bloom packages; carried here for
	// callers that schedule repair rounds.
	GossipInterval time.Duration
}

// Default returns the parameters most deployments should start from: IPv4
// node Ids and a bloom filter sized for a few thousand rows per round.
func Default() Parameters {
	return Parameters{
		IdWidth:        4,
		BloomK:         5,
		BloomM:         10000,
		GossipInterval: time.Second,
	}
}

// Compact returns parameters for a small cluster: fewer hash functions and
// buckets, trading false-positive rate for memory.
func Compact() Parameters {
	return Parameters{
		IdWidth:        4,
		BloomK:         3,
		BloomM:         1000,
		GossipInterval: time.Second,
	}
}

// Large returns parameters for an IPv6 deployment with a large row count per
// repair round.
func Large() Parameters {
	return Parameters{
		IdWidth:        16,
		BloomK:         7,
		BloomM:         1_000_000,
		GossipInterval: 5 * time.Second,
	}
}
