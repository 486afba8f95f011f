// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bloom

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/luxfi/countercontext/counter"
)

// Filter is a bloom filter descriptor: (k, m, bits). The bucket-index
// algorithm is core (HashBuckets); the bit storage here is backed by
// bits-and-blooms/bitset.
type Filter struct {
	k    uint16
	m    uint64
	bits *bitset.BitSet
}

// New builds an empty Filter for k hashes over m buckets.
func New(k uint16, m uint64) (*Filter, error) {
	if m == 0 || m > MaxBits {
		return nil, counter.NewCoreError(counter.ReasonUnsupportedBloomSize, "m must be in (0, MaxBits]")
	}
	if k == 0 {
		return nil, counter.NewCoreError(counter.ReasonUnsupportedBloomSize, "k must be >= 1")
	}
	return &Filter{k: k, m: m, bits: bitset.New(uint(m))}, nil
}

// K returns the configured hash count.
func (f *Filter) K() uint16 { return f.k }

// M returns the configured bucket count.
func (f *Filter) M() uint64 { return f.m }

// Add sets the k buckets derived from key.
func (f *Filter) Add(key []byte) error {
	buckets, err := HashBuckets(key, f.k, f.m)
	if err != nil {
		return err
	}
	for _, b := range buckets {
		f.bits.Set(uint(b))
	}
	return nil
}

// MayContain reports whether key's derived buckets are all set. A false
// result is conclusive; a true result may be a false positive.
func (f *Filter) MayContain(key []byte) (bool, error) {
	buckets, err := HashBuckets(key, f.k, f.m)
	if err != nil {
		return false, err
	}
	for _, b := range buckets {
		if !f.bits.Test(uint(b)) {
			return false, nil
		}
	}
	return true, nil
}
