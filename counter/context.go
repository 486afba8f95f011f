// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package counter implements the partitioned counter context: a compact,
// byte-addressable per-node version vector carrying both a logical clock
// and a running count, plus the operations a replica performs on it
// (update, diff, merge).
package counter

import (
	"bytes"
	"encoding/binary"
	"net"

	"github.com/luxfi/countercontext/counter/localid"
)

// Context is the packed byte sequence of (id, clock, count) tuples for one
// counter. Its length is always an exact multiple of stepLength(L). The
// external byte layout is the contract: Context is persisted and
// transported unchanged, never rewritten into a structured tuple list at
// rest.
type Context []byte

// Tuple is one node's slot within a Context, decoded for convenience. It is
// never the storage representation; Context itself is.
type Tuple struct {
	ID    []byte
	Clock uint64
	Count int64
}

// stepLength returns L + 8 + 8, the fixed byte width of one tuple for an Id
// of length L.
func stepLength(l int) int {
	return l + 8 + 8
}

// Create returns an empty context: no node has ever written.
func Create() Context {
	return Context{}
}

// AddressBytes resolves a net.IP to the Id bytes used as a tuple's node
// identifier, normalized to the process-wide L established by
// localid.Resolve (4 for IPv4, 16 for IPv6). It fails if ip cannot be
// represented in L bytes.
func AddressBytes(ip net.IP) ([]byte, error) {
	l := localid.Len()
	switch l {
	case net.IPv4len:
		v4 := ip.To4()
		if v4 == nil {
			return nil, NewCoreError(ReasonMalformedContext, "address is not representable in 4 bytes for this process's established L")
		}
		return []byte(v4), nil
	case net.IPv6len:
		v6 := ip.To16()
		if v6 == nil {
			return nil, NewCoreError(ReasonMalformedContext, "address is not representable in 16 bytes for this process's established L")
		}
		return []byte(v6), nil
	default:
		return nil, NewCoreError(ReasonMalformedContext, "unsupported process-wide id length")
	}
}

// idLen returns L, the process-wide Id length established once at startup
// and never varied afterward. Every context this process touches,
// regardless of origin, is keyed at that L; a context whose length doesn't
// divide evenly by stepLength(L) is malformed, not differently-keyed.
func idLen(_ Context) (int, error) {
	return localid.Len(), nil
}

func validate(ctx Context, l int) error {
	if len(ctx)%stepLength(l) != 0 {
		return NewCoreError(ReasonMalformedContext, "len(ctx) mod stepLength != 0")
	}
	return nil
}

// tupleCount returns len(ctx) / stepLength(l).
func tupleCount(ctx Context, l int) int {
	return len(ctx) / stepLength(l)
}

// readTuple decodes the tuple at the given step index.
func readTuple(ctx Context, l int, step int) Tuple {
	off := step * stepLength(l)
	id := make([]byte, l)
	copy(id, ctx[off:off+l])
	clock := binary.BigEndian.Uint64(ctx[off+l : off+l+8])
	count := int64(binary.BigEndian.Uint64(ctx[off+l+8 : off+l+16]))
	return Tuple{ID: id, Clock: clock, Count: count}
}

// writeTuple encodes a tuple at the given step index of dst.
func writeTuple(dst []byte, l int, step int, id []byte, clock uint64, count int64) {
	off := step * stepLength(l)
	copy(dst[off:off+l], id)
	binary.BigEndian.PutUint64(dst[off+l:off+l+8], clock)
	binary.BigEndian.PutUint64(dst[off+l+8:off+l+16], uint64(count))
}

// compareSubrange does an unsigned lexicographic compare of len bytes
// starting at the given offsets; Go's byte slices already compare this way
// under bytes.Compare, so this is a thin, named wrapper for readability at
// call sites that compare tuple subranges.
func compareSubrange(a []byte, aOff int, b []byte, bOff int, length int) int {
	return bytes.Compare(a[aOff:aOff+length], b[bOff:bOff+length])
}

// bytesCompare is the unsigned lexicographic compare used throughout Diff
// and Merge to order and match tuple Ids.
func bytesCompare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// localIDForLen returns the process-wide local Id if its established
// length matches l, or nil if it doesn't (e.g. this process is IPv4-local
// but the context under reconciliation is IPv6-keyed).
func localIDForLen(l int) []byte {
	id := localid.Resolve()
	if len(id) != l {
		return nil
	}
	return id
}
