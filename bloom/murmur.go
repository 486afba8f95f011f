// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bloom implements the mixing hash and bucket-index derivation a
// Bloom filter collaborator uses to decide which sstables to skip. Only the
// bucket-index algorithm is core; the bitset storing those bits belongs to
// the collaborator, here backed by github.com/bits-and-blooms/bitset.
package bloom

import "encoding/binary"

const (
	mul64 = 0xc6a4a7935bd1e995
	r64   = 47
	mul32 = 0x5bd1e995
	r32   = 24
)

// Murmur64 is the 64-bit Murmur2-style mix (m = 0xc6a4a7935bd1e995,
// r = 47, seed masked to its low 32 bits). HashBuckets does not call it;
// bucket indices are derived from Murmur32. It is implemented directly
// rather than delegated to a generic hashing library so its output is
// bit-exact.
func Murmur64(key []byte, seed uint64) uint64 {
	h := (seed & 0xffffffff) ^ (uint64(len(key)) * mul64)

	nblocks := len(key) / 8
	for i := 0; i < nblocks; i++ {
		k := binary.LittleEndian.Uint64(key[i*8 : i*8+8])
		k *= mul64
		k ^= k >> r64
		k *= mul64
		h ^= k
		h *= mul64
	}

	tail := key[nblocks*8:]
	switch len(tail) {
	case 7:
		h ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		h ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		h ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		h ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		h ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		h ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		h ^= uint64(tail[0])
		h *= mul64
	}

	h ^= h >> r64
	h *= mul64
	h ^= h >> r64
	return h
}

// Murmur32 is the 32-bit analogue of Murmur64, used to derive the seed pair
// that feeds bucket derivation in HashBuckets.
func Murmur32(key []byte, seed uint32) uint32 {
	h := seed ^ uint32(len(key))*mul32

	nblocks := len(key) / 4
	for i := 0; i < nblocks; i++ {
		k := binary.LittleEndian.Uint32(key[i*4 : i*4+4])
		k *= mul32
		k ^= k >> r32
		k *= mul32
		h ^= k
		h *= mul32
	}

	tail := key[nblocks*4:]
	switch len(tail) {
	case 3:
		h ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(tail[0])
		h *= mul32
	}

	h ^= h >> 13
	h *= mul32
	h ^= h >> 15
	return h
}
