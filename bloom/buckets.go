// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bloom

import "github.com/luxfi/countercontext/counter"

// MaxBits bounds the bitset size a Filter will allocate; requests above
// this cap fail with ReasonUnsupportedBloomSize at construction, never
// during a hot-path Add/MayContain call.
const MaxBits = 1 << 34

// HashBuckets derives k bucket indices for key under a bucket space of size
// m, using two-hash combinatorial generation: h1 = murmur32(key, 0),
// h2 = murmur32(key, h1), bucket[i] = abs((h1 + i*h2) mod m). Two-hash
// generation behaves, in false-positive rate, equivalently to k independent
// hashes (Kirsch-Mitzenmacher).
func HashBuckets(key []byte, k uint16, m uint64) ([]uint64, error) {
	if m == 0 || m > MaxBits {
		return nil, counter.NewCoreError(counter.ReasonUnsupportedBloomSize, "m must be in (0, MaxBits]")
	}
	if k == 0 {
		return nil, counter.NewCoreError(counter.ReasonUnsupportedBloomSize, "k must be >= 1")
	}

	h1 := Murmur32(key, 0)
	h2 := Murmur32(key, h1)

	mi := int64(m)
	buckets := make([]uint64, k)
	for i := uint16(0); i < k; i++ {
		v := int64(int32(h1)) + int64(i)*int64(int32(h2))
		v %= mi
		if v < 0 {
			v = -v
		}
		buckets[i] = uint64(v)
	}
	return buckets, nil
}
