// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counterconfig

import "errors"

// Validation errors returned by Validate.
var (
	ErrInvalidIdWidth    = errors.New("id width must be 4 (IPv4) or 16 (IPv6)")
	ErrInvalidBloomK     = errors.New("bloom k must be >= 1")
	ErrInvalidBloomM     = errors.New("bloom m must be >= 1")
	ErrBloomMExceedsMax  = errors.New("bloom m exceeds the maximum bucket count")
	ErrGossipIntervalNeg = errors.New("gossip interval must not be negative")
)

// maxBloomM mirrors bloom.MaxBits; kept independent so this package doesn't
// need to import bloom just to validate a parameter.
const maxBloomM = 1 << 34

// Validate rejects parameter combinations that counter or bloom would
// reject anyway, so a misconfiguration surfaces at startup instead of on
// the first Update or bloom.New call.
func Validate(p Parameters) error {
	if p.IdWidth != 4 && p.IdWidth != 16 {
		return ErrInvalidIdWidth
	}
	if p.BloomK < 1 {
		return ErrInvalidBloomK
	}
	if p.BloomM < 1 {
		return ErrInvalidBloomM
	}
	if p.BloomM > maxBloomM {
		return ErrBloomMExceedsMax
	}
	if p.GossipInterval < 0 {
		return ErrGossipIntervalNeg
	}
	return nil
}
