// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"github.com/cockroachdb/errors"
)

// Reason is a typed failure reason surfaced by the counter package and its
// sibling bloom/readresponse packages, so callers can switch on a reason
// instead of matching message strings.
type Reason int

const (
	// ReasonMalformedContext means a context's length is not a multiple of
	// stepLength.
	ReasonMalformedContext Reason = iota
	// ReasonBadResponseFrame means a deserialized read-response frame's
	// digest/data tag disagreed with its size header.
	ReasonBadResponseFrame
	// ReasonUnsupportedBloomSize means a requested (k, m) cannot be
	// satisfied under the bitset size cap.
	ReasonUnsupportedBloomSize
	// ReasonDecode means an upstream byte-read failed during deserialization.
	ReasonDecode
)

func (r Reason) String() string {
	switch r {
	case ReasonMalformedContext:
		return "malformed_context"
	case ReasonBadResponseFrame:
		return "bad_response_frame"
	case ReasonUnsupportedBloomSize:
		return "unsupported_bloom_size"
	case ReasonDecode:
		return "decode_error"
	default:
		return "unknown"
	}
}

// Sentinel errors, markable via errors.Is after a CoreError has crossed a
// package boundary.
var (
	ErrMalformedContext    = errors.New("counter: malformed context")
	ErrBadResponseFrame    = errors.New("counter: bad response frame")
	ErrUnsupportedBloomSize = errors.New("counter: unsupported bloom size")
	ErrDecode              = errors.New("counter: decode error")
)

func sentinelFor(r Reason) error {
	switch r {
	case ReasonMalformedContext:
		return ErrMalformedContext
	case ReasonBadResponseFrame:
		return ErrBadResponseFrame
	case ReasonUnsupportedBloomSize:
		return ErrUnsupportedBloomSize
	case ReasonDecode:
		return ErrDecode
	default:
		return errors.New("counter: unknown error")
	}
}

// CoreError is the structured failure type returned by the operations of
// this package and of bloom/readresponse; the one exception is
// ReadResponse.MarshalBinary, which returns its row codec's error
// unchanged. It wraps a Reason and, where
// useful, a structured detail string (via errors.WithDetail) instead of
// folding detail into the message.
type CoreError struct {
	Reason Reason
	cause  error
}

// NewCoreError builds a CoreError for the given reason with a freeform
// detail string attached through errors.WithDetail.
func NewCoreError(reason Reason, detail string) *CoreError {
	cause := errors.Mark(sentinelFor(reason), sentinelFor(reason))
	if detail != "" {
		cause = errors.WithDetail(cause, detail)
	}
	return &CoreError{Reason: reason, cause: cause}
}

func (e *CoreError) Error() string {
	return e.cause.Error()
}

func (e *CoreError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is(err, ErrMalformedContext) succeed against a *CoreError.
func (e *CoreError) Is(target error) bool {
	return errors.Is(e.cause, target)
}
