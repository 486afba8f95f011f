// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoreErrorMatchesSentinel(t *testing.T) {
	err := NewCoreError(ReasonMalformedContext, "len(ctx) mod stepLength != 0")
	require.True(t, errors.Is(err, ErrMalformedContext))
	require.False(t, errors.Is(err, ErrBadResponseFrame))
}

func TestReasonString(t *testing.T) {
	require.Equal(t, "malformed_context", ReasonMalformedContext.String())
	require.Equal(t, "bad_response_frame", ReasonBadResponseFrame.String())
	require.Equal(t, "unsupported_bloom_size", ReasonUnsupportedBloomSize.String())
	require.Equal(t, "decode_error", ReasonDecode.String())
}

func TestCoreErrorMessageContainsSentinelText(t *testing.T) {
	err := NewCoreError(ReasonDecode, "truncated frame")
	require.Contains(t, err.Error(), "counter: decode error")
}
