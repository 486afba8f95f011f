// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterAddAndMayContain(t *testing.T) {
	f, err := New(5, 10000)
	require.NoError(t, err)

	require.NoError(t, f.Add([]byte("row-a")))
	require.NoError(t, f.Add([]byte("row-b")))

	contains, err := f.MayContain([]byte("row-a"))
	require.NoError(t, err)
	require.True(t, contains)

	contains, err = f.MayContain([]byte("row-b"))
	require.NoError(t, err)
	require.True(t, contains)
}

func TestFilterRejectsInvalidParameters(t *testing.T) {
	_, err := New(0, 1000)
	require.Error(t, err)
	_, err = New(3, 0)
	require.Error(t, err)
}

func TestFilterAbsentKeyMayBeFalse(t *testing.T) {
	f, err := New(5, 100000)
	require.NoError(t, err)
	require.NoError(t, f.Add([]byte("present")))

	// Not a universal property (false positives are allowed), but a
	// sparse filter over a large m should not claim every other key.
	contains, err := f.MayContain([]byte("absent-entirely-different-key"))
	require.NoError(t, err)
	require.False(t, contains)
}
