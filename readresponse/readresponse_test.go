// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package readresponse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/luxfi/countercontext/counter"
	"github.com/luxfi/countercontext/readresponse/mocks"
)

// testRow is a minimal RowCodec used where a full mock isn't needed.
type testRow struct {
	data []byte
}

func (r *testRow) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), r.data...), nil
}

func (r *testRow) UnmarshalBinary(b []byte) error {
	r.data = append([]byte(nil), b...)
	return nil
}

// S6: Digest(0xdeadbeef) serializes to [00 00 00 04][de ad be ef][01].
func TestScenarioS6Digest(t *testing.T) {
	resp, err := NewDigest([]byte{0xde, 0xad, 0xbe, 0xef})
	require.NoError(t, err)

	wire, err := resp.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x04, 0xde, 0xad, 0xbe, 0xef, 0x01}, wire)

	decoded, err := Unmarshal(wire, func() RowCodec { return &testRow{} })
	require.NoError(t, err)
	require.True(t, decoded.IsDigest())
	d, err := decoded.Digest()
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, d)
}

// S6: Data(row) with len(row)=N serializes to [00 00 00 00][][00]<row bytes>.
func TestScenarioS6Data(t *testing.T) {
	row := &testRow{data: []byte("hello-row")}
	resp := NewData(row)

	wire, err := resp.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00}, wire[:5])
	require.Equal(t, []byte("hello-row"), wire[5:])

	decoded, err := Unmarshal(wire, func() RowCodec { return &testRow{} })
	require.NoError(t, err)
	require.False(t, decoded.IsDigest())
	gotRow, err := decoded.Row()
	require.NoError(t, err)
	require.Equal(t, row.data, gotRow.(*testRow).data)
}

func TestNewDigestRejectsEmpty(t *testing.T) {
	_, err := NewDigest(nil)
	require.Error(t, err)
}

func TestDigestAccessorsOnDataResponse(t *testing.T) {
	resp := NewData(&testRow{data: []byte("x")})
	_, err := resp.Digest()
	require.Error(t, err)
}

func TestRowAccessorOnDigestResponse(t *testing.T) {
	resp, err := NewDigest([]byte{1})
	require.NoError(t, err)
	_, err = resp.Row()
	require.Error(t, err)
}

// Property 12: deserialization fails iff (digestSize > 0) != isDigest.
func TestTagSizeDisagreementRejected(t *testing.T) {
	// digestSize says 4 bytes of digest, but isDigest tag says Data (0).
	frame := []byte{0x00, 0x00, 0x00, 0x04, 0xaa, 0xbb, 0xcc, 0xdd, 0x00}
	_, err := Unmarshal(frame, func() RowCodec { return &testRow{} })
	require.Error(t, err)
	require.True(t, errors.Is(err, counter.ErrBadResponseFrame))
}

func TestUnmarshalRejectsShortFrame(t *testing.T) {
	_, err := Unmarshal([]byte{0x00, 0x00}, func() RowCodec { return &testRow{} })
	require.Error(t, err)
}

// Property 1: round trip for ReadResponse.
func TestRoundTrip(t *testing.T) {
	resp, err := NewDigest([]byte("a-content-digest"))
	require.NoError(t, err)
	wire, err := resp.MarshalBinary()
	require.NoError(t, err)
	decoded, err := Unmarshal(wire, func() RowCodec { return &testRow{} })
	require.NoError(t, err)
	rewire, err := decoded.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, wire, rewire)
}

func TestMarshalUsesMockRowCodec(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	row := mocks.NewMockRowCodec(ctrl)
	row.EXPECT().MarshalBinary().Return([]byte("mocked"), nil)

	resp := NewData(row)
	wire, err := resp.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte("mocked"), wire[5:])
}

func TestMarshalPropagatesRowError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	row := mocks.NewMockRowCodec(ctrl)
	row.EXPECT().MarshalBinary().Return(nil, boom)

	resp := NewData(row)
	_, err := resp.MarshalBinary()
	require.ErrorIs(t, err, boom)
}
