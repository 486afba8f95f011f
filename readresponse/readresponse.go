// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package readresponse

import (
	"encoding/binary"

	"github.com/luxfi/countercontext/counter"
)

// ReadResponse is one of Digest(d) or Data(row); exactly one shape is
// inhabited.
type ReadResponse struct {
	isDigest bool
	digest   []byte
	row      RowCodec
}

// NewDigest builds a Digest response. d must be non-empty.
func NewDigest(d []byte) (ReadResponse, error) {
	if len(d) == 0 {
		return ReadResponse{}, counter.NewCoreError(counter.ReasonBadResponseFrame, "digest must be non-empty")
	}
	return ReadResponse{
		isDigest: true,
		digest:   append([]byte(nil), d...),
	}, nil
}

// NewData builds a Data response carrying row.
func NewData(row RowCodec) ReadResponse {
	return ReadResponse{row: row}
}

// IsDigest reports whether this response carries a digest rather than a row.
func (r ReadResponse) IsDigest() bool {
	return r.isDigest
}

// Digest returns the carried digest, or an error if this is a Data response.
func (r ReadResponse) Digest() ([]byte, error) {
	if !r.isDigest {
		return nil, counter.NewCoreError(counter.ReasonBadResponseFrame, "response carries a row, not a digest")
	}
	return r.digest, nil
}

// Row returns the carried row, or an error if this is a Digest response.
func (r ReadResponse) Row() (RowCodec, error) {
	if r.isDigest {
		return nil, counter.NewCoreError(counter.ReasonBadResponseFrame, "response carries a digest, not a row")
	}
	return r.row, nil
}

// MarshalBinary produces the wire form: a big-endian i32 digestSize,
// digestSize raw bytes, a u8 isDigest tag, and (for Data) the row's own
// serialized form immediately after.
func (r ReadResponse) MarshalBinary() ([]byte, error) {
	var rowBytes []byte
	if !r.isDigest {
		var err error
		rowBytes, err = r.row.MarshalBinary()
		if err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, 4+len(r.digest)+1+len(rowBytes))
	var sizeBuf [4]byte
	binary.BigEndian.PutUint32(sizeBuf[:], uint32(len(r.digest)))
	out = append(out, sizeBuf[:]...)
	out = append(out, r.digest...)
	if r.isDigest {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}
	out = append(out, rowBytes...)
	return out, nil
}

// Unmarshal decodes b into a ReadResponse. newRow is called only when the
// frame is tagged as Data, to obtain a zero-value row to unmarshal into;
// the storage layer supplies it since the row's concrete type is not known
// to this package.
func Unmarshal(b []byte, newRow func() RowCodec) (ReadResponse, error) {
	if len(b) < 5 {
		return ReadResponse{}, counter.NewCoreError(counter.ReasonDecode, "frame shorter than the fixed header")
	}

	digestSize := int32(binary.BigEndian.Uint32(b[0:4]))
	if digestSize < 0 {
		return ReadResponse{}, counter.NewCoreError(counter.ReasonDecode, "negative digestSize")
	}
	offset := 4
	if offset+int(digestSize) > len(b) {
		return ReadResponse{}, counter.NewCoreError(counter.ReasonDecode, "digestSize exceeds frame length")
	}
	digest := b[offset : offset+int(digestSize)]
	offset += int(digestSize)

	if offset >= len(b) {
		return ReadResponse{}, counter.NewCoreError(counter.ReasonDecode, "frame missing isDigest tag")
	}
	isDigest := b[offset] != 0
	offset++

	if isDigest != (digestSize > 0) {
		return ReadResponse{}, counter.NewCoreError(counter.ReasonBadResponseFrame, "isDigest tag disagrees with digestSize header")
	}

	if isDigest {
		return NewDigest(digest)
	}

	row := newRow()
	if err := row.UnmarshalBinary(b[offset:]); err != nil {
		return ReadResponse{}, counter.NewCoreError(counter.ReasonDecode, err.Error())
	}
	return NewData(row), nil
}
