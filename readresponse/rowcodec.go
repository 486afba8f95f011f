// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package readresponse implements the read-response envelope: a tagged
// variant carrying either a content digest or a full row, with an exact
// wire framing. The row's own serialization is a named collaborator
// (RowCodec) supplied by the storage layer; this package never inspects
// row bytes beyond delegating to it.
package readresponse

import "encoding"

// RowCodec is the storage layer's row serializer, referenced but not
// implemented here. Any type able to marshal/unmarshal itself to/from bytes
// satisfies it.
type RowCodec interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}
