// Package wiretest builds protobuf wire fixtures for tests.
package wiretest

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Message concatenates encoded fields.
func Message(fields ...[]byte) []byte {
	var out []byte
	for _, f := range fields {
		out = append(out, f...)
	}
	return out
}

// Varint encodes a varint field.
func Varint(num protowire.Number, v uint64) []byte {
	b := protowire.AppendTag(nil, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// Bytes encodes a length-delimited field.
func Bytes(num protowire.Number, payload []byte) []byte {
	b := protowire.AppendTag(nil, num, protowire.BytesType)
	return protowire.AppendBytes(b, payload)
}

// String encodes a length-delimited field holding s.
func String(num protowire.Number, s string) []byte {
	return Bytes(num, []byte(s))
}

// Fixed32 encodes a fixed32 field.
func Fixed32(num protowire.Number, v uint32) []byte {
	b := protowire.AppendTag(nil, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, v)
}

// Fixed64 encodes a fixed64 field.
func Fixed64(num protowire.Number, v uint64) []byte {
	b := protowire.AppendTag(nil, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, v)
}

// Nest wraps inner in field num of a new message, levels times.
func Nest(num protowire.Number, inner []byte, levels int) []byte {
	out := inner
	for i := 0; i < levels; i++ {
		out = Bytes(num, out)
	}
	return out
}
