package input

import "encoding/binary"

// GRPCHeaderLen is the size of the gRPC length-prefixed message header:
// one compression flag byte and a 4-byte big-endian length.
const GRPCHeaderLen = 5

// GRPCHeader is the parsed gRPC message prefix. The declared length is
// informational only and never validated.
type GRPCHeader struct {
	Compressed bool
	Length     uint32
}

// Matches reports whether the declared length equals the number of bytes
// that follow the header.
func (h GRPCHeader) Matches(remaining int) bool {
	return uint64(h.Length) == uint64(remaining)
}

// SplitGRPC parses the header and returns the message bytes after it.
// Buffers of five bytes or fewer are returned unchanged with ok false.
func SplitGRPC(b []byte) (GRPCHeader, []byte, bool) {
	if len(b) <= GRPCHeaderLen {
		return GRPCHeader{}, b, false
	}
	h := GRPCHeader{
		Compressed: b[0] != 0,
		Length:     binary.BigEndian.Uint32(b[1:GRPCHeaderLen]),
	}
	return h, b[GRPCHeaderLen:], true
}

// StripGRPCHeader drops the first five bytes when the buffer is longer
// than the header.
func StripGRPCHeader(b []byte) []byte {
	_, rest, _ := SplitGRPC(b)
	return rest
}
