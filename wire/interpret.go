package wire

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// Kind tags one reading of a field's bits.
type Kind string

const (
	KindUint   Kind = "uint"
	KindInt8   Kind = "int8"
	KindInt16  Kind = "int16"
	KindInt32  Kind = "int32"
	KindInt64  Kind = "int64"
	KindSint   Kind = "sint"
	KindUint32 Kind = "uint32"
	KindUint64 Kind = "uint64"
	KindFloat  Kind = "float"
	KindDouble Kind = "double"

	KindMessage Kind = "message"
	KindString  Kind = "string"
	KindBytes   Kind = "bytes"

	KindPackedVarint  Kind = "packed_varint"
	KindPackedFixed32 Kind = "packed_fixed32"
	KindPackedFixed64 Kind = "packed_fixed64"
)

// IsIntegral reports whether the kind carries a single integer value.
func (k Kind) IsIntegral() bool {
	switch k {
	case KindUint, KindInt8, KindInt16, KindInt32, KindInt64, KindSint, KindUint32, KindUint64:
		return true
	}
	return false
}

// IsFloat reports whether the kind carries a floating point value.
func (k Kind) IsFloat() bool {
	return k == KindFloat || k == KindDouble
}

// Interpretation is one plausible typed reading of a field.
//
// Value holds uint64 for uint/uint32/uint64, int64 for the signed kinds,
// float32 for float, float64 for double, string for string, []byte for
// bytes, int (field count) for message, and []uint64 or []uint32 for the
// packed kinds.
type Interpretation struct {
	Kind  Kind
	Value any
}

// String returns the display form of the value.
func (i Interpretation) String() string {
	switch v := i.Value.(type) {
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	case []byte:
		return hex.EncodeToString(v)
	case int:
		if v == 1 {
			return "{1 field}"
		}
		return fmt.Sprintf("{%d fields}", v)
	case []uint64:
		parts := make([]string, len(v))
		for n, x := range v {
			parts[n] = strconv.FormatUint(x, 10)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case []uint32:
		parts := make([]string, len(v))
		for n, x := range v {
			parts[n] = strconv.FormatUint(uint64(x), 10)
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

var signedWidths = []struct {
	bits uint
	kind Kind
}{
	{8, KindInt8},
	{16, KindInt16},
	{32, KindInt32},
	{64, KindInt64},
}

// InterpretVarint lists every reading of a varint. The unsigned value is
// always first. Two's complement readings exist only for widths whose
// sign bit is the highest set bit of v; the zigzag reading is added only
// when it is negative, which is the only case where it says something
// the unsigned value does not.
func InterpretVarint(v uint64) []Interpretation {
	out := []Interpretation{{Kind: KindUint, Value: v}}

	for _, w := range signedWidths {
		if s, ok := twosComplement(v, w.bits); ok {
			out = append(out, Interpretation{Kind: w.kind, Value: s})
		}
	}

	if z := protowire.DecodeZigZag(v); z < 0 {
		out = append(out, Interpretation{Kind: KindSint, Value: z})
	}

	return out
}

// twosComplement returns the negative reading of v at the given width when
// v fits in the width and has its sign bit set.
func twosComplement(v uint64, bits uint) (int64, bool) {
	if bits == 64 {
		if v < 1<<63 {
			return 0, false
		}
		return int64(v), true
	}

	signBit := uint64(1) << (bits - 1)
	limit := uint64(1) << bits
	if v < signBit || v >= limit {
		return 0, false
	}
	return int64(v) - int64(limit), true
}

// InterpretFixed32 reads 32 little-endian bits as int32, uint32 and float.
func InterpretFixed32(v uint32) []Interpretation {
	out := []Interpretation{{Kind: KindInt32, Value: int64(int32(v))}}
	if int32(v) < 0 {
		out = append(out, Interpretation{Kind: KindUint32, Value: uint64(v)})
	}
	return append(out, Interpretation{Kind: KindFloat, Value: math.Float32frombits(v)})
}

// InterpretFixed64 reads 64 little-endian bits as int64, uint64 and double.
func InterpretFixed64(v uint64) []Interpretation {
	out := []Interpretation{{Kind: KindInt64, Value: int64(v)}}
	if int64(v) < 0 {
		out = append(out, Interpretation{Kind: KindUint64, Value: v})
	}
	return append(out, Interpretation{Kind: KindDouble, Value: math.Float64frombits(v)})
}

// InterpretBytes classifies a payload that was not accepted as a nested
// message: strict UTF-8 becomes a string, anything else opaque bytes.
// Packed repeated readings follow as alternatives.
func InterpretBytes(payload []byte) []Interpretation {
	var out []Interpretation
	if utf8.Valid(payload) {
		out = append(out, Interpretation{Kind: KindString, Value: string(payload)})
	} else {
		out = append(out, Interpretation{Kind: KindBytes, Value: payload})
	}
	return append(out, packedCandidates(payload)...)
}

// packedCandidates returns the packed repeated readings that consume the
// payload exactly.
func packedCandidates(payload []byte) []Interpretation {
	if len(payload) == 0 {
		return nil
	}

	var out []Interpretation
	if vs, ok := packedVarints(payload); ok {
		out = append(out, Interpretation{Kind: KindPackedVarint, Value: vs})
	}
	if len(payload)%4 == 0 {
		vs := make([]uint32, 0, len(payload)/4)
		for i := 0; i < len(payload); i += 4 {
			vs = append(vs, binary.LittleEndian.Uint32(payload[i:]))
		}
		out = append(out, Interpretation{Kind: KindPackedFixed32, Value: vs})
	}
	if len(payload)%8 == 0 {
		vs := make([]uint64, 0, len(payload)/8)
		for i := 0; i < len(payload); i += 8 {
			vs = append(vs, binary.LittleEndian.Uint64(payload[i:]))
		}
		out = append(out, Interpretation{Kind: KindPackedFixed64, Value: vs})
	}
	return out
}

func packedVarints(payload []byte) ([]uint64, bool) {
	var vs []uint64
	for pos := 0; pos < len(payload); {
		v, n, err := ReadVarint(payload, pos)
		if err != nil {
			return nil, false
		}
		vs = append(vs, v)
		pos += n
	}
	return vs, true
}
