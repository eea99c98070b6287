package wire

import "fmt"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int32

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // deprecated
	WireEndGroup   WireType = 4 // deprecated
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

// String returns the wire type name used in projections.
func (wt WireType) String() string {
	switch wt {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "length-delimited"
	case WireStartGroup:
		return "start-group"
	case WireEndGroup:
		return "end-group"
	case WireFixed32:
		return "fixed32"
	default:
		return fmt.Sprintf("invalid(%d)", int32(wt))
	}
}

// FieldNumber represents a protobuf field number. Without a schema the
// tag varint may carry numbers above the protobuf limit, so the full
// 61 bits are kept.
type FieldNumber uint64

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// ByteRange is a half-open [Start, End) span of absolute offsets into the
// buffer handed to the top-level decode call.
type ByteRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() int { return r.End - r.Start }

func (r ByteRange) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Field is one tokenized tag/value pair.
type Field struct {
	Number   FieldNumber
	WireType WireType

	// Value holds the raw bits of varint, fixed32 and fixed64 fields.
	Value uint64
	// Payload holds the body of a length-delimited field.
	Payload []byte
	// Raw is the source bytes of the field, tag included.
	Raw []byte

	Range        ByteRange
	PayloadRange ByteRange

	Interpretations []Interpretation

	// Nested is set only when the payload was accepted as a message.
	Nested *ParseResult
}

// Primary returns the default interpretation used for compact display.
func (f *Field) Primary() Interpretation {
	if len(f.Interpretations) == 0 {
		return Interpretation{Kind: KindBytes, Value: f.Payload}
	}
	return f.Interpretations[0]
}

// ParseResult is the ordered list of fields found in a buffer plus
// whatever could not be tokenized.
type ParseResult struct {
	Fields        []*Field
	Trailing      []byte
	TrailingRange ByteRange

	// Depth is the nesting level this result was tokenized at; 0 for the
	// top-level message.
	Depth int

	// Stop records why tokenization ended before the buffer was consumed.
	// It is nil when every byte belongs to a field.
	Stop error
}

// Size returns the number of input bytes accounted for by the fields and
// the trailing bytes.
func (r *ParseResult) Size() int {
	n := len(r.Trailing)
	for _, f := range r.Fields {
		n += f.Range.Len()
	}
	return n
}

// Bytes reassembles the source buffer from field bytes and trailing bytes.
func (r *ParseResult) Bytes() []byte {
	out := make([]byte, 0, r.Size())
	for _, f := range r.Fields {
		out = append(out, f.Raw...)
	}
	return append(out, r.Trailing...)
}

// Clean reports whether the whole buffer was tokenized with nothing left over.
func (r *ParseResult) Clean() bool {
	return len(r.Trailing) == 0 && r.Stop == nil
}
