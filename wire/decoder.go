package wire

import (
	"fmt"
)

// DefaultMaxDepth bounds how many levels of length-delimited payloads are
// speculatively tokenized as nested messages.
const DefaultMaxDepth = 10

// Decoder handles low-level protobuf wire format decoding. A Decoder is a
// cursor over a single buffer; nested payloads get their own Decoder so a
// rejected trial never disturbs the parent cursor.
type Decoder struct {
	buf  []byte
	pos  int
	base int // absolute offset of buf[0] in the top-level input

	depth    int
	maxDepth int
}

// NewDecoder creates a decoder for a top-level buffer with the default depth bound.
func NewDecoder(data []byte) *Decoder {
	return NewDecoderAt(data, 0, 0, DefaultMaxDepth)
}

// NewDecoderAt creates a decoder for a buffer that starts at the absolute
// offset in the top-level input and sits at the given nesting depth.
func NewDecoderAt(data []byte, offset, depth, maxDepth int) *Decoder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Decoder{
		buf:      data,
		base:     offset,
		depth:    depth,
		maxDepth: maxDepth,
	}
}

// Tokenize splits buf into fields. offset is the absolute position of
// buf[0] and is only used to report byte ranges. Malformed or truncated
// input never fails: the loop stops and the unread bytes are returned as
// Trailing with the reason in Stop.
func Tokenize(buf []byte, offset, depth, maxDepth int) *ParseResult {
	return NewDecoderAt(buf, offset, depth, maxDepth).Tokenize()
}

// Tokenize reads fields from the current position to the end of the buffer.
func (d *Decoder) Tokenize() *ParseResult {
	result := &ParseResult{
		Fields: make([]*Field, 0),
		Depth:  d.depth,
	}

	for d.pos < len(d.buf) {
		start := d.pos
		field, err := d.readField()
		if err != nil {
			d.pos = start
			result.Stop = err
			break
		}
		result.Fields = append(result.Fields, field)
	}

	end := len(d.buf)
	result.Trailing = d.buf[d.pos:end:end]
	result.TrailingRange = ByteRange{Start: d.base + d.pos, End: d.base + end}
	return result
}

// readField reads one tag/value pair. On error the cursor position is
// undefined; Tokenize rewinds it to the start of the field.
func (d *Decoder) readField() (*Field, error) {
	start := d.pos
	at := d.base + start

	vd := NewVarintDecoder(d)
	number, wireType, err := vd.DecodeTag()
	if err != nil {
		return nil, stopAt(at, 0, err)
	}
	if number == 0 {
		return nil, stopAt(at, 0, ErrFieldNumberZero)
	}

	valueStart := d.pos
	field := &Field{Number: number, WireType: wireType}

	switch wireType {
	case WireVarint:
		v, err := vd.DecodeVarint()
		if err != nil {
			return nil, stopAt(at, number, err)
		}
		field.Value = v
		field.Interpretations = InterpretVarint(v)
		field.PayloadRange = ByteRange{Start: d.base + valueStart, End: d.base + d.pos}

	case WireFixed64:
		v, err := d.DecodeFixed64()
		if err != nil {
			return nil, stopAt(at, number, err)
		}
		field.Value = v
		field.Interpretations = InterpretFixed64(v)
		field.PayloadRange = ByteRange{Start: d.base + valueStart, End: d.base + d.pos}

	case WireFixed32:
		v, err := d.DecodeFixed32()
		if err != nil {
			return nil, stopAt(at, number, err)
		}
		field.Value = uint64(v)
		field.Interpretations = InterpretFixed32(v)
		field.PayloadRange = ByteRange{Start: d.base + valueStart, End: d.base + d.pos}

	case WireBytes:
		payload, payloadAt, err := d.DecodeRawBytes()
		if err != nil {
			return nil, stopAt(at, number, err)
		}
		field.Payload = payload
		field.PayloadRange = ByteRange{Start: d.base + payloadAt, End: d.base + payloadAt + len(payload)}
		field.Nested, field.Interpretations = d.resolveBytes(payload, d.base+payloadAt)

	case WireStartGroup, WireEndGroup:
		return nil, stopAt(at, number, ErrGroupWireType)

	default:
		return nil, stopAt(at, number, fmt.Errorf("%w %d", ErrInvalidWireType, int32(wireType)))
	}

	field.Range = ByteRange{Start: at, End: d.base + d.pos}
	field.Raw = d.buf[start:d.pos:d.pos]
	return field, nil
}
