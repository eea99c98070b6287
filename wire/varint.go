package wire

// maxVarintLen is the number of 7-bit groups needed for a 64-bit value.
const maxVarintLen = 10

// VarintDecoder handles varint decoding operations
type VarintDecoder struct {
	decoder *Decoder
}

// NewVarintDecoder creates a new varint decoder
func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

// ReadVarint decodes a base-128 varint starting at buf[offset] and returns
// the value with the number of bytes consumed. The loop is bounded to ten
// groups; a longer varint, or a tenth group carrying bits beyond bit 63,
// yields an *OverflowError.
func ReadVarint(buf []byte, offset int) (uint64, int, error) {
	var result uint64
	for i := 0; i < maxVarintLen; i++ {
		pos := offset + i
		if pos >= len(buf) {
			return 0, 0, ErrUnexpectedEOF
		}

		b := buf[pos]
		if i == maxVarintLen-1 && b > 1 {
			return 0, 0, &OverflowError{Offset: offset}
		}

		result |= uint64(b&0x7F) << (7 * uint(i))
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
	}

	return 0, 0, &OverflowError{Offset: offset}
}

// DECODER METHODS

// DecodeVarint decodes a varint from the current position. The cursor
// only moves on success.
func (vd *VarintDecoder) DecodeVarint() (uint64, error) {
	d := vd.decoder
	v, n, err := ReadVarint(d.buf, d.pos)
	if err != nil {
		if oe, ok := err.(*OverflowError); ok {
			return 0, &OverflowError{Offset: d.base + oe.Offset}
		}
		return 0, err
	}
	d.pos += n
	return v, nil
}

// DecodeTag decodes a field tag and splits it into number and wire type.
func (vd *VarintDecoder) DecodeTag() (FieldNumber, WireType, error) {
	v, err := vd.DecodeVarint()
	if err != nil {
		return 0, 0, err
	}
	num, wt := ParseTag(Tag(v))
	return num, wt, nil
}

// Convenience methods for direct access

// DecodeVarint - convenience method for main decoder
func (d *Decoder) DecodeVarint() (uint64, error) {
	vd := NewVarintDecoder(d)
	return vd.DecodeVarint()
}
