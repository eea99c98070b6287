package wire

// BytesDecoder handles length-delimited bytes decoding operations
type BytesDecoder struct {
	decoder *Decoder
}

// NewBytesDecoder creates a new bytes decoder
func NewBytesDecoder(d *Decoder) *BytesDecoder {
	return &BytesDecoder{decoder: d}
}

// DECODER METHODS

// DecodeRawBytes decodes a length prefix and returns the payload as a
// sub-slice of the decoder buffer together with the payload offset
// relative to that buffer. The cursor is left untouched on failure.
func (bd *BytesDecoder) DecodeRawBytes() ([]byte, int, error) {
	d := bd.decoder
	start := d.pos

	length, err := NewVarintDecoder(d).DecodeVarint()
	if err != nil {
		return nil, 0, err
	}

	remaining := uint64(len(d.buf) - d.pos)
	if length > remaining {
		d.pos = start
		return nil, 0, ErrTruncatedBytes
	}

	at := d.pos
	data := d.buf[at : at+int(length) : at+int(length)]
	d.pos += int(length)

	return data, at, nil
}

// Convenience methods for direct access

// DecodeRawBytes - convenience method for main decoder
func (d *Decoder) DecodeRawBytes() ([]byte, int, error) {
	bd := NewBytesDecoder(d)
	return bd.DecodeRawBytes()
}
