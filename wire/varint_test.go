package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestReadVarint(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		offset   int
		expected uint64
		consumed int
		err      error
	}{
		{name: "single byte", buf: []byte{0x01}, expected: 1, consumed: 1},
		{name: "zero", buf: []byte{0x00}, expected: 0, consumed: 1},
		{name: "two bytes", buf: []byte{0xAC, 0x02}, expected: 300, consumed: 2},
		{name: "with offset", buf: []byte{0xFF, 0xAC, 0x02, 0x7F}, offset: 1, expected: 300, consumed: 2},
		{
			name:     "max uint64",
			buf:      []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01},
			expected: math.MaxUint64,
			consumed: 10,
		},
		{name: "truncated", buf: []byte{0x80}, err: ErrUnexpectedEOF},
		{name: "empty", buf: nil, err: ErrUnexpectedEOF},
		{name: "offset past end", buf: []byte{0x01}, offset: 1, err: ErrUnexpectedEOF},
		{
			name: "ten continuation groups",
			buf:  append(bytes.Repeat([]byte{0xFF}, 10), 0x01),
			err:  ErrVarintOverflow,
		},
		{
			name: "tenth group beyond bit 63",
			buf:  append(bytes.Repeat([]byte{0xFF}, 9), 0x02),
			err:  ErrVarintOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, n, err := ReadVarint(tt.buf, tt.offset)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected error %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v != tt.expected {
				t.Errorf("expected value %d, got %d", tt.expected, v)
			}
			if n != tt.consumed {
				t.Errorf("expected %d bytes consumed, got %d", tt.consumed, n)
			}
		})
	}
}

func TestReadVarint_OverflowError(t *testing.T) {
	buf := append([]byte{0x08}, append(bytes.Repeat([]byte{0xFF}, 10), 0x01)...)

	_, _, err := ReadVarint(buf, 1)

	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OverflowError, got %T (%v)", err, err)
	}
	if oe.Offset != 1 {
		t.Errorf("expected overflow offset 1, got %d", oe.Offset)
	}
}

func TestVarintDecoder_KeepsCursorOnError(t *testing.T) {
	d := NewDecoder([]byte{0x96, 0x01, 0x80})

	v, err := d.DecodeVarint()
	if err != nil || v != 150 {
		t.Fatalf("expected 150, got %d (%v)", v, err)
	}
	if _, err := d.DecodeVarint(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
	if d.pos != 2 {
		t.Errorf("cursor moved on failure: pos=%d", d.pos)
	}
}

func TestVarintDecoder_OverflowOffsetIsAbsolute(t *testing.T) {
	d := NewDecoderAt(bytes.Repeat([]byte{0xFF}, 11), 40, 0, 0)

	_, err := d.DecodeVarint()

	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OverflowError, got %v", err)
	}
	if oe.Offset != 40 {
		t.Errorf("expected absolute offset 40, got %d", oe.Offset)
	}
}
