package wire

import (
	"math"
	"reflect"
	"testing"
)

func TestInterpretVarint(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected []Interpretation
	}{
		{
			name:     "300 has no signed readings",
			value:    300,
			expected: []Interpretation{{Kind: KindUint, Value: uint64(300)}},
		},
		{
			name:  "1 is zigzag -1",
			value: 1,
			expected: []Interpretation{
				{Kind: KindUint, Value: uint64(1)},
				{Kind: KindSint, Value: int64(-1)},
			},
		},
		{
			name:     "zero",
			value:    0,
			expected: []Interpretation{{Kind: KindUint, Value: uint64(0)}},
		},
		{
			name:  "255 is int8 -1",
			value: 255,
			expected: []Interpretation{
				{Kind: KindUint, Value: uint64(255)},
				{Kind: KindInt8, Value: int64(-1)},
				{Kind: KindSint, Value: int64(-128)},
			},
		},
		{
			name:     "128 is int8 -128",
			value:    128,
			expected: []Interpretation{{Kind: KindUint, Value: uint64(128)}, {Kind: KindInt8, Value: int64(-128)}},
		},
		{
			name:  "65535 is int16 -1",
			value: 65535,
			expected: []Interpretation{
				{Kind: KindUint, Value: uint64(65535)},
				{Kind: KindInt16, Value: int64(-1)},
				{Kind: KindSint, Value: int64(-32768)},
			},
		},
		{
			name:  "uint32 max is int32 -1",
			value: math.MaxUint32,
			expected: []Interpretation{
				{Kind: KindUint, Value: uint64(math.MaxUint32)},
				{Kind: KindInt32, Value: int64(-1)},
				{Kind: KindSint, Value: int64(-2147483648)},
			},
		},
		{
			name:  "negative int64 as encoded by protobuf",
			value: math.MaxUint64,
			expected: []Interpretation{
				{Kind: KindUint, Value: uint64(math.MaxUint64)},
				{Kind: KindInt64, Value: int64(-1)},
				{Kind: KindSint, Value: int64(math.MinInt64)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretVarint(tt.value)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestInterpretVarint_DisplayIsDecimal(t *testing.T) {
	got := InterpretVarint(300)
	if got[0].String() != "300" {
		t.Errorf("expected \"300\", got %q", got[0].String())
	}

	got = InterpretVarint(1)
	if got[1].String() != "-1" {
		t.Errorf("expected \"-1\", got %q", got[1].String())
	}
}

func TestInterpretFixed32(t *testing.T) {
	got := InterpretFixed32(math.Float32bits(1.5))
	expected := []Interpretation{
		{Kind: KindInt32, Value: int64(1069547520)},
		{Kind: KindFloat, Value: float32(1.5)},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	got = InterpretFixed32(0xFFFFFFFF)
	if len(got) != 3 {
		t.Fatalf("expected 3 interpretations, got %v", got)
	}
	if got[0].Value != int64(-1) || got[1].Kind != KindUint32 || got[1].Value != uint64(0xFFFFFFFF) {
		t.Errorf("unexpected integer readings: %v", got)
	}
	if f, ok := got[2].Value.(float32); !ok || !math.IsNaN(float64(f)) {
		t.Errorf("expected NaN float reading, got %v", got[2])
	}
}

func TestInterpretFixed64(t *testing.T) {
	got := InterpretFixed64(math.Float64bits(2.5))
	expected := []Interpretation{
		{Kind: KindInt64, Value: int64(4612811918334230528)},
		{Kind: KindDouble, Value: float64(2.5)},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	got = InterpretFixed64(math.Float64bits(-2.5))
	if len(got) != 3 || got[1].Kind != KindUint64 {
		t.Fatalf("expected a distinct uint64 reading, got %v", got)
	}
	if got[2].Value != float64(-2.5) {
		t.Errorf("expected double -2.5, got %v", got[2].Value)
	}
}

func TestInterpretBytes(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		primary Kind
		kinds   []Kind
	}{
		{name: "text", payload: []byte("hello"), primary: KindString, kinds: []Kind{KindString, KindPackedVarint}},
		{name: "empty", payload: []byte{}, primary: KindString, kinds: []Kind{KindString}},
		{name: "invalid utf8", payload: []byte{0xFF, 0xFE}, primary: KindBytes, kinds: []Kind{KindBytes}},
		{
			name:    "four bytes",
			payload: []byte{0xC3, 0x28, 0x00, 0x00},
			primary: KindBytes,
			kinds:   []Kind{KindBytes, KindPackedVarint, KindPackedFixed32},
		},
		{
			name:    "eight bytes",
			payload: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0xFF},
			primary: KindBytes,
			kinds:   []Kind{KindBytes, KindPackedFixed32, KindPackedFixed64},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretBytes(tt.payload)
			if got[0].Kind != tt.primary {
				t.Errorf("expected primary %s, got %s", tt.primary, got[0].Kind)
			}
			kinds := make([]Kind, len(got))
			for i, in := range got {
				kinds[i] = in.Kind
			}
			if !reflect.DeepEqual(kinds, tt.kinds) {
				t.Errorf("expected kinds %v, got %v", tt.kinds, kinds)
			}
		})
	}
}

func TestInterpretation_String(t *testing.T) {
	tests := []struct {
		in       Interpretation
		expected string
	}{
		{Interpretation{Kind: KindString, Value: "a\"b"}, `"a\"b"`},
		{Interpretation{Kind: KindBytes, Value: []byte{0xDE, 0xAD}}, "dead"},
		{Interpretation{Kind: KindFloat, Value: float32(1.5)}, "1.5"},
		{Interpretation{Kind: KindDouble, Value: float64(0.1)}, "0.1"},
		{Interpretation{Kind: KindMessage, Value: 1}, "{1 field}"},
		{Interpretation{Kind: KindMessage, Value: 3}, "{3 fields}"},
		{Interpretation{Kind: KindPackedVarint, Value: []uint64{1, 2, 3}}, "[1 2 3]"},
		{Interpretation{Kind: KindPackedFixed32, Value: []uint32{7}}, "[7]"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.in.Kind, tt.expected, got)
		}
	}
}
