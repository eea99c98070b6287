package view

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/anirudhraja/rawproto/wire"
)

// MaxSafeInteger is the largest integer a JSON consumer can hold in a
// double without losing precision.
const MaxSafeInteger = 1<<53 - 1

// Object is a canonical JSON object whose keys keep first-appearance order.
type Object struct {
	m *orderedmap.OrderedMap[string, any]
}

func newObject(capacity int) *Object {
	return &Object{m: orderedmap.NewOrderedMapWithCapacity[string, any](capacity)}
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	return o.m.Get(key)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return o.m.Len()
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.m.Len())
	for el := o.m.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

// MarshalJSON writes the keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for el := o.m.Front(); el != nil; el = el.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(el.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(el.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CanonicalJSON builds the canonical object for a parse result. Keys are
// field_<n>; a field number seen more than once becomes an array in
// encounter order. Trailing bytes are not part of the object.
func CanonicalJSON(r *wire.ParseResult) *Object {
	if r == nil {
		return newObject(0)
	}

	obj := newObject(len(r.Fields))
	for _, f := range r.Fields {
		key := "field_" + strconv.FormatUint(uint64(f.Number), 10)
		val := canonicalValue(f)

		prev, ok := obj.m.Get(key)
		switch {
		case !ok:
			obj.m.Set(key, val)
		case isRepeated(prev):
			obj.m.Set(key, append(prev.([]any), val))
		default:
			obj.m.Set(key, []any{prev, val})
		}
	}
	return obj
}

// isRepeated reports whether v already collects repeated occurrences.
func isRepeated(v any) bool {
	_, ok := v.([]any)
	return ok
}

// MarshalIndent renders the canonical object with two-space indentation.
func MarshalIndent(r *wire.ParseResult) ([]byte, error) {
	return json.MarshalIndent(CanonicalJSON(r), "", "  ")
}

func canonicalValue(f *wire.Field) any {
	if f.Nested != nil {
		return CanonicalJSON(f.Nested)
	}

	for _, in := range f.Interpretations {
		if in.Kind == wire.KindString {
			return in.Value
		}
	}
	for _, in := range f.Interpretations {
		if in.Kind.IsIntegral() {
			return jsonInteger(in.Value)
		}
	}
	for _, in := range f.Interpretations {
		if in.Kind.IsFloat() {
			return jsonFloat(in.Value)
		}
	}

	if f.WireType == wire.WireBytes {
		return hex.EncodeToString(f.Payload)
	}
	return hex.EncodeToString(f.Raw)
}

func jsonInteger(v any) any {
	switch n := v.(type) {
	case uint64:
		if n <= MaxSafeInteger {
			return n
		}
		return strconv.FormatUint(n, 10)
	case int64:
		if n >= -MaxSafeInteger && n <= MaxSafeInteger {
			return n
		}
		return strconv.FormatInt(n, 10)
	}
	return v
}

func jsonFloat(v any) any {
	var f float64
	switch n := v.(type) {
	case float32:
		f = float64(n)
	case float64:
		f = n
	default:
		return v
	}

	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return v
}
