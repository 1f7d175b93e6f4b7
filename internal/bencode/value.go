package bencode

import (
	"bytes"
	"unicode/utf8"
)

// Value is a decoded bencode object. The concrete types are Integer,
// ByteString, List and *Dictionary; no other type implements Value.
type Value interface {
	isValue()
}

// Integer is a bencode integer (i<decimal>e).
type Integer int64

// ByteString is an opaque bencode byte string (<length>:<payload>). The
// payload is not required to be valid text.
type ByteString []byte

// List is an ordered bencode list (l<items>e).
type List []Value

// Dictionary maps byte-string keys to values and remembers the order in
// which keys were first inserted. The encoder writes keys in that order.
type Dictionary struct {
	keys   []string
	values map[string]Value
}

func (Integer) isValue() {}
func (ByteString) isValue() {}
func (List) isValue() {}
func (*Dictionary) isValue() {}

// Text returns the byte string as a Go string, failing with ErrInvalidText
// when the payload is not valid UTF-8.
func (s ByteString) Text() (string, error) {
	if !utf8.Valid(s) {
		return "", ErrInvalidText
	}
	return string(s), nil
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{values: make(map[string]Value)}
}

// Set stores v under key. Setting an existing key replaces its value and
// keeps the key at its original position (last write wins).
func (d *Dictionary) Set(key string, v Value) {
	if d.values == nil {
		d.values = make(map[string]Value)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// Get returns the value stored under key.
func (d *Dictionary) Get(key string) (Value, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// TypeName names the variant of v for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Integer:
		return "integer"
	case ByteString:
		return "string"
	case List:
		return "list"
	case *Dictionary:
		return "dictionary"
	case nil:
		return "nil"
	default:
		return "unknown"
	}
}

// Equal reports whether a and b hold the same tree. Dictionary key order is
// ignored; list order is not.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Integer:
		y, ok := b.(Integer)
		return ok && x == y
	case ByteString:
		y, ok := b.(ByteString)
		return ok && bytes.Equal(x, y)
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Dictionary:
		y, ok := b.(*Dictionary)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, k := range x.Keys() {
			xv, _ := x.Get(k)
			yv, ok := y.Get(k)
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}
