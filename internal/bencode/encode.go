package bencode

import (
	"fmt"
	"strconv"
)

// Encoder writes Value trees in bencode form. Dictionary keys are written
// in the dictionary's insertion order and are never sorted, so a decoded
// tree re-encodes to its source bytes.
type Encoder struct {
	buf      []byte
	depth    int
	maxDepth int
}

// NewEncoder creates a new bencode encoder
func NewEncoder() *Encoder {
	return &Encoder{maxDepth: DefaultMaxDepth}
}

// Encode encodes a value to bencode format
func (e *Encoder) Encode(v Value) ([]byte, error) {
	e.buf = make([]byte, 0, 64)
	e.depth = 0
	if err := e.encode(v); err != nil {
		return nil, err
	}
	out := e.buf
	e.buf = nil
	return out, nil
}

func (e *Encoder) encode(v Value) error {
	switch x := v.(type) {
	case Integer:
		e.encodeInt(int64(x))
	case ByteString:
		e.encodeString(x)
	case List:
		return e.encodeList(x)
	case *Dictionary:
		return e.encodeDict(x)
	default:
		return fmt.Errorf("bencode: %w: %T", ErrUnsupportedValue, v)
	}
	return nil
}

// encodeInt encodes an integer
func (e *Encoder) encodeInt(n int64) {
	e.buf = append(e.buf, 'i')
	e.buf = strconv.AppendInt(e.buf, n, 10)
	e.buf = append(e.buf, 'e')
}

// encodeString encodes a byte string
func (e *Encoder) encodeString(s []byte) {
	e.buf = strconv.AppendInt(e.buf, int64(len(s)), 10)
	e.buf = append(e.buf, ':')
	e.buf = append(e.buf, s...)
}

// encodeList encodes a list
func (e *Encoder) encodeList(list List) error {
	if err := e.enter(); err != nil {
		return err
	}
	e.buf = append(e.buf, 'l')
	for _, item := range list {
		if err := e.encode(item); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, 'e')
	e.depth--
	return nil
}

// encodeDict encodes a dictionary
func (e *Encoder) encodeDict(dict *Dictionary) error {
	if err := e.enter(); err != nil {
		return err
	}
	e.buf = append(e.buf, 'd')
	if dict != nil {
		for _, key := range dict.keys {
			e.buf = strconv.AppendInt(e.buf, int64(len(key)), 10)
			e.buf = append(e.buf, ':')
			e.buf = append(e.buf, key...)

			if err := e.encode(dict.values[key]); err != nil {
				return fmt.Errorf("encoding value for key %q: %w", key, err)
			}
		}
	}
	e.buf = append(e.buf, 'e')
	e.depth--
	return nil
}

// enter bounds recursion, which also stops a list that contains itself.
func (e *Encoder) enter() error {
	e.depth++
	if e.depth > e.maxDepth {
		return fmt.Errorf("bencode: encode: %w", ErrNestingTooDeep)
	}
	return nil
}

// Encode encodes v with a fresh Encoder.
func Encode(v Value) ([]byte, error) {
	return NewEncoder().Encode(v)
}
