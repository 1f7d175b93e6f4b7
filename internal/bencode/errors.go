package bencode

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated             = errors.New("unexpected end of data")
	ErrInvalidInteger        = errors.New("invalid integer")
	ErrUnrecognizedDelimiter = errors.New("unrecognized delimiter")
	ErrInvalidKey            = errors.New("dictionary key is not a byte string")
	ErrInvalidText           = errors.New("byte string is not valid UTF-8")
	ErrNestingTooDeep        = errors.New("nesting too deep")
	ErrTrailingData          = errors.New("trailing data after top-level value")
	ErrNotDictionary         = errors.New("top-level value is not a dictionary")
	ErrUnsupportedValue      = errors.New("unsupported value")
)

// SyntaxError reports a decode failure and the input offset where it was
// detected.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bencode: %v at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// DelimiterError is returned when a value starts with a byte that matches
// no grammar rule.
type DelimiterError struct {
	Offset int
	Delim  byte
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("bencode: unrecognized delimiter %q at offset %d", e.Delim, e.Offset)
}

func (e *DelimiterError) Unwrap() error { return ErrUnrecognizedDelimiter }
