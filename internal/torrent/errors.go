package torrent

import (
	"errors"
	"fmt"

	"github.com/nothingsh/TorrentModel/internal/bencode"
)

var (
	ErrMissingField       = errors.New("missing field")
	ErrWrongFieldType     = errors.New("wrong field type")
	ErrInvalidPieceLength = errors.New("pieces length is not a multiple of 20")
	ErrOutOfRange         = errors.New("value out of range")
	ErrInvalidText        = bencode.ErrInvalidText
	ErrUnsafePath         = errors.New("unsafe file path")
)

// FieldError reports a metadata field that is absent, mistyped or invalid.
// Field is a dotted path such as "info.files[1].path[0]".
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("torrent: field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
