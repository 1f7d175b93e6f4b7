package torrent

import "fmt"

// PieceHashSize is the size of one SHA-1 piece hash.
const PieceHashSize = 20

// Info represents the info dictionary of a torrent
type Info struct {
	Name        string
	PieceLength int64
	Pieces      [][PieceHashSize]byte

	// Exactly one of Length (single file) and Files (multi file) is used;
	// Length takes precedence when both are set.
	Length *int64
	MD5Sum *string
	Files  []File
}

// IsSingleFile returns true if this is a single-file torrent
func (i *Info) IsSingleFile() bool {
	return i.Length != nil
}

// IsMultiFile returns true if this is a multi-file torrent
func (i *Info) IsMultiFile() bool {
	return i.Length == nil && i.Files != nil
}

func (i *Info) Validate() error {
	if i.PieceLength <= 0 {
		return &FieldError{Field: "info.piece length", Err: ErrOutOfRange}
	}

	if i.IsSingleFile() {
		if *i.Length < 0 {
			return &FieldError{Field: "info.length", Err: ErrOutOfRange}
		}
		return nil
	}

	if !i.IsMultiFile() {
		return &FieldError{Field: "info.length", Err: ErrMissingField}
	}
	for n, f := range i.Files {
		if f.Length < 0 {
			return &FieldError{Field: fmt.Sprintf("info.files[%d].length", n), Err: ErrOutOfRange}
		}
	}
	return nil
}

// TotalLength is the content size: Length, or the sum of the file lengths.
// A sum past math.MaxInt64 is an ErrOutOfRange error on the file that
// overflowed it.
func (i *Info) TotalLength() (int64, error) {
	if i.IsSingleFile() {
		return *i.Length, nil
	}

	var total int64
	for n, file := range i.Files {
		var ok bool
		if total, ok = addInt64(total, file.Length); !ok {
			return 0, &FieldError{Field: fmt.Sprintf("info.files[%d].length", n), Err: ErrOutOfRange}
		}
	}
	return total, nil
}
