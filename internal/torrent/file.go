package torrent

import (
	"fmt"
	"strings"
)

// File represents a file in a multi-file torrent
type File struct {
	Length int64
	Path   []string
	MD5Sum *string
}

// ValidatePath reports whether the path can be joined under a download
// directory without escaping it. Failures wrap ErrUnsafePath.
func (f *File) ValidatePath() error {
	if len(f.Path) == 0 {
		return fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	for i, component := range f.Path {
		if err := checkComponent(component); err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
	}
	return nil
}

// ValidatePaths checks the torrent name and every file path with the
// rules of File.ValidatePath. Parsing and encoding never call it; it is for
// callers about to lay the content out on disk.
func (i *Info) ValidatePaths() error {
	if err := checkComponent(i.Name); err != nil {
		return &FieldError{Field: "info.name", Err: err}
	}
	if i.IsSingleFile() {
		return nil
	}
	for n := range i.Files {
		if err := i.Files[n].ValidatePath(); err != nil {
			return &FieldError{Field: fmt.Sprintf("info.files[%d].path", n), Err: err}
		}
	}
	return nil
}

func checkComponent(component string) error {
	switch {
	case component == "":
		return fmt.Errorf("%w: empty component", ErrUnsafePath)
	case component == "." || component == "..":
		return fmt.Errorf("%w: %q", ErrUnsafePath, component)
	case strings.ContainsAny(component, "/\\\x00"):
		return fmt.Errorf("%w: separator or NUL in %q", ErrUnsafePath, component)
	}
	return nil
}
