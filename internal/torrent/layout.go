package torrent

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"math"
)

// FileSpan places one file in the torrent's concatenated content.
type FileSpan struct {
	Path   []string // Name followed by the file's path components
	Offset int64    // Offset of the file's first byte in the content
	Length int64
}

// FileRange is the part of one file covered by a piece.
type FileRange struct {
	FileIndex int   // Index into FileSpans
	Offset    int64 // Offset within the file
	Length    int64
}

// NumPieces returns the number of piece hashes.
func (i *Info) NumPieces() int {
	return len(i.Pieces)
}

// PieceSize returns the length of piece index. Every piece is PieceLength
// long except the last, which holds the remainder.
func (i *Info) PieceSize(index int) (int64, error) {
	if index < 0 || index >= len(i.Pieces) {
		return 0, fmt.Errorf("invalid piece index: %d", index)
	}

	total, err := i.TotalLength()
	if err != nil {
		return 0, err
	}
	begin, ok := mulInt64(int64(index), i.PieceLength)
	if !ok {
		return 0, &FieldError{Field: "info.piece length", Err: ErrOutOfRange}
	}
	end, ok := addInt64(begin, i.PieceLength)
	if !ok {
		end = math.MaxInt64
	}
	end = min(end, total)
	if end < begin {
		return 0, nil
	}
	return end - begin, nil
}

// VerifyPiece reports whether data is the content of piece index.
func (i *Info) VerifyPiece(index int, data []byte) bool {
	size, err := i.PieceSize(index)
	if err != nil || int64(len(data)) != size {
		return false
	}

	hash := sha1.Sum(data)
	return bytes.Equal(hash[:], i.Pieces[index][:])
}

// FileSpans lays the files out in content order. A single-file torrent has
// one span named after the torrent. Paths that ValidatePaths rejects fail
// with ErrUnsafePath, and content past math.MaxInt64 bytes with
// ErrOutOfRange.
func (i *Info) FileSpans() ([]FileSpan, error) {
	if err := i.ValidatePaths(); err != nil {
		return nil, err
	}
	if i.IsSingleFile() {
		return []FileSpan{{Path: []string{i.Name}, Offset: 0, Length: *i.Length}}, nil
	}

	spans := make([]FileSpan, 0, len(i.Files))
	var offset int64
	for n, f := range i.Files {
		path := make([]string, 0, len(f.Path)+1)
		path = append(path, i.Name)
		path = append(path, f.Path...)

		spans = append(spans, FileSpan{Path: path, Offset: offset, Length: f.Length})

		var ok bool
		if offset, ok = addInt64(offset, f.Length); !ok {
			return nil, &FieldError{Field: fmt.Sprintf("info.files[%d].length", n), Err: ErrOutOfRange}
		}
	}
	return spans, nil
}

// PieceFiles returns the file ranges piece index overlaps, in file order.
func (i *Info) PieceFiles(index int) ([]FileRange, error) {
	size, err := i.PieceSize(index)
	if err != nil {
		return nil, err
	}
	spans, err := i.FileSpans()
	if err != nil {
		return nil, err
	}
	// PieceSize succeeded, so neither of these overflows.
	pieceStart := int64(index) * i.PieceLength
	pieceEnd := pieceStart + size

	var ranges []FileRange
	for fileIndex, span := range spans {
		overlapStart := max(pieceStart, span.Offset)
		overlapEnd := min(pieceEnd, span.Offset+span.Length)
		if overlapStart >= overlapEnd {
			continue
		}

		ranges = append(ranges, FileRange{
			FileIndex: fileIndex,
			Offset:    overlapStart - span.Offset,
			Length:    overlapEnd - overlapStart,
		})
	}
	return ranges, nil
}

// addInt64 adds two lengths, reporting false on overflow.
func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return product, true
}
