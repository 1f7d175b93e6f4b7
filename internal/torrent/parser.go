package torrent

import (
	"bytes"
	"fmt"
	"time"

	"github.com/nothingsh/TorrentModel/internal/bencode"
	"github.com/nothingsh/TorrentModel/internal/logging"
)

// ParseTorrent decodes a complete metainfo buffer. The info dictionary's
// exact source bytes are kept in RawInfo and hashed into InfoHash.
func ParseTorrent(data []byte, opts ...bencode.Option) (*Torrent, error) {
	// First, decode the entire torrent file
	decoded, err := bencode.Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bencode: %w", err)
	}

	root, ok := decoded.(*bencode.Dictionary)
	if !ok {
		return nil, fmt.Errorf("torrent file is a %s: %w", bencode.TypeName(decoded), bencode.ErrNotDictionary)
	}

	torrent, err := parseTorrentFromDict(root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse torrent structure: %w", err)
	}

	// Second pass over the same buffer for the literal info bytes; hashing a
	// re-encoding would not reproduce the identifier for non-canonical input.
	raw, err := bencode.RawDictionary(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to extract info dictionary: %w", err)
	}
	rawInfo, ok := raw["info"]
	if !ok {
		return nil, &FieldError{Field: "info", Err: ErrMissingField}
	}
	torrent.RawInfo = bytes.Clone(rawInfo)
	torrent.InfoHash = HashInfo(torrent.RawInfo)

	logging.For("torrent").Debug("parsed torrent",
		"name", torrent.Info.Name,
		"pieces", len(torrent.Info.Pieces),
		"files", len(torrent.Info.Files),
		"info_hash", torrent.InfoHash.String())

	return torrent, nil
}

// fields reads typed values out of one dictionary and names failures by
// their path from the root.
type fields struct {
	dict *bencode.Dictionary
	path string
}

func (f fields) name(key string) string {
	if f.path == "" {
		return key
	}
	return f.path + "." + key
}

func (f fields) missing(key string) error {
	return &FieldError{Field: f.name(key), Err: ErrMissingField}
}

// lookup returns the value under key as T. present is false when the key is
// absent; a present value of another type is an error.
func lookup[T bencode.Value](f fields, key string) (val T, present bool, err error) {
	v, ok := f.dict.Get(key)
	if !ok {
		return val, false, nil
	}
	val, ok = v.(T)
	if !ok {
		return val, true, wrongType(f.name(key), v, val)
	}
	return val, true, nil
}

func wrongType(field string, got, want bencode.Value) error {
	return &FieldError{
		Field: field,
		Err:   fmt.Errorf("%w: got %s, want %s", ErrWrongFieldType, bencode.TypeName(got), bencode.TypeName(want)),
	}
}

func text(field string, s bencode.ByteString) (string, error) {
	str, err := s.Text()
	if err != nil {
		return "", &FieldError{Field: field, Err: err}
	}
	return str, nil
}

func (f fields) requiredText(key string) (string, error) {
	s, ok, err := lookup[bencode.ByteString](f, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", f.missing(key)
	}
	return text(f.name(key), s)
}

func (f fields) optionalText(key string) (*string, error) {
	s, ok, err := lookup[bencode.ByteString](f, key)
	if err != nil || !ok {
		return nil, err
	}
	str, err := text(f.name(key), s)
	if err != nil {
		return nil, err
	}
	return &str, nil
}

func (f fields) requiredInt(key string) (int64, error) {
	n, ok, err := lookup[bencode.Integer](f, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, f.missing(key)
	}
	return int64(n), nil
}

// parseTorrentFromDict converts the decoded root dictionary to a Torrent
func parseTorrentFromDict(root *bencode.Dictionary) (*Torrent, error) {
	f := fields{dict: root}
	torrent := &Torrent{}

	announce, err := f.requiredText("announce")
	if err != nil {
		return nil, err
	}
	torrent.Announce = announce

	if torrent.AnnounceList, err = parseAnnounceList(f); err != nil {
		return nil, err
	}

	if torrent.Comment, err = f.optionalText("comment"); err != nil {
		return nil, err
	}
	if torrent.CreatedBy, err = f.optionalText("created by"); err != nil {
		return nil, err
	}
	if torrent.Encoding, err = f.optionalText("encoding"); err != nil {
		return nil, err
	}

	creationDate, ok, err := lookup[bencode.Integer](f, "creation date")
	if err != nil {
		return nil, err
	}
	if ok {
		date := time.Unix(int64(creationDate), 0).UTC()
		torrent.CreationDate = &date
	}

	infoDict, ok, err := lookup[*bencode.Dictionary](f, "info")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, f.missing("info")
	}

	info, err := parseInfo(fields{dict: infoDict, path: "info"})
	if err != nil {
		return nil, err
	}
	torrent.Info = info
	return torrent, nil
}

// parseAnnounceList reads the optional tiers. Empty URLs are dropped, and so
// are tiers left empty; the tier list therefore can be shorter than the one
// in the file.
func parseAnnounceList(f fields) ([][]string, error) {
	tiers, ok, err := lookup[bencode.List](f, "announce-list")
	if err != nil || !ok {
		return nil, err
	}

	var announceList [][]string
	for i, tierValue := range tiers {
		field := fmt.Sprintf("announce-list[%d]", i)
		tier, ok := tierValue.(bencode.List)
		if !ok {
			return nil, wrongType(field, tierValue, bencode.List(nil))
		}

		var urls []string
		for j, urlValue := range tier {
			urlField := fmt.Sprintf("%s[%d]", field, j)
			s, ok := urlValue.(bencode.ByteString)
			if !ok {
				return nil, wrongType(urlField, urlValue, bencode.ByteString(nil))
			}
			url, err := text(urlField, s)
			if err != nil {
				return nil, err
			}
			if url != "" {
				urls = append(urls, url)
			}
		}
		if len(urls) > 0 {
			announceList = append(announceList, urls)
		}
	}
	return announceList, nil
}

// parseInfo converts the info dictionary to an Info struct
func parseInfo(f fields) (*Info, error) {
	info := &Info{}

	name, err := f.requiredText("name")
	if err != nil {
		return nil, err
	}
	info.Name = name

	pieceLength, err := f.requiredInt("piece length")
	if err != nil {
		return nil, err
	}
	if pieceLength <= 0 {
		return nil, &FieldError{Field: f.name("piece length"), Err: ErrOutOfRange}
	}
	info.PieceLength = pieceLength

	pieces, ok, err := lookup[bencode.ByteString](f, "pieces")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, f.missing("pieces")
	}
	if info.Pieces, err = splitPieces(pieces); err != nil {
		return nil, &FieldError{Field: f.name("pieces"), Err: err}
	}

	// Single-file vs multi-file; length wins when both are present.
	length, ok, err := lookup[bencode.Integer](f, "length")
	if err != nil {
		return nil, err
	}
	if ok {
		if length < 0 {
			return nil, &FieldError{Field: f.name("length"), Err: ErrOutOfRange}
		}
		n := int64(length)
		info.Length = &n

		if info.MD5Sum, err = f.optionalText("md5sum"); err != nil {
			return nil, err
		}
		return info, nil
	}

	files, ok, err := lookup[bencode.List](f, "files")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, f.missing("length")
	}

	info.Files = make([]File, 0, len(files))
	for i, fileValue := range files {
		field := fmt.Sprintf("%s[%d]", f.name("files"), i)
		fileDict, ok := fileValue.(*bencode.Dictionary)
		if !ok {
			return nil, wrongType(field, fileValue, (*bencode.Dictionary)(nil))
		}

		file, err := parseFile(fields{dict: fileDict, path: field})
		if err != nil {
			return nil, err
		}
		info.Files = append(info.Files, *file)
	}

	return info, nil
}

// parseFile converts a file dictionary to a File struct
func parseFile(f fields) (*File, error) {
	file := &File{}

	length, err := f.requiredInt("length")
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, &FieldError{Field: f.name("length"), Err: ErrOutOfRange}
	}
	file.Length = length

	path, ok, err := lookup[bencode.List](f, "path")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, f.missing("path")
	}

	file.Path = make([]string, 0, len(path))
	for i, componentValue := range path {
		field := fmt.Sprintf("%s[%d]", f.name("path"), i)
		s, ok := componentValue.(bencode.ByteString)
		if !ok {
			return nil, wrongType(field, componentValue, bencode.ByteString(nil))
		}
		component, err := text(field, s)
		if err != nil {
			return nil, err
		}
		file.Path = append(file.Path, component)
	}

	if file.MD5Sum, err = f.optionalText("md5sum"); err != nil {
		return nil, err
	}

	return file, nil
}

// splitPieces cuts the concatenated piece hashes into 20-byte entries.
func splitPieces(pieces []byte) ([][PieceHashSize]byte, error) {
	if len(pieces)%PieceHashSize != 0 {
		return nil, ErrInvalidPieceLength
	}

	hashes := make([][PieceHashSize]byte, len(pieces)/PieceHashSize)
	for i := range hashes {
		copy(hashes[i][:], pieces[i*PieceHashSize:(i+1)*PieceHashSize])
	}
	return hashes, nil
}
