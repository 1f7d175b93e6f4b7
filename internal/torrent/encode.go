package torrent

import (
	"fmt"
	"unicode/utf8"

	"github.com/nothingsh/TorrentModel/internal/bencode"
	"github.com/nothingsh/TorrentModel/internal/logging"
)

// Encode builds the bencode form of t. Absent optional fields are omitted.
// Keys are inserted in byte order, so encoding a parsed canonical torrent
// reproduces its source bytes.
func Encode(t *Torrent) ([]byte, error) {
	v, err := t.ToValue()
	if err != nil {
		return nil, err
	}

	out, err := encodeValue(v)
	if err != nil {
		return nil, err
	}

	logging.For("torrent").Debug("encoded torrent", "size", len(out))
	return out, nil
}

// ToValue builds the dictionary mirroring t's populated fields.
func (t *Torrent) ToValue() (*bencode.Dictionary, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	root := bencode.NewDictionary()

	announce, err := textValue("announce", t.Announce)
	if err != nil {
		return nil, err
	}
	root.Set("announce", announce)

	if len(t.AnnounceList) > 0 {
		tiers := make(bencode.List, 0, len(t.AnnounceList))
		for i, tier := range t.AnnounceList {
			urls := make(bencode.List, 0, len(tier))
			for j, url := range tier {
				s, err := textValue(fmt.Sprintf("announce-list[%d][%d]", i, j), url)
				if err != nil {
					return nil, err
				}
				urls = append(urls, s)
			}
			tiers = append(tiers, urls)
		}
		root.Set("announce-list", tiers)
	}

	if err := setOptionalText(root, "comment", t.Comment); err != nil {
		return nil, err
	}
	if err := setOptionalText(root, "created by", t.CreatedBy); err != nil {
		return nil, err
	}
	if t.CreationDate != nil {
		root.Set("creation date", bencode.Integer(t.CreationDate.Unix()))
	}
	if err := setOptionalText(root, "encoding", t.Encoding); err != nil {
		return nil, err
	}

	info, err := infoValue(t.Info)
	if err != nil {
		return nil, err
	}
	root.Set("info", info)

	return root, nil
}

// infoValue builds the info dictionary.
func infoValue(info *Info) (*bencode.Dictionary, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}

	d := bencode.NewDictionary()

	if info.IsSingleFile() {
		d.Set("length", bencode.Integer(*info.Length))
		if err := setOptionalText(d, "md5sum", info.MD5Sum); err != nil {
			return nil, fieldIn("info", err)
		}
	} else {
		files := make(bencode.List, 0, len(info.Files))
		for i, file := range info.Files {
			fv, err := fileValue(file)
			if err != nil {
				return nil, fieldIn(fmt.Sprintf("info.files[%d]", i), err)
			}
			files = append(files, fv)
		}
		d.Set("files", files)
	}

	name, err := textValue("info.name", info.Name)
	if err != nil {
		return nil, err
	}
	d.Set("name", name)
	d.Set("piece length", bencode.Integer(info.PieceLength))

	pieces := make(bencode.ByteString, 0, len(info.Pieces)*PieceHashSize)
	for _, hash := range info.Pieces {
		pieces = append(pieces, hash[:]...)
	}
	d.Set("pieces", pieces)

	return d, nil
}

func fileValue(file File) (*bencode.Dictionary, error) {
	d := bencode.NewDictionary()
	d.Set("length", bencode.Integer(file.Length))
	if err := setOptionalText(d, "md5sum", file.MD5Sum); err != nil {
		return nil, err
	}

	path := make(bencode.List, 0, len(file.Path))
	for i, component := range file.Path {
		s, err := textValue(fmt.Sprintf("path[%d]", i), component)
		if err != nil {
			return nil, err
		}
		path = append(path, s)
	}
	d.Set("path", path)
	return d, nil
}

// textValue converts a text field, which must be valid UTF-8.
func textValue(field, s string) (bencode.ByteString, error) {
	if !utf8.ValidString(s) {
		return nil, &FieldError{Field: field, Err: ErrInvalidText}
	}
	return bencode.ByteString(s), nil
}

func setOptionalText(d *bencode.Dictionary, key string, s *string) error {
	if s == nil {
		return nil
	}
	v, err := textValue(key, *s)
	if err != nil {
		return err
	}
	d.Set(key, v)
	return nil
}

// fieldIn prefixes the field path of a FieldError.
func fieldIn(prefix string, err error) error {
	if fe, ok := err.(*FieldError); ok {
		return &FieldError{Field: prefix + "." + fe.Field, Err: fe.Err}
	}
	return err
}

func encodeValue(v bencode.Value) ([]byte, error) {
	out, err := bencode.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode torrent: %w", err)
	}
	return out, nil
}
