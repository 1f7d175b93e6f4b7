package torrent

import (
	"fmt"
	"time"

	zeebo "github.com/zeebo/bencode"
)

// Torrent represents a parsed torrent file.
//
// ParseTorrent fills RawInfo with the info dictionary's source bytes, and
// InfoBytes, ComputeInfoHash, MagnetURI and ToMetaInfo use those bytes as
// long as RawInfo is set. Encode always rebuilds from Info. After editing
// Info, set RawInfo to nil so the two agree.
type Torrent struct {
	Announce     string
	AnnounceList [][]string
	CreationDate *time.Time
	Comment      *string
	CreatedBy    *string
	Encoding     *string
	Info         *Info

	// Set by ParseTorrent; not part of the encoded form.
	RawInfo  []byte
	InfoHash InfoHash
}

// Validate checks that a constructed torrent can be encoded.
func (t *Torrent) Validate() error {
	if t.Info == nil {
		return &FieldError{Field: "info", Err: ErrMissingField}
	}
	return t.Info.Validate()
}

// InfoBytes returns the bencoded info dictionary: RawInfo when set, or a
// fresh encoding of Info. Changes to Info are not seen while RawInfo is set.
func (t *Torrent) InfoBytes() ([]byte, error) {
	if len(t.RawInfo) > 0 {
		return t.RawInfo, nil
	}
	if t.Info == nil {
		return nil, &FieldError{Field: "info", Err: ErrMissingField}
	}

	v, err := infoValue(t.Info)
	if err != nil {
		return nil, err
	}
	return encodeValue(v)
}

// UnmarshalInfo decodes the info dictionary into v, a pointer to a struct
// with `bencode` tags. Use it for keys this model does not carry, such as
// "private" or "source".
func (t *Torrent) UnmarshalInfo(v interface{}) error {
	raw, err := t.InfoBytes()
	if err != nil {
		return err
	}
	if err := zeebo.DecodeBytes(raw, v); err != nil {
		return fmt.Errorf("failed to unmarshal info dictionary: %w", err)
	}
	return nil
}
