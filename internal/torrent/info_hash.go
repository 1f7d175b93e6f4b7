package torrent

import (
	"crypto/sha1"
	"encoding/hex"
)

// InfoHash is the SHA-1 of the bencoded info dictionary; it identifies the
// torrent.
type InfoHash [20]byte

func (ih InfoHash) String() string {
	return hex.EncodeToString(ih[:])
}

// HashInfo hashes raw info dictionary bytes.
func HashInfo(rawInfoDict []byte) InfoHash {
	return InfoHash(sha1.Sum(rawInfoDict))
}

// ComputeInfoHash hashes InfoBytes. For a parsed torrent it equals the
// InfoHash field.
func (t *Torrent) ComputeInfoHash() (InfoHash, error) {
	raw, err := t.InfoBytes()
	if err != nil {
		return InfoHash{}, err
	}
	return HashInfo(raw), nil
}
