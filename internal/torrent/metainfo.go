package torrent

import (
	"fmt"

	abencode "github.com/anacrolix/torrent/bencode"
	"github.com/anacrolix/torrent/metainfo"

	"github.com/nothingsh/TorrentModel/internal/bencode"
)

// ToMetaInfo converts t to the anacrolix metainfo model. InfoBytes carries
// the exact info dictionary, so HashInfoBytes matches t's info hash.
func (t *Torrent) ToMetaInfo() (*metainfo.MetaInfo, error) {
	infoBytes, err := t.InfoBytes()
	if err != nil {
		return nil, err
	}

	mi := &metainfo.MetaInfo{
		InfoBytes: append([]byte(nil), infoBytes...),
		Announce:  t.Announce,
	}
	for _, tier := range t.AnnounceList {
		mi.AnnounceList = append(mi.AnnounceList, append([]string(nil), tier...))
	}
	if t.CreationDate != nil {
		mi.CreationDate = t.CreationDate.Unix()
	}
	if t.Comment != nil {
		mi.Comment = *t.Comment
	}
	if t.CreatedBy != nil {
		mi.CreatedBy = *t.CreatedBy
	}
	if t.Encoding != nil {
		mi.Encoding = *t.Encoding
	}
	return mi, nil
}

// FromMetaInfo converts an anacrolix metainfo into a Torrent by encoding it
// and parsing the result.
func FromMetaInfo(mi *metainfo.MetaInfo, opts ...bencode.Option) (*Torrent, error) {
	data, err := abencode.Marshal(mi)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metainfo: %w", err)
	}
	return ParseTorrent(data, opts...)
}
