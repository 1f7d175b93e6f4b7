package torrent

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/anacrolix/torrent/metainfo"

	"github.com/nothingsh/TorrentModel/internal/bencode"
)

func TestEncodeCanonical(t *testing.T) {
	tr := constructed()

	canonical, err := EncodeCanonical(tr)
	if err != nil {
		t.Fatalf("EncodeCanonical: %v", err)
	}
	plain, err := Encode(tr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(canonical, plain) {
		t.Errorf("EncodeCanonical =\n%q\nEncode =\n%q", canonical, plain)
	}

	tr.Info = nil
	if _, err := EncodeCanonical(tr); !errors.Is(err, ErrMissingField) {
		t.Errorf("EncodeCanonical without info: %v", err)
	}
}

func TestCanonicalizeSortsKeys(t *testing.T) {
	unsorted := []byte("d4:spam4:eggs3:cowd1:zi1e1:ai2eee")
	v, err := bencode.Decode(unsorted)
	if err != nil {
		t.Fatal(err)
	}

	out, err := Canonicalize(v)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if want := "d3:cowd1:ai2e1:zi1ee4:spam4:eggse"; string(out) != want {
		t.Errorf("Canonicalize = %q, want %q", out, want)
	}

	if _, err := Canonicalize(bencode.List{nil}); !errors.Is(err, bencode.ErrUnsupportedValue) {
		t.Errorf("Canonicalize(nil item): %v", err)
	}
}

func TestMetaInfoRoundTrip(t *testing.T) {
	tr, err := ParseTorrent([]byte(withInfo(multiFileInfo())))
	if err != nil {
		t.Fatal(err)
	}

	mi, err := tr.ToMetaInfo()
	if err != nil {
		t.Fatalf("ToMetaInfo: %v", err)
	}
	if [20]byte(mi.HashInfoBytes()) != [20]byte(tr.InfoHash) {
		t.Errorf("HashInfoBytes = %x, want %s", mi.HashInfoBytes(), tr.InfoHash)
	}
	if mi.Announce != tr.Announce || mi.Comment != "hello" || mi.CreatedBy != "mktorrent" || mi.Encoding != "UTF-8" {
		t.Errorf("MetaInfo = %+v", mi)
	}
	if mi.CreationDate != 1700000000 {
		t.Errorf("CreationDate = %d", mi.CreationDate)
	}
	if !reflect.DeepEqual([][]string(mi.AnnounceList), tr.AnnounceList) {
		t.Errorf("AnnounceList = %q", mi.AnnounceList)
	}

	back, err := FromMetaInfo(mi)
	if err != nil {
		t.Fatalf("FromMetaInfo: %v", err)
	}
	if !reflect.DeepEqual(back, tr) {
		t.Errorf("FromMetaInfo = %+v, want %+v", back, tr)
	}
}

func TestMetaInfoFromConstructed(t *testing.T) {
	tr := constructed()
	mi, err := tr.ToMetaInfo()
	if err != nil {
		t.Fatal(err)
	}
	hash, err := tr.ComputeInfoHash()
	if err != nil {
		t.Fatal(err)
	}
	if [20]byte(mi.HashInfoBytes()) != [20]byte(hash) {
		t.Errorf("HashInfoBytes = %x, want %s", mi.HashInfoBytes(), hash)
	}

	tr.Info = nil
	if _, err := tr.ToMetaInfo(); !errors.Is(err, ErrMissingField) {
		t.Errorf("ToMetaInfo without info: %v", err)
	}
}

func TestFromMetaInfoMissingInfo(t *testing.T) {
	mi := &metainfo.MetaInfo{Announce: "http://tracker/"}
	if _, err := FromMetaInfo(mi); !errors.Is(err, ErrMissingField) {
		t.Errorf("FromMetaInfo without info: %v", err)
	}
}

func TestUnmarshalInfo(t *testing.T) {
	info := append(singleFileInfo(), entry{key: "private", val: 1}, entry{key: "source", val: "tracker.example"})
	tr, err := ParseTorrent([]byte(minimal(info)))
	if err != nil {
		t.Fatal(err)
	}

	var extra struct {
		Name    string `bencode:"name"`
		Private int64  `bencode:"private"`
		Source  string `bencode:"source"`
	}
	if err := tr.UnmarshalInfo(&extra); err != nil {
		t.Fatalf("UnmarshalInfo: %v", err)
	}
	if extra.Name != "file.bin" || extra.Private != 1 || extra.Source != "tracker.example" {
		t.Errorf("UnmarshalInfo = %+v", extra)
	}

	if err := (&Torrent{}).UnmarshalInfo(&extra); !errors.Is(err, ErrMissingField) {
		t.Errorf("UnmarshalInfo without info: %v", err)
	}
}
