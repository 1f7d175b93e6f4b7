package torrent

import (
	"errors"
	"testing"
)

func TestMagnetURI(t *testing.T) {
	tr, err := ParseTorrent([]byte(withInfo(multiFileInfo())))
	if err != nil {
		t.Fatal(err)
	}

	got, err := tr.MagnetURI()
	if err != nil {
		t.Fatalf("MagnetURI: %v", err)
	}
	want := "magnet:?xt=urn:btih:" + tr.InfoHash.String() +
		"&dn=dir" +
		"&tr=http%3A%2F%2Ftracker%2F" +
		"&tr=http%3A%2F%2Fbackup%2Fa%2F" +
		"&tr=udp%3A%2F%2Fbackup%2Fb"
	if got != want {
		t.Errorf("MagnetURI =\n%s\nwant\n%s", got, want)
	}
}

func TestMagnetURIConstructed(t *testing.T) {
	tr := constructed()
	tr.AnnounceList = nil
	tr.Info.Name = "my album"

	hash, err := tr.ComputeInfoHash()
	if err != nil {
		t.Fatal(err)
	}
	got, err := tr.MagnetURI()
	if err != nil {
		t.Fatal(err)
	}
	want := "magnet:?xt=urn:btih:" + hash.String() + "&dn=my%20album&tr=http%3A%2F%2Ftracker.example%2Fannounce"
	if got != want {
		t.Errorf("MagnetURI = %s, want %s", got, want)
	}

	if _, err := (&Torrent{}).MagnetURI(); !errors.Is(err, ErrMissingField) {
		t.Errorf("MagnetURI without info: %v", err)
	}
}

func TestPercentEncode(t *testing.T) {
	if got := percentEncode([]byte{0x12, 'a', '~', 0xff, ' '}); got != "%12a~%FF%20" {
		t.Errorf("percentEncode = %s", got)
	}
}
