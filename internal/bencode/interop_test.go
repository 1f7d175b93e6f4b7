package bencode_test

import (
	"bytes"
	"reflect"
	"testing"

	anacrolix "github.com/anacrolix/torrent/bencode"
	jackpal "github.com/jackpal/bencode-go"
	zeebo "github.com/zeebo/bencode"

	"github.com/nothingsh/TorrentModel/internal/bencode"
)

// sample is the same tree in our model and in the generic form the other
// codecs decode into.
func sample() (bencode.Value, map[string]interface{}) {
	ours := dict(
		"cow", bencode.ByteString("moo"),
		"list", bencode.List{bencode.ByteString("a"), bencode.Integer(-1)},
		"n", bencode.Integer(42),
		"sub", dict("x", bencode.ByteString("\x00\xff")),
	)
	generic := map[string]interface{}{
		"cow":  "moo",
		"list": []interface{}{"a", int64(-1)},
		"n":    int64(42),
		"sub":  map[string]interface{}{"x": "\x00\xff"},
	}
	return ours, generic
}

func TestEncodeReadableByOtherCodecs(t *testing.T) {
	ours, generic := sample()
	encoded, err := bencode.Encode(ours)
	if err != nil {
		t.Fatal(err)
	}

	var z interface{}
	if err := zeebo.DecodeBytes(encoded, &z); err != nil {
		t.Fatalf("zeebo: %v", err)
	}
	if !reflect.DeepEqual(z, generic) {
		t.Errorf("zeebo decoded %#v, want %#v", z, generic)
	}

	j, err := jackpal.Decode(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("jackpal: %v", err)
	}
	if !reflect.DeepEqual(j, generic) {
		t.Errorf("jackpal decoded %#v, want %#v", j, generic)
	}

	var a interface{}
	if err := anacrolix.Unmarshal(encoded, &a); err != nil {
		t.Fatalf("anacrolix: %v", err)
	}
	if !reflect.DeepEqual(a, generic) {
		t.Errorf("anacrolix decoded %#v, want %#v", a, generic)
	}
}

func TestDecodeOtherCodecsOutput(t *testing.T) {
	ours, generic := sample()

	var jbuf bytes.Buffer
	if err := jackpal.Marshal(&jbuf, generic); err != nil {
		t.Fatalf("jackpal: %v", err)
	}
	zbuf, err := zeebo.EncodeBytes(generic)
	if err != nil {
		t.Fatalf("zeebo: %v", err)
	}

	for name, encoded := range map[string][]byte{"jackpal": jbuf.Bytes(), "zeebo": zbuf} {
		v, err := bencode.Decode(encoded)
		if err != nil {
			t.Fatalf("%s output: %v", name, err)
		}
		if !bencode.Equal(v, ours) {
			t.Errorf("%s output decoded to %#v", name, v)
		}

		// canonical input re-encodes byte for byte
		out, err := bencode.Encode(v)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out, encoded) {
			t.Errorf("%s: re-encoded %q, want %q", name, out, encoded)
		}
	}
}
