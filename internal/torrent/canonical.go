package torrent

import (
	"bytes"
	"fmt"

	jackpal "github.com/jackpal/bencode-go"

	"github.com/nothingsh/TorrentModel/internal/bencode"
)

// EncodeCanonical encodes t in strict canonical bencode, with dictionary
// keys sorted at every level regardless of insertion order.
func EncodeCanonical(t *Torrent) ([]byte, error) {
	v, err := t.ToValue()
	if err != nil {
		return nil, err
	}
	return Canonicalize(v)
}

// Canonicalize encodes any tree with sorted dictionary keys. Encoding the
// result's decoded tree again with bencode.Encode is byte-identical.
func Canonicalize(v bencode.Value) ([]byte, error) {
	generic, err := toGeneric(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jackpal.Marshal(&buf, generic); err != nil {
		return nil, fmt.Errorf("failed to encode canonical form: %w", err)
	}
	return buf.Bytes(), nil
}

// toGeneric converts a tree to the int64/string/slice/map shapes the
// reflection-based codecs understand.
func toGeneric(v bencode.Value) (interface{}, error) {
	switch x := v.(type) {
	case bencode.Integer:
		return int64(x), nil
	case bencode.ByteString:
		return string(x), nil
	case bencode.List:
		out := make([]interface{}, 0, len(x))
		for _, item := range x {
			g, err := toGeneric(item)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
		return out, nil
	case *bencode.Dictionary:
		out := make(map[string]interface{}, x.Len())
		for _, key := range x.Keys() {
			item, _ := x.Get(key)
			g, err := toGeneric(item)
			if err != nil {
				return nil, err
			}
			out[key] = g
		}
		return out, nil
	default:
		return nil, fmt.Errorf("failed to encode canonical form: %w: %T", bencode.ErrUnsupportedValue, v)
	}
}
