package torrent

import (
	"strconv"
	"strings"
)

type entry struct {
	key string
	val any
}

// benc writes test fixtures: string, int, []any and []entry (dictionary, in
// the order given).
func benc(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Itoa(len(val)) + ":" + val
	case int:
		return "i" + strconv.Itoa(val) + "e"
	case []any:
		out := "l"
		for _, item := range val {
			out += benc(item)
		}
		return out + "e"
	case []entry:
		out := "d"
		for _, item := range val {
			out += benc(item.key)
			out += benc(item.val)
		}
		return out + "e"
	default:
		panic("unsupported bencode type")
	}
}

var testPieces = strings.Repeat("a", 20) + strings.Repeat("b", 20)

func singleFileInfo() []entry {
	return []entry{
		{key: "length", val: 1024},
		{key: "name", val: "file.bin"},
		{key: "piece length", val: 16384},
		{key: "pieces", val: testPieces},
	}
}

func multiFileInfo() []entry {
	return []entry{
		{key: "files", val: []any{
			[]entry{
				{key: "length", val: 100},
				{key: "path", val: []any{"a.txt"}},
			},
			[]entry{
				{key: "length", val: 200},
				{key: "md5sum", val: "d41d8cd98f00b204e9800998ecf8427e"},
				{key: "path", val: []any{"sub", "b.txt"}},
			},
		}},
		{key: "name", val: "dir"},
		{key: "piece length", val: 256},
		{key: "pieces", val: testPieces},
	}
}

func withInfo(info any) string {
	return benc([]entry{
		{key: "announce", val: "http://tracker/"},
		{key: "announce-list", val: []any{
			[]any{"http://tracker/"},
			[]any{"http://backup/a/", "udp://backup/b"},
		}},
		{key: "comment", val: "hello"},
		{key: "created by", val: "mktorrent"},
		{key: "creation date", val: 1700000000},
		{key: "encoding", val: "UTF-8"},
		{key: "info", val: info},
	})
}

func minimal(info any) string {
	return benc([]entry{
		{key: "announce", val: "http://tracker/"},
		{key: "info", val: info},
	})
}
