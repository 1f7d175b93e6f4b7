package torrent

import (
	"fmt"
	"strings"
)

// MagnetURI returns a magnet link naming t by info hash, with its display
// name and every tracker in announce order.
func (t *Torrent) MagnetURI() (string, error) {
	hash := t.InfoHash
	if len(t.RawInfo) == 0 {
		computed, err := t.ComputeInfoHash()
		if err != nil {
			return "", err
		}
		hash = computed
	}

	var b strings.Builder
	b.WriteString("magnet:?xt=urn:btih:")
	b.WriteString(hash.String())
	if t.Info != nil && t.Info.Name != "" {
		b.WriteString("&dn=")
		b.WriteString(percentEncode([]byte(t.Info.Name)))
	}
	for _, tracker := range t.trackers() {
		b.WriteString("&tr=")
		b.WriteString(percentEncode([]byte(tracker)))
	}
	return b.String(), nil
}

// trackers lists announce followed by the announce-list URLs, without
// repeats.
func (t *Torrent) trackers() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(url string) {
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		out = append(out, url)
	}

	add(t.Announce)
	for _, tier := range t.AnnounceList {
		for _, url := range tier {
			add(url)
		}
	}
	return out
}

// percentEncode escapes everything outside the RFC 3986 unreserved set.
func percentEncode(data []byte) string {
	var b strings.Builder
	for _, c := range data {
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') || c == '-' || c == '_' ||
			c == '.' || c == '~' {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
