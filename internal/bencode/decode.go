package bencode

import (
	"bytes"
	"strconv"

	"github.com/nothingsh/TorrentModel/internal/logging"
)

// Decoder reads bencode values from a complete in-memory buffer. Pos is the
// cursor into Data; a Decoder belongs to a single goroutine.
type Decoder struct {
	Data []byte
	Pos  int

	depth int
	cfg   config
}

// NewDecoder returns a decoder positioned at the start of data.
func NewDecoder(data []byte, opts ...Option) *Decoder {
	return &Decoder{Data: data, cfg: newConfig(opts)}
}

// Decode decodes a complete buffer holding exactly one bencode value.
func Decode(data []byte, opts ...Option) (Value, error) {
	d := NewDecoder(data, opts...)
	v, err := d.Decode()
	if err == nil {
		err = d.finish()
	}
	if err != nil {
		logging.For("bencode").Debug("decode failed", "size", len(data), "err", err)
		return nil, err
	}
	return v, nil
}

// Decode decodes the value at the cursor and advances past it.
func (d *Decoder) Decode() (Value, error) {
	if d.Pos >= len(d.Data) {
		return nil, d.truncated()
	}

	switch c := d.Data[d.Pos]; {
	case c == 'i':
		return d.decodeInt()
	case c == 'l':
		return d.decodeList()
	case c == 'd':
		return d.decodeDict()
	case isDigit(c):
		return d.decodeString()
	default:
		return nil, &DelimiterError{Offset: d.Pos, Delim: c}
	}
}

// decodeInt decodes i<number>e
func (d *Decoder) decodeInt() (Value, error) {
	n, err := d.readInt()
	if err != nil {
		return nil, err
	}
	return Integer(n), nil
}

// decodeString decodes <length>:<payload>. The payload is copied so the
// tree does not alias the input buffer.
func (d *Decoder) decodeString() (Value, error) {
	payload, err := d.readBytes()
	if err != nil {
		return nil, err
	}
	s := make(ByteString, len(payload))
	copy(s, payload)
	return s, nil
}

// decodeList decodes l<elements>e
func (d *Decoder) decodeList() (Value, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()
	d.Pos++ // skip 'l'

	list := List{}
	for {
		if d.Pos >= len(d.Data) {
			return nil, d.truncated()
		}
		if d.Data[d.Pos] == 'e' {
			break
		}

		item, err := d.Decode()
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}

	d.Pos++ // skip 'e'
	return list, nil
}

// decodeDict decodes d<key-value pairs>e. Duplicate keys are not an error:
// the last value wins.
func (d *Decoder) decodeDict() (Value, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()
	d.Pos++ // skip 'd'

	dict := NewDictionary()
	for {
		if d.Pos >= len(d.Data) {
			return nil, d.truncated()
		}
		if d.Data[d.Pos] == 'e' {
			break
		}

		key, err := d.readKey()
		if err != nil {
			return nil, err
		}

		value, err := d.Decode()
		if err != nil {
			return nil, err
		}
		dict.Set(string(key), value)
	}

	d.Pos++ // skip 'e'
	return dict, nil
}

// readInt consumes i<number>e and returns the number.
func (d *Decoder) readInt() (int64, error) {
	d.Pos++ // skip 'i'

	start := d.Pos
	end := bytes.IndexByte(d.Data[start:], 'e')
	if end < 0 {
		return 0, d.truncated()
	}
	end += start

	n, ok := d.parseInt(d.Data[start:end], true)
	if !ok {
		return 0, &SyntaxError{Offset: start, Err: ErrInvalidInteger}
	}

	d.Pos = end + 1 // skip 'e'
	return n, nil
}

// readBytes consumes <length>:<payload> and returns the payload as a
// sub-slice of the input.
func (d *Decoder) readBytes() ([]byte, error) {
	start := d.Pos

	var colon int
	if d.cfg.lenientInts {
		colon = bytes.IndexByte(d.Data[start:], ':')
		if colon < 0 {
			return nil, d.truncated()
		}
		colon += start
	} else {
		colon = start
		for colon < len(d.Data) && isDigit(d.Data[colon]) {
			colon++
		}
		if colon >= len(d.Data) {
			return nil, d.truncated()
		}
		if d.Data[colon] != ':' {
			return nil, &SyntaxError{Offset: colon, Err: ErrInvalidInteger}
		}
	}

	length, ok := d.parseInt(d.Data[start:colon], false)
	if !ok {
		return nil, &SyntaxError{Offset: start, Err: ErrInvalidInteger}
	}

	begin := colon + 1
	if length > int64(len(d.Data)-begin) {
		return nil, d.truncated()
	}

	d.Pos = begin + int(length)
	return d.Data[begin:d.Pos], nil
}

// readKey consumes a dictionary key, which must be a byte string.
func (d *Decoder) readKey() ([]byte, error) {
	if !isDigit(d.Data[d.Pos]) {
		return nil, &SyntaxError{Offset: d.Pos, Err: ErrInvalidKey}
	}
	return d.readBytes()
}

// parseInt parses an integer or length token. The strict grammar is
// -?(0|[1-9][0-9]*) without "-0"; lengths may not be signed.
func (d *Decoder) parseInt(tok []byte, signed bool) (int64, bool) {
	if len(tok) == 0 {
		return 0, false
	}

	if !d.cfg.lenientInts {
		digits := tok
		if signed && digits[0] == '-' {
			digits = digits[1:]
		}
		if len(digits) == 0 {
			return 0, false
		}
		for _, c := range digits {
			if !isDigit(c) {
				return 0, false
			}
		}
		if digits[0] == '0' && (len(digits) > 1 || len(digits) < len(tok)) {
			return 0, false
		}
	}

	n, err := strconv.ParseInt(string(tok), 10, 64)
	if err != nil {
		return 0, false
	}
	if !signed && n < 0 {
		return 0, false
	}
	return n, true
}

// enter opens a container; callers defer leave once it succeeds.
func (d *Decoder) enter() error {
	if d.depth >= d.cfg.maxDepth {
		return &SyntaxError{Offset: d.Pos, Err: ErrNestingTooDeep}
	}
	d.depth++
	return nil
}

func (d *Decoder) leave() {
	d.depth--
}

func (d *Decoder) finish() error {
	if !d.cfg.allowTrailing && d.Pos != len(d.Data) {
		return &SyntaxError{Offset: d.Pos, Err: ErrTrailingData}
	}
	return nil
}

func (d *Decoder) truncated() error {
	return &SyntaxError{Offset: len(d.Data), Err: ErrTruncated}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
