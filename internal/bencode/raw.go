package bencode

// Span is a half-open byte range [Start, End) of the input buffer.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Skip advances the cursor past the value at the cursor without building
// it. The value is checked against the same grammar as Decode.
func (d *Decoder) Skip() error {
	if d.Pos >= len(d.Data) {
		return d.truncated()
	}

	switch c := d.Data[d.Pos]; {
	case c == 'i':
		_, err := d.readInt()
		return err
	case c == 'l':
		return d.skipList()
	case c == 'd':
		return d.skipDict()
	case isDigit(c):
		_, err := d.readBytes()
		return err
	default:
		return &DelimiterError{Offset: d.Pos, Delim: c}
	}
}

func (d *Decoder) skipList() error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	d.Pos++ // skip 'l'

	for {
		if d.Pos >= len(d.Data) {
			return d.truncated()
		}
		if d.Data[d.Pos] == 'e' {
			break
		}
		if err := d.Skip(); err != nil {
			return err
		}
	}

	d.Pos++ // skip 'e'
	return nil
}

func (d *Decoder) skipDict() error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	d.Pos++ // skip 'd'

	for {
		if d.Pos >= len(d.Data) {
			return d.truncated()
		}
		if d.Data[d.Pos] == 'e' {
			break
		}
		if _, err := d.readKey(); err != nil {
			return err
		}
		if err := d.Skip(); err != nil {
			return err
		}
	}

	d.Pos++ // skip 'e'
	return nil
}

// DictionarySpans scans a buffer whose top-level value is a dictionary and
// returns, for each immediate key, the exact byte range of its value in
// data. Nested values are validated but not built. A repeated key reports
// the range of its last occurrence.
func DictionarySpans(data []byte, opts ...Option) (map[string]Span, error) {
	d := NewDecoder(data, opts...)
	if len(data) == 0 {
		return nil, d.truncated()
	}
	if data[0] != 'd' {
		return nil, &SyntaxError{Offset: 0, Err: ErrNotDictionary}
	}
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()
	d.Pos++ // skip 'd'

	spans := make(map[string]Span)
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

		start := d.Pos
		if err := d.Skip(); err != nil {
			return nil, err
		}
		spans[string(key)] = Span{Start: start, End: d.Pos}
	}
	d.Pos++ // skip 'e'

	if err := d.finish(); err != nil {
		return nil, err
	}
	return spans, nil
}

// RawDictionary is DictionarySpans returning the value bytes themselves.
// The slices alias data and are capped so appending to one cannot overwrite
// its neighbour.
func RawDictionary(data []byte, opts ...Option) (map[string][]byte, error) {
	spans, err := DictionarySpans(data, opts...)
	if err != nil {
		return nil, err
	}

	raw := make(map[string][]byte, len(spans))
	for key, s := range spans {
		raw[key] = data[s.Start:s.End:s.End]
	}
	return raw, nil
}
