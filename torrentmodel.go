// Package torrentmodel reads and writes BitTorrent metainfo files.
//
// Decode turns a .torrent buffer into a Torrent whose InfoHash is the SHA-1 of
// the info dictionary's exact source bytes. Encode writes a Torrent back out.
// DecodeValue and EncodeValue work on the generic bencode tree.
package torrentmodel

import (
	"log/slog"

	"github.com/nothingsh/TorrentModel/internal/bencode"
	"github.com/nothingsh/TorrentModel/internal/logging"
	"github.com/nothingsh/TorrentModel/internal/torrent"
)

type (
	Torrent    = torrent.Torrent
	Info       = torrent.Info
	File       = torrent.File
	InfoHash   = torrent.InfoHash
	FieldError = torrent.FieldError
	FileSpan   = torrent.FileSpan
	FileRange  = torrent.FileRange

	Value          = bencode.Value
	Integer        = bencode.Integer
	ByteString     = bencode.ByteString
	List           = bencode.List
	Dictionary     = bencode.Dictionary
	Span           = bencode.Span
	Option         = bencode.Option
	SyntaxError    = bencode.SyntaxError
	DelimiterError = bencode.DelimiterError
)

const DefaultMaxDepth = bencode.DefaultMaxDepth

var (
	ErrTruncated             = bencode.ErrTruncated
	ErrInvalidInteger        = bencode.ErrInvalidInteger
	ErrUnrecognizedDelimiter = bencode.ErrUnrecognizedDelimiter
	ErrInvalidKey            = bencode.ErrInvalidKey
	ErrInvalidText           = bencode.ErrInvalidText
	ErrNestingTooDeep        = bencode.ErrNestingTooDeep
	ErrTrailingData          = bencode.ErrTrailingData
	ErrNotDictionary         = bencode.ErrNotDictionary
	ErrUnsupportedValue      = bencode.ErrUnsupportedValue

	ErrMissingField       = torrent.ErrMissingField
	ErrWrongFieldType     = torrent.ErrWrongFieldType
	ErrInvalidPieceLength = torrent.ErrInvalidPieceLength
	ErrOutOfRange         = torrent.ErrOutOfRange
	ErrUnsafePath         = torrent.ErrUnsafePath
)

var (
	WithMaxDepth        = bencode.WithMaxDepth
	WithLenientIntegers = bencode.WithLenientIntegers
	WithTrailingData    = bencode.WithTrailingData
)

// Decode parses a metainfo buffer.
func Decode(data []byte, opts ...Option) (*Torrent, error) {
	return torrent.ParseTorrent(data, opts...)
}

// Encode serializes t. Keys are written in byte order.
func Encode(t *Torrent) ([]byte, error) {
	return torrent.Encode(t)
}

// EncodeCanonical serializes t with keys sorted at every level.
func EncodeCanonical(t *Torrent) ([]byte, error) {
	return torrent.EncodeCanonical(t)
}

func DecodeValue(data []byte, opts ...Option) (Value, error) {
	return bencode.Decode(data, opts...)
}

// EncodeValue writes v with dictionary keys in insertion order.
func EncodeValue(v Value) ([]byte, error) {
	return bencode.Encode(v)
}

func NewDictionary() *Dictionary {
	return bencode.NewDictionary()
}

// DictionarySpans returns the byte range of every value in the top-level
// dictionary of data.
func DictionarySpans(data []byte, opts ...Option) (map[string]Span, error) {
	return bencode.DictionarySpans(data, opts...)
}

// RawDictionary is DictionarySpans with the ranges sliced out of data.
func RawDictionary(data []byte, opts ...Option) (map[string][]byte, error) {
	return bencode.RawDictionary(data, opts...)
}

// SetLogger routes the package's debug logging to l. Nil discards it again.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}
