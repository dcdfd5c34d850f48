package artikel

import (
	"bytes"
	"strings"

	"github.com/gogs/chardet"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// metaScanWindow is how much of the leading bytes are scanned for a
// <meta charset> declaration, per spec.md §4.1.
const metaScanWindow = 4096

// decodeBytes turns an HTML byte buffer into a normalized UTF-8 string.
// It tries, in order: a byte-order mark, a declared <meta charset>, and
// a statistical detector. Invalid byte sequences under the chosen
// encoding are replaced with U+FFFD rather than failing. EEncoding is
// returned only when none of the three approaches can hypothesize an
// encoding at all.
func decodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	if s, ok := decodeBOM(data); ok {
		return s, nil
	}

	window := data
	if len(window) > metaScanWindow {
		window = window[:metaScanWindow]
	}

	if enc, name, certain := charset.DetermineEncoding(window, "text/html"); certain && enc != nil {
		if s, err := transcode(data, enc); err == nil {
			log.Debug().Str("encoding", name).Msg("decoded via meta/declared charset")
			return s, nil
		}
	}

	det := chardet.NewTextDetector()
	result, err := det.DetectBest(data)
	if err != nil || result == nil {
		return "", Errorf(EEncoding, "no encoding could be hypothesized")
	}

	enc, _ := charsetByName(result.Charset)
	if enc == nil {
		return "", Errorf(EEncoding, "unsupported detected encoding %q", result.Charset)
	}

	s, err := transcode(data, enc)
	if err != nil {
		return "", Errorf(EEncoding, "transcode from %q: %v", result.Charset, err)
	}
	log.Debug().Str("encoding", result.Charset).Float64("confidence", float64(result.Confidence)).Msg("decoded via statistical detector")
	return s, nil
}

// decodeBOM detects and strips a UTF-8/UTF-16 byte-order mark, returning
// the transcoded string when one is present.
func decodeBOM(data []byte) (string, bool) {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return string(data[3:]), true
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		s, err := transcode(data[2:], unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))
		return s, err == nil
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		s, err := transcode(data[2:], unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))
		return s, err == nil
	default:
		return "", false
	}
}

// transcode decodes data using enc, substituting U+FFFD for invalid
// byte sequences (the standard behavior of encoding.Decoder.Transform).
func transcode(data []byte, enc encoding.Encoding) (string, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// charsetByName resolves a chardet label (e.g. "windows-1252",
// "ISO-8859-1", "Shift_JIS") to a golang.org/x/text encoding using the
// same IANA-name lookup golang.org/x/net/html/charset exposes for
// <meta charset> values.
func charsetByName(name string) (encoding.Encoding, string) {
	name = strings.TrimSpace(name)
	return charset.Lookup(name)
}
