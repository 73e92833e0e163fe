package st00012

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies the character set of the payment body. Its
// numeric value is the single-byte code stored at offset 6 of the wire
// header.
type Encoding byte

const (
	Win1251Encoding Encoding = '1'
	UTF8Encoding    Encoding = '2'
	KOI8REncoding   Encoding = '3'
)

func (e Encoding) String() string {
	switch e {
	case Win1251Encoding:
		return "Windows-1251"
	case UTF8Encoding:
		return "UTF-8"
	case KOI8REncoding:
		return "KOI8-R"
	}
	return fmt.Sprintf("Encoding(%q)", byte(e))
}

func encodingFromByte(b byte) (Encoding, error) {
	switch e := Encoding(b); e {
	case Win1251Encoding, UTF8Encoding, KOI8REncoding:
		return e, nil
	}
	return 0, &UnknownEncodingCodeError{Code: b}
}

// charmap returns the single-byte table backing e, or nil for UTF-8.
func (e Encoding) charmap() *charmap.Charmap {
	switch e {
	case Win1251Encoding:
		return charmap.Windows1251
	case KOI8REncoding:
		return charmap.KOI8R
	}
	return nil
}

// decodeBody converts body bytes into text. With replace set, bytes
// with no mapping become U+FFFD instead of failing the decode; UTF-8
// input additionally falls back to a lossy conversion.
func (e Encoding) decodeBody(body []byte, replace bool) (string, error) {
	if e == UTF8Encoding {
		if replace {
			return strings.ToValidUTF8(string(body), string(utf8.RuneError)), nil
		}
		if !utf8.Valid(body) {
			return "", fmt.Errorf("%w: body is not valid UTF-8", ErrDecoding)
		}
		return string(body), nil
	}

	cm := e.charmap()
	var b strings.Builder
	b.Grow(len(body))
	for _, c := range body {
		r := cm.DecodeByte(c)
		if r == utf8.RuneError && !replace {
			return "", fmt.Errorf(
				"%w: byte 0x%02x has no mapping in %s", ErrDecoding, c, e,
			)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// encodeBody converts text into body bytes. Unmappable characters
// always fail; the wire payload is never written lossily.
func (e Encoding) encodeBody(text string) ([]byte, error) {
	if e == UTF8Encoding {
		return []byte(text), nil
	}

	cm := e.charmap()
	out := make([]byte, 0, len(text))
	for _, r := range text {
		c, ok := cm.EncodeRune(r)
		if !ok {
			return nil, fmt.Errorf(
				"%w: character %q cannot be represented in %s", ErrEncoding, r, e,
			)
		}
		out = append(out, c)
	}
	return out, nil
}
