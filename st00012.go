// Package st00012 encodes and decodes GOST R 56042 "ST00012" payment
// order strings, the delimiter-based text format embedded in Russian
// payment QR codes. A payload is a fixed 8-byte header (format marker,
// version, encoding code, separator) followed by separator-joined
// Key=Value requisite pairs, the first five of which must be the
// required payee requisites in fixed order.
package st00012

import (
	"fmt"
	"unicode/utf8"
)

// Header is the fixed 8-byte preamble of a payment payload. The format
// marker is always "ST"; the version defaults to "0001".
type Header struct {
	version   [4]byte
	encoding  Encoding
	separator byte
}

// Version returns the four version digits as a string.
func (h Header) Version() string {
	return string(h.version[:])
}

// Encoding returns the body encoding declared by the header.
func (h Header) Encoding() Encoding {
	return h.encoding
}

// Separator returns the byte that delimits the body's requisite pairs.
func (h Header) Separator() byte {
	return h.separator
}

// parseHeader reads the 8-byte preamble, checking the format marker
// against "ST" and the version against the parser's expected version.
// The separator byte is taken as-is; it is not validated at this layer.
func parseHeader(data []byte, version [4]byte) (Header, error) {
	if len(data) < headerByteCount {
		return Header{}, fmt.Errorf(
			"%w: payload too short to hold the %d-byte header (got %d bytes)",
			ErrCorruptedHeader, headerByteCount, len(data),
		)
	}
	if data[0] != formatIDBytes[0] || data[1] != formatIDBytes[1] {
		return Header{}, &WrongFormatIDError{Passed: [2]byte{data[0], data[1]}}
	}

	var passed [4]byte
	copy(passed[:], data[versionOffset:versionOffset+versionByteCount])
	if passed != version {
		return Header{}, &UnsupportedVersionError{Passed: passed, Current: version}
	}

	enc, err := encodingFromByte(data[encodingOffset])
	if err != nil {
		return Header{}, err
	}
	return Header{
		version:   version,
		encoding:  enc,
		separator: data[separatorOffset],
	}, nil
}

// appendTo writes the 8 header bytes onto buf.
func (h Header) appendTo(buf []byte) []byte {
	buf = append(buf, formatIDBytes[0], formatIDBytes[1])
	buf = append(buf, h.version[:]...)
	return append(buf, byte(h.encoding), h.separator)
}

// headerBytesFromString narrows the first 8 characters of s to single
// bytes. A valid header is all-ASCII, so any multi-byte character among
// the first 8 yields nil and fails the header length check; narrowing
// such a character instead could let its low byte pass the checks and
// leave the body sliced mid-character.
func headerBytesFromString(s string) []byte {
	b := make([]byte, 0, headerByteCount)
	for _, r := range s {
		if len(b) == headerByteCount {
			break
		}
		if r >= utf8.RuneSelf {
			return nil
		}
		b = append(b, byte(r))
	}
	return b
}
