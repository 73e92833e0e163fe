package st00012

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ExactSizeString is text whose character count equals its size bound.
// Counts are in Unicode code points, not bytes, so a 20-character
// Cyrillic account holder name is a valid ExactSizeString of size 20
// regardless of its byte length.
type ExactSizeString struct {
	value string
	size  int
}

// NewExactSizeString validates that val is exactly size characters
// long, returning ErrLengthMismatch otherwise.
func NewExactSizeString(val string, size int) (ExactSizeString, error) {
	if n := utf8.RuneCountInString(val); n != size {
		return ExactSizeString{}, fmt.Errorf(
			"%w: expected exactly %d characters, got %d",
			ErrLengthMismatch, size, n,
		)
	}
	return ExactSizeString{value: val, size: size}, nil
}

// TruncateExactSizeString truncates val down to size characters when it
// is longer, and returns ErrTooShort when it is shorter.
func TruncateExactSizeString(val string, size int) (ExactSizeString, error) {
	switch n := utf8.RuneCountInString(val); {
	case n < size:
		return ExactSizeString{}, fmt.Errorf(
			"%w: expected at least %d characters, got %d",
			ErrTooShort, size, n,
		)
	case n == size:
		return ExactSizeString{value: val, size: size}, nil
	default:
		return ExactSizeString{value: truncateRunes(val, size), size: size}, nil
	}
}

// UncheckedExactSizeString wraps val without validating its length. The
// caller guarantees val is exactly size characters long.
func UncheckedExactSizeString(val string, size int) ExactSizeString {
	return ExactSizeString{value: val, size: size}
}

func (s ExactSizeString) String() string {
	return s.value
}

// Size returns the character count bound the value was validated
// against.
func (s ExactSizeString) Size() int {
	return s.size
}

// Equal reports whether s and other hold the same text.
func (s ExactSizeString) Equal(other ExactSizeString) bool {
	return s.value == other.value
}

// Compare orders by text content.
func (s ExactSizeString) Compare(other ExactSizeString) int {
	return strings.Compare(s.value, other.value)
}

// MaxSizeString is text whose character count is at most its size
// bound, counted in Unicode code points.
type MaxSizeString struct {
	value string
	size  int
}

// NewMaxSizeString validates that val is at most size characters long,
// returning ErrLengthMismatch otherwise.
func NewMaxSizeString(val string, size int) (MaxSizeString, error) {
	if n := utf8.RuneCountInString(val); n > size {
		return MaxSizeString{}, fmt.Errorf(
			"%w: expected at most %d characters, got %d",
			ErrLengthMismatch, size, n,
		)
	}
	return MaxSizeString{value: val, size: size}, nil
}

// TruncateMaxSizeString truncates val down to size characters when it
// is longer, accepting it unchanged otherwise.
func TruncateMaxSizeString(val string, size int) MaxSizeString {
	if utf8.RuneCountInString(val) > size {
		return MaxSizeString{value: truncateRunes(val, size), size: size}
	}
	return MaxSizeString{value: val, size: size}
}

// UncheckedMaxSizeString wraps val without validating its length. The
// caller guarantees val is at most size characters long.
func UncheckedMaxSizeString(val string, size int) MaxSizeString {
	return MaxSizeString{value: val, size: size}
}

func (s MaxSizeString) String() string {
	return s.value
}

// Size returns the character count bound the value was validated
// against.
func (s MaxSizeString) Size() int {
	return s.size
}

// Equal reports whether s and other hold the same text.
func (s MaxSizeString) Equal(other MaxSizeString) bool {
	return s.value == other.value
}

// Compare orders by text content.
func (s MaxSizeString) Compare(other MaxSizeString) int {
	return strings.Compare(s.value, other.value)
}

// truncateRunes returns the prefix of val holding at most n characters.
func truncateRunes(val string, n int) string {
	for i := range val {
		if n == 0 {
			return val[:i]
		}
		n--
	}
	return val
}
