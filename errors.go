package st00012

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptedHeader indicates the payload cannot hold a valid
	// 8-byte header, or a text payload declares a non-UTF-8 body.
	ErrCorruptedHeader = errors.New("corrupted header")

	// ErrDecoding indicates the body bytes could not be decoded with
	// the encoding declared in the header.
	ErrDecoding = errors.New("body decoding failed")

	// ErrEncoding indicates a requisite contains a character that the
	// target encoding cannot represent.
	ErrEncoding = errors.New("body encoding failed")

	// ErrRequiredRequisiteNotPresented indicates the body holds fewer
	// pairs than the five required requisites.
	ErrRequiredRequisiteNotPresented = errors.New("required requisites not presented")

	// ErrLengthMismatch indicates a string did not match an exact
	// character count.
	ErrLengthMismatch = errors.New("string length mismatch")

	// ErrTooShort indicates a string was too short to truncate to an
	// exact character count.
	ErrTooShort = errors.New("string too short")

	// ErrNoSum indicates the payment carries no Sum requisite.
	ErrNoSum = errors.New("payment has no Sum requisite")
)

// WrongFormatIDError is returned when the first two header bytes are
// not the "ST" marker.
type WrongFormatIDError struct {
	Passed [2]byte
}

func (e *WrongFormatIDError) Error() string {
	return fmt.Sprintf(
		"wrong format id %q, expected %q",
		string(e.Passed[:]), string(formatIDBytes[:]),
	)
}

// UnsupportedVersionError is returned when the header version does not
// match the version the parser is configured for.
type UnsupportedVersionError struct {
	Passed  [4]byte
	Current [4]byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf(
		"unsupported version %q, parser expects %q",
		string(e.Passed[:]), string(e.Current[:]),
	)
}

// UnknownEncodingCodeError is returned when header byte 6 is not one of
// the three known encoding codes.
type UnknownEncodingCodeError struct {
	Code byte
}

func (e *UnknownEncodingCodeError) Error() string {
	return fmt.Sprintf("unknown encoding code %q", e.Code)
}

// UnknownTechCodeError is returned when a TechCode value is not one of
// the fifteen two-digit codes.
type UnknownTechCodeError struct {
	Value string
}

func (e *UnknownTechCodeError) Error() string {
	return fmt.Sprintf("unknown tech code %q", e.Value)
}

// WrongPairError is returned for a body chunk with no '=' (Key holds
// the raw chunk) or for a known key whose value violates its size
// constraint.
type WrongPairError struct {
	Key   string
	Value string
}

func (e *WrongPairError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("malformed requisite pair %q", e.Key)
	}
	return fmt.Sprintf("wrong value in requisite pair %s=%q", e.Key, e.Value)
}

// UnknownPairError is returned when a body key is outside the built-in
// dictionary and no extension accepts it.
type UnknownPairError struct {
	Key   string
	Value string
}

func (e *UnknownPairError) Error() string {
	return fmt.Sprintf("unknown requisite %s=%q", e.Key, e.Value)
}

// WrongRequisiteOrderError is returned when the first five parsed
// requisites are not exactly Name, PersonalAcc, BankName, BIC,
// CorrespAcc. Passed holds the key actually found at the first
// mismatching position, or "empty" if the sequence is shorter.
type WrongRequisiteOrderError struct {
	Passed   string
	Expected string
}

func (e *WrongRequisiteOrderError) Error() string {
	return fmt.Sprintf(
		"wrong required requisite order: expected %q, got %q",
		e.Expected, e.Passed,
	)
}

func (e *WrongRequisiteOrderError) Unwrap() error {
	if e.Passed == emptyPlaceholder {
		return ErrRequiredRequisiteNotPresented
	}
	return nil
}
