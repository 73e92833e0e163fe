package st00012

import (
	"fmt"
	"strings"
)

// Policy selects how tolerant decoding is of malformed body content.
// Every policy still requires a structurally valid header: at least 8
// bytes, the "ST" marker, the expected version, and a known encoding
// code.
type Policy uint8

const (
	// Strict fails the whole decode on any malformed or unknown pair
	// and enforces the required requisite order.
	Strict Policy = iota

	// RequisiteTolerant silently drops malformed and unknown pairs but
	// still enforces the required requisite order.
	RequisiteTolerant

	// Loose drops malformed and unknown pairs, decodes the body
	// lossily, and skips the required order check.
	Loose
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "Strict"
	case RequisiteTolerant:
		return "RequisiteTolerant"
	case Loose:
		return "Loose"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Parser decodes wire payloads into Payment values. Create one with
// NewParser; the default is the strict policy with version "0001" and
// no extensions.
type Parser struct {
	policy         Policy
	version        [4]byte
	parseExtension ExtensionParserFunc
}

// Option configures a Parser.
type Option func(*Parser)

// WithPolicy selects the decoding policy.
func WithPolicy(policy Policy) Option {
	return func(p *Parser) {
		p.policy = policy
	}
}

// WithVersion overrides the header version the parser accepts. The
// version must be exactly four bytes; anything else is a caller logic
// error.
func WithVersion(version string) Option {
	if len(version) != versionByteCount {
		panic(fmt.Sprintf(
			"st00012: version must be %d bytes, got %q", versionByteCount, version,
		))
	}
	return func(p *Parser) {
		copy(p.version[:], version)
	}
}

// WithExtensions installs a parser for keys outside the built-in
// dictionary.
func WithExtensions(parse ExtensionParserFunc) Option {
	return func(p *Parser) {
		p.parseExtension = parse
	}
}

// NewParser creates a Parser, strict by default.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		version:        defaultVersionBytes,
		parseExtension: noExtensions,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse decodes a byte payload using a default strict parser.
func Parse(data []byte) (*Payment, error) {
	return defaultParser.ParseBytes(data)
}

// ParseString decodes a text payload using a default strict parser.
func ParseString(s string) (*Payment, error) {
	return defaultParser.ParseString(s)
}

// ParseBytes decodes a payload with full encoding handling: the body is
// converted from the encoding declared in the header before the pairs
// are read.
func (p *Parser) ParseBytes(data []byte) (*Payment, error) {
	header, err := parseHeader(data, p.version)
	if err != nil {
		return nil, err
	}
	body, err := header.encoding.decodeBody(data[headerByteCount:], p.policy == Loose)
	if err != nil {
		return nil, err
	}
	return p.assemble(header, body)
}

// ParseString decodes a text payload. Text input implies the body was
// already decoded losslessly upstream, so except under Loose the
// declared encoding must be UTF-8.
func (p *Parser) ParseString(s string) (*Payment, error) {
	header, err := parseHeader(headerBytesFromString(s), p.version)
	if err != nil {
		return nil, err
	}
	if p.policy != Loose && header.encoding != UTF8Encoding {
		return nil, fmt.Errorf(
			"%w: text input declares a %s body, expected %s",
			ErrCorruptedHeader, header.encoding, UTF8Encoding,
		)
	}
	return p.assemble(header, s[headerByteCount:])
}

func (p *Parser) assemble(header Header, body string) (*Payment, error) {
	requisites, err := p.readRequisites(body, header.separator)
	if err != nil {
		return nil, err
	}
	if p.policy != Loose {
		if err := validateRequiredOrder(requisites); err != nil {
			return nil, err
		}
	}
	return &Payment{header: header, requisites: requisites}, nil
}

// readRequisites splits the body on the header separator and parses
// each chunk as a Key=Value pair. Under Strict any failure aborts the
// decode; the tolerant policies drop the offending chunk instead.
func (p *Parser) readRequisites(body string, separator byte) ([]Requisite, error) {
	chunks := strings.Split(body, string(separator))
	requisites := make([]Requisite, 0, len(chunks))
	for _, chunk := range chunks {
		key, value, found := strings.Cut(chunk, "=")
		if !found {
			if p.policy == Strict {
				return nil, &WrongPairError{Key: chunk}
			}
			continue
		}
		req, err := parseRequisite(key, value, p.parseExtension)
		if err != nil {
			if p.policy == Strict {
				return nil, err
			}
			continue
		}
		requisites = append(requisites, req)
	}
	return requisites, nil
}

// requiredOrder is the mandated head of every payment body.
var requiredOrder = [...]RequisiteKind{
	NameRequisite,
	PersonalAccRequisite,
	BankNameRequisite,
	BICRequisite,
	CorrespAccRequisite,
}

// validateRequiredOrder checks positions 0-4 of the parsed sequence
// against the required requisites. The first mismatch reports the key
// found there, or "empty" when the sequence is shorter.
func validateRequiredOrder(requisites []Requisite) error {
	for i, kind := range requiredOrder {
		expected := requisiteSpecs[kind].key
		if i >= len(requisites) {
			return &WrongRequisiteOrderError{
				Passed:   emptyPlaceholder,
				Expected: expected,
			}
		}
		if requisites[i].kind != kind {
			return &WrongRequisiteOrderError{
				Passed:   requisites[i].Key(),
				Expected: expected,
			}
		}
	}
	return nil
}
