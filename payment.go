package st00012

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Payment is an immutable payment order: the wire header plus the
// ordered requisite sequence. Positions 0-4 always hold Name,
// PersonalAcc, BankName, BIC, and CorrespAcc; the builder establishes
// that order by construction and the non-Loose parsers enforce it on
// decode.
type Payment struct {
	header     Header
	requisites []Requisite
}

// RequiredRequisites carries the five payee requisites every payment
// opens with, validated through the constrained string types.
type RequiredRequisites struct {
	Name        MaxSizeString   // payee name, at most 160 characters
	PersonalAcc ExactSizeString // payee account number, exactly 20 characters
	BankName    MaxSizeString   // payee bank name, at most 45 characters
	BIC         ExactSizeString // bank identification code, exactly 9 characters
	CorrespAcc  MaxSizeString   // correspondent account, at most 20 characters
}

// NewRequiredRequisites validates the five required values and returns
// them ready for the builder. Malformed input here is an application
// error, not a wire decode error.
func NewRequiredRequisites(name, personalAcc, bankName, bic, correspAcc string) (RequiredRequisites, error) {
	var req RequiredRequisites
	var err error
	if req.Name, err = NewMaxSizeString(name, nameMaxSize); err != nil {
		return RequiredRequisites{}, fmt.Errorf("Name: %w", err)
	}
	if req.PersonalAcc, err = NewExactSizeString(personalAcc, personalAccSize); err != nil {
		return RequiredRequisites{}, fmt.Errorf("PersonalAcc: %w", err)
	}
	if req.BankName, err = NewMaxSizeString(bankName, bankNameMaxSize); err != nil {
		return RequiredRequisites{}, fmt.Errorf("BankName: %w", err)
	}
	if req.BIC, err = NewExactSizeString(bic, bicSize); err != nil {
		return RequiredRequisites{}, fmt.Errorf("BIC: %w", err)
	}
	if req.CorrespAcc, err = NewMaxSizeString(correspAcc, correspAccMaxSize); err != nil {
		return RequiredRequisites{}, fmt.Errorf("CorrespAcc: %w", err)
	}
	return req, nil
}

// Builder assembles a Payment. The five required requisites are seeded
// first; additional requisites follow in the order they are added.
// Builder misuse (restating a required kind, a non-ASCII separator, a
// bad version length) is a caller logic error and panics: this path
// never touches untrusted wire input.
type Builder struct {
	payment Payment
}

// NewBuilder starts a Payment from the five required requisites, with
// version "0001", a UTF-8 body, and '|' as separator.
func NewBuilder(required RequiredRequisites) *Builder {
	seed := func(kind RequisiteKind, value string) Requisite {
		req, err := NewRequisite(kind, value)
		if err != nil {
			panic(fmt.Sprintf(
				"st00012: required requisite %s: %v", requisiteSpecs[kind].key, err,
			))
		}
		return req
	}
	return &Builder{payment: Payment{
		header: Header{
			version:   defaultVersionBytes,
			encoding:  UTF8Encoding,
			separator: DefaultSeparator,
		},
		requisites: []Requisite{
			seed(NameRequisite, required.Name.String()),
			seed(PersonalAccRequisite, required.PersonalAcc.String()),
			seed(BankNameRequisite, required.BankName.String()),
			seed(BICRequisite, required.BIC.String()),
			seed(CorrespAccRequisite, required.CorrespAcc.String()),
		},
	}}
}

// WithVersion overrides the header version. It must be exactly four
// bytes.
func (b *Builder) WithVersion(version string) *Builder {
	if len(version) != versionByteCount {
		panic(fmt.Sprintf(
			"st00012: version must be %d bytes, got %q", versionByteCount, version,
		))
	}
	copy(b.payment.header.version[:], version)
	return b
}

// WithEncoding sets the body encoding written on encode.
func (b *Builder) WithEncoding(enc Encoding) *Builder {
	if _, err := encodingFromByte(byte(enc)); err != nil {
		panic(fmt.Sprintf("st00012: %v", err))
	}
	b.payment.header.encoding = enc
	return b
}

// WithSeparator overrides the pair separator. It must be ASCII.
func (b *Builder) WithSeparator(sep byte) *Builder {
	if sep > unicode.MaxASCII {
		panic(fmt.Sprintf("st00012: separator %#x is not ASCII", sep))
	}
	b.payment.header.separator = sep
	return b
}

// WithAdditionalRequisites appends requisites after the required five.
// Restating a required kind panics; duplicate additional keys are
// allowed and kept in order.
func (b *Builder) WithAdditionalRequisites(requisites ...Requisite) *Builder {
	for _, req := range requisites {
		switch req.kind {
		case NameRequisite, PersonalAccRequisite, BankNameRequisite,
			BICRequisite, CorrespAccRequisite:
			panic(fmt.Sprintf(
				"st00012: additional requisite restates required key %q", req.Key(),
			))
		}
		b.payment.requisites = append(b.payment.requisites, req)
	}
	return b
}

// Build returns the assembled Payment. The builder can keep being used
// afterwards without mutating the returned value.
func (b *Builder) Build() *Payment {
	p := b.payment
	p.requisites = append([]Requisite(nil), b.payment.requisites...)
	return &p
}

// Header returns the payment's preamble.
func (p *Payment) Header() Header {
	return p.header
}

// Requisites returns a copy of the requisites in wire order.
func (p *Payment) Requisites() []Requisite {
	return append([]Requisite(nil), p.requisites...)
}

// Get returns the value of the first requisite whose wire key matches.
// Duplicate keys are tolerated; later duplicates are reachable through
// Requisites.
func (p *Payment) Get(key string) (string, bool) {
	for _, req := range p.requisites {
		if req.Key() == key {
			return req.Value(), true
		}
	}
	return "", false
}

// Bytes encodes the payment into its wire payload. It fails only when
// a requisite contains a character the header encoding cannot
// represent.
func (p *Payment) Bytes() ([]byte, error) {
	buf := make([]byte, 0, 308)
	buf = p.header.appendTo(buf)
	for i, req := range p.requisites {
		pair, err := p.header.encoding.encodeBody(req.Key() + "=" + req.Value())
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf = append(buf, p.header.separator)
		}
		buf = append(buf, pair...)
	}
	return buf, nil
}

// Text renders the wire payload as text. Bytes the single-byte
// encodings produce outside UTF-8 are replaced rather than failing, so
// the result is a best-effort lossy rendering of Bytes.
func (p *Payment) Text() (string, error) {
	raw, err := p.Bytes()
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError)), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p *Payment) MarshalText() ([]byte, error) {
	text, err := p.Text()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using a default
// strict parser.
func (p *Payment) UnmarshalText(data []byte) error {
	parsed, err := ParseString(string(data))
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

// NewSumRequisite builds the Sum requisite from a rouble amount. The
// wire value is the amount in kopecks, so amounts with sub-kopeck
// precision are rejected.
func NewSumRequisite(amount decimal.Decimal) (Requisite, error) {
	kopecks := amount.Shift(2)
	if !kopecks.IsInteger() {
		return Requisite{}, fmt.Errorf(
			"amount %s has sub-kopeck precision", amount,
		)
	}
	return NewRequisite(SumRequisite, kopecks.String())
}

// Amount returns the payment amount in roubles, derived from the first
// Sum requisite. ErrNoSum is returned when the payment carries none.
func (p *Payment) Amount() (decimal.Decimal, error) {
	val, ok := p.Get("Sum")
	if !ok {
		return decimal.Decimal{}, ErrNoSum
	}
	kopecks, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("Sum requisite %q: %w", val, err)
	}
	return kopecks.Shift(-2), nil
}
