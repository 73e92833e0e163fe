package st00012

import (
	"fmt"
)

// RequisiteKind identifies one member of the requisite dictionary.
type RequisiteKind uint8

const (
	UnknownRequisite RequisiteKind = iota

	// Required requisites, fixed order at the head of the body.

	NameRequisite        // payee name
	PersonalAccRequisite // payee account number
	BankNameRequisite    // payee bank name
	BICRequisite         // bank identification code
	CorrespAccRequisite  // correspondent account

	// Additional requisites with a wire-mandated size bound.

	SumRequisite          // payment amount, in kopecks
	PurposeRequisite      // payment purpose
	PayeeINNRequisite     // payee taxpayer number
	PayerINNRequisite     // payer taxpayer number
	DrawerStatusRequisite // drawer status of the payment document
	KPPRequisite          // payee registration reason code
	CBCRequisite          // budget classification code
	OKTMORequisite        // municipal territory classifier code
	PaytReasonRequisite   // tax payment reason
	TaxPeriodRequisite    // tax period
	DocNoRequisite        // document number
	DocDateRequisite      // document date
	TaxPayKindRequisite   // tax payment kind

	// Additional free-text requisites.

	LastNameRequisite        // payer last name
	FirstNameRequisite       // payer first name
	MiddleNameRequisite      // payer middle name
	PayerAddressRequisite    // payer address
	PersonalAccountRequisite // budget recipient personal account
	DocIdxRequisite          // payment document index
	PensAccRequisite         // pension insurance account (SNILS)
	ContractRequisite        // contract number
	PersAccRequisite         // payer account in the provider's books
	FlatRequisite            // flat number
	PhoneRequisite           // phone number
	PayerIDTypeRequisite     // payer identity document type
	PayerIDNumRequisite      // payer identity document number
	ChildFioRequisite        // child or student full name
	BirthDateRequisite       // birth date
	PaymTermRequisite        // payment term or billing date
	PaymPeriodRequisite      // payment period
	CategoryRequisite        // payment category
	ServiceNameRequisite     // service code or meter name
	CounterIDRequisite       // meter number
	CounterValRequisite      // meter reading
	QuittIDRequisite         // notice, charge, or invoice number
	QuittDateRequisite       // notice, charge, or invoice date
	InstNumRequisite         // institution number
	ClassNumRequisite        // kindergarten group or school class
	SpecFioRequisite         // teacher or specialist full name
	AddAmountRequisite       // insurance or penalty amount, in kopecks
	RuleIDRequisite          // resolution number (traffic police)
	ExecIDRequisite          // enforcement proceedings number
	RegTypeRequisite         // payment kind code (registry payments)
	UINRequisite             // unique charge identifier

	// TechCodeRequisite carries a TechCode classification.
	TechCodeRequisite

	// ExtensionRequisite carries a host-supplied Extension.
	ExtensionRequisite
)

// constraintKind selects how a dictionary entry validates its value.
type constraintKind uint8

const (
	freeText constraintKind = iota
	maxSize
	exactSize
	techCode
)

type requisiteSpec struct {
	key        string
	constraint constraintKind
	size       int
}

// requisiteSpecs is the closed dictionary: every built-in kind maps to
// exactly one wire key and a value constraint. ExtensionRequisite is
// absent on purpose; its key and value come from the host payload.
var requisiteSpecs = map[RequisiteKind]requisiteSpec{
	NameRequisite:        {key: "Name", constraint: maxSize, size: nameMaxSize},
	PersonalAccRequisite: {key: "PersonalAcc", constraint: exactSize, size: personalAccSize},
	BankNameRequisite:    {key: "BankName", constraint: maxSize, size: bankNameMaxSize},
	BICRequisite:         {key: "BIC", constraint: exactSize, size: bicSize},
	CorrespAccRequisite:  {key: "CorrespAcc", constraint: maxSize, size: correspAccMaxSize},

	SumRequisite:          {key: "Sum", constraint: maxSize, size: sumMaxSize},
	PurposeRequisite:      {key: "Purpose", constraint: maxSize, size: purposeMaxSize},
	PayeeINNRequisite:     {key: "PayeeINN", constraint: maxSize, size: payeeINNMaxSize},
	PayerINNRequisite:     {key: "PayerINN", constraint: maxSize, size: payerINNMaxSize},
	DrawerStatusRequisite: {key: "DrawerStatus", constraint: maxSize, size: drawerStatusMaxSize},
	KPPRequisite:          {key: "KPP", constraint: maxSize, size: kppMaxSize},
	CBCRequisite:          {key: "CBC", constraint: maxSize, size: cbcMaxSize},
	OKTMORequisite:        {key: "OKTMO", constraint: maxSize, size: oktmoMaxSize},
	PaytReasonRequisite:   {key: "PaytReason", constraint: maxSize, size: paytReasonMaxSize},
	TaxPeriodRequisite:    {key: "TaxPeriod", constraint: maxSize, size: taxPeriodMaxSize},
	DocNoRequisite:        {key: "DocNo", constraint: maxSize, size: docNoMaxSize},
	DocDateRequisite:      {key: "DocDate", constraint: maxSize, size: docDateMaxSize},
	TaxPayKindRequisite:   {key: "TaxPayKind", constraint: maxSize, size: taxPayKindMaxSize},

	LastNameRequisite:        {key: "LastName"},
	FirstNameRequisite:       {key: "FirstName"},
	MiddleNameRequisite:      {key: "MiddleName"},
	PayerAddressRequisite:    {key: "PayerAddress"},
	PersonalAccountRequisite: {key: "PersonalAccount"},
	DocIdxRequisite:          {key: "DocIdx"},
	PensAccRequisite:         {key: "PensAcc"},
	ContractRequisite:        {key: "Contract"},
	PersAccRequisite:         {key: "PersAcc"},
	FlatRequisite:            {key: "Flat"},
	PhoneRequisite:           {key: "Phone"},
	PayerIDTypeRequisite:     {key: "PayerIdType"},
	PayerIDNumRequisite:      {key: "PayerIdNum"},
	ChildFioRequisite:        {key: "ChildFio"},
	BirthDateRequisite:       {key: "BirthDate"},
	PaymTermRequisite:        {key: "PaymTerm"},
	PaymPeriodRequisite:      {key: "PaymPeriod"},
	CategoryRequisite:        {key: "Category"},
	ServiceNameRequisite:     {key: "ServiceName"},
	CounterIDRequisite:       {key: "CounterId"},
	CounterValRequisite:      {key: "CounterVal"},
	QuittIDRequisite:         {key: "QuittId"},
	QuittDateRequisite:       {key: "QuittDate"},
	InstNumRequisite:         {key: "InstNum"},
	ClassNumRequisite:        {key: "ClassNum"},
	SpecFioRequisite:         {key: "SpecFio"},
	AddAmountRequisite:       {key: "AddAmount"},
	RuleIDRequisite:          {key: "RuleId"},
	ExecIDRequisite:          {key: "ExecId"},
	RegTypeRequisite:         {key: "RegType"},
	UINRequisite:             {key: "UIN"},

	TechCodeRequisite: {key: "TechCode", constraint: techCode},
}

var requisiteKindsByKey = map[string]RequisiteKind{}

func init() {
	for kind, spec := range requisiteSpecs {
		if _, dup := requisiteKindsByKey[spec.key]; dup {
			panic(fmt.Sprintf("duplicate requisite key %q", spec.key))
		}
		requisiteKindsByKey[spec.key] = kind
	}
}

// Requisite is one key/value element of a payment order. Values are
// validated against the dictionary's size constraints at construction
// and never change afterwards.
type Requisite struct {
	kind      RequisiteKind
	value     string
	tech      TechCode
	extension Extension
}

// NewRequisite builds a dictionary requisite of the given kind,
// validating value against the kind's constraint. TechCode values must
// be one of the two-digit wire codes; extension requisites are built
// with NewExtensionRequisite instead.
func NewRequisite(kind RequisiteKind, value string) (Requisite, error) {
	spec, ok := requisiteSpecs[kind]
	if !ok {
		return Requisite{}, fmt.Errorf("no dictionary entry for requisite kind %d", kind)
	}
	switch spec.constraint {
	case exactSize:
		s, err := NewExactSizeString(value, spec.size)
		if err != nil {
			return Requisite{}, &WrongPairError{Key: spec.key, Value: value}
		}
		return Requisite{kind: kind, value: s.String()}, nil
	case maxSize:
		s, err := NewMaxSizeString(value, spec.size)
		if err != nil {
			return Requisite{}, &WrongPairError{Key: spec.key, Value: value}
		}
		return Requisite{kind: kind, value: s.String()}, nil
	case techCode:
		t, err := ParseTechCode(value)
		if err != nil {
			return Requisite{}, err
		}
		return Requisite{kind: kind, tech: t}, nil
	}
	return Requisite{kind: kind, value: value}, nil
}

// NewTechCodeRequisite builds the TechCode requisite from an enum
// member directly.
func NewTechCodeRequisite(t TechCode) (Requisite, error) {
	if t.Code() == "" {
		return Requisite{}, &UnknownTechCodeError{Value: fmt.Sprintf("%d", t)}
	}
	return Requisite{kind: TechCodeRequisite, tech: t}, nil
}

// NewExtensionRequisite wraps a host-supplied Extension.
func NewExtensionRequisite(ext Extension) Requisite {
	return Requisite{kind: ExtensionRequisite, extension: ext}
}

// Kind returns the dictionary member this requisite belongs to.
func (r Requisite) Kind() RequisiteKind {
	return r.kind
}

// Key returns the wire key, delegating to the host payload for
// extension requisites.
func (r Requisite) Key() string {
	if r.kind == ExtensionRequisite {
		return r.extension.Key()
	}
	return requisiteSpecs[r.kind].key
}

// Value returns the wire value, delegating to the host payload for
// extension requisites and to the two-digit code for TechCode.
func (r Requisite) Value() string {
	switch r.kind {
	case ExtensionRequisite:
		return r.extension.Value()
	case TechCodeRequisite:
		return r.tech.Code()
	}
	return r.value
}

// TechCode returns the wrapped TechCode when r carries one.
func (r Requisite) TechCode() (TechCode, bool) {
	if r.kind != TechCodeRequisite {
		return 0, false
	}
	return r.tech, true
}

// Extension returns the wrapped host payload when r carries one.
func (r Requisite) Extension() (Extension, bool) {
	if r.kind != ExtensionRequisite {
		return nil, false
	}
	return r.extension, true
}

// parseRequisite dispatches a wire pair into the dictionary, delegating
// unknown keys to the extension parser.
func parseRequisite(key, value string, parseExtension ExtensionParserFunc) (Requisite, error) {
	kind, ok := requisiteKindsByKey[key]
	if !ok {
		ext, err := parseExtension(key, value)
		if err != nil {
			return Requisite{}, err
		}
		return NewExtensionRequisite(ext), nil
	}
	return NewRequisite(kind, value)
}
