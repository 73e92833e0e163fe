package st00012

// TechCode classifies the payment purpose so the receiving organization
// can route the payment to the matching processing system. The set is
// closed: each member maps bidirectionally to a fixed two-digit wire
// value, and no other value is accepted.
type TechCode uint8

const (
	TechCodeMobile TechCode = iota + 1
	TechCodeUtilities
	TechCodeTaxes
	TechCodeSecurity
	TechCodeFMS
	TechCodePFR
	TechCodeLoanRepayment
	TechCodeEducation
	TechCodeInternetTV
	TechCodeEMoney
	TechCodeVacation
	TechCodeInsurance
	TechCodeSportHealth
	TechCodeCharity
	TechCodeOther
)

var techCodeStrings = [...]string{
	TechCodeMobile:        "01",
	TechCodeUtilities:     "02",
	TechCodeTaxes:         "03",
	TechCodeSecurity:      "04",
	TechCodeFMS:           "05",
	TechCodePFR:           "06",
	TechCodeLoanRepayment: "07",
	TechCodeEducation:     "08",
	TechCodeInternetTV:    "09",
	TechCodeEMoney:        "10",
	TechCodeVacation:      "11",
	TechCodeInsurance:     "12",
	TechCodeSportHealth:   "13",
	TechCodeCharity:       "14",
	TechCodeOther:         "15",
}

var techCodeNames = [...]string{
	TechCodeMobile:        "Mobile",
	TechCodeUtilities:     "Utilities",
	TechCodeTaxes:         "Taxes",
	TechCodeSecurity:      "Security",
	TechCodeFMS:           "FMS",
	TechCodePFR:           "PFR",
	TechCodeLoanRepayment: "LoanRepayment",
	TechCodeEducation:     "Education",
	TechCodeInternetTV:    "InternetTV",
	TechCodeEMoney:        "EMoney",
	TechCodeVacation:      "Vacation",
	TechCodeInsurance:     "Insurance",
	TechCodeSportHealth:   "SportHealth",
	TechCodeCharity:       "Charity",
	TechCodeOther:         "Other",
}

var techCodeValues = map[string]TechCode{}

func init() {
	for t := TechCodeMobile; t <= TechCodeOther; t++ {
		techCodeValues[techCodeStrings[t]] = t
	}
}

func (t TechCode) String() string {
	if t < TechCodeMobile || t > TechCodeOther {
		return ""
	}
	return techCodeNames[t]
}

// Code returns the two-digit wire value of t, or "" for an invalid
// member.
func (t TechCode) Code() string {
	if t < TechCodeMobile || t > TechCodeOther {
		return ""
	}
	return techCodeStrings[t]
}

// ParseTechCode maps a two-digit wire value back to its TechCode,
// failing with UnknownTechCodeError for anything outside "01".."15".
func ParseTechCode(val string) (TechCode, error) {
	t, ok := techCodeValues[val]
	if !ok {
		return 0, &UnknownTechCodeError{Value: val}
	}
	return t, nil
}
