package st00012

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringRequiredOnly(t *testing.T) {
	payment, err := ParseString(fixtureRequired)
	require.NoError(t, err)

	expected := NewBuilder(fixtureRequisites(t)).Build()
	assert.Equal(t, expected, payment)
}

func TestParseBytesRequiredOnly(t *testing.T) {
	payment, err := Parse([]byte(fixtureRequired))
	require.NoError(t, err)

	expected := NewBuilder(fixtureRequisites(t)).Build()
	assert.Equal(t, expected, payment)
}

func TestParseStringFullExample(t *testing.T) {
	payment, err := ParseString(fixtureFull)
	require.NoError(t, err)

	expected := NewBuilder(fixtureRequisites(t)).
		WithAdditionalRequisites(fixtureAdditional(t)...).
		Build()
	assert.Equal(t, expected, payment)

	purpose, ok := payment.Get("Purpose")
	require.True(t, ok)
	assert.Equal(t, "Оплата членского взноса", purpose)
}

// ASCII fixture round trip: decode then re-encode must reproduce the
// input byte for byte.
func TestParseStringASCIIRoundTrip(t *testing.T) {
	const raw = "ST00012|Name=ACME|PersonalAcc=12345678901234567890|" +
		"BankName=Bank|BIC=044525225|CorrespAcc=30101810400000000225"

	payment, err := ParseString(raw)
	require.NoError(t, err)

	requisites := payment.Requisites()
	require.Len(t, requisites, 5)
	keys := make([]string, 0, len(requisites))
	for _, req := range requisites {
		keys = append(keys, req.Key())
	}
	assert.Equal(t, []string{"Name", "PersonalAcc", "BankName", "BIC", "CorrespAcc"}, keys)

	text, err := payment.Text()
	require.NoError(t, err)
	assert.Equal(t, raw, text)
}

func TestParseStringWrongRequiredOrder(t *testing.T) {
	const raw = "ST00012|PersonalAcc=40702810138250123017|Name=ООО «Три кита»|" +
		"BankName=ОАО \"БАНК\"|BIC=044525225|CorrespAcc=30101810400000000225"

	for _, policy := range []Policy{Strict, RequisiteTolerant} {
		t.Run(policy.String(), func(t *testing.T) {
			_, err := NewParser(WithPolicy(policy)).ParseString(raw)
			var orderErr *WrongRequisiteOrderError
			require.ErrorAs(t, err, &orderErr)
			assert.Equal(t, "PersonalAcc", orderErr.Passed)
			assert.Equal(t, "Name", orderErr.Expected)
		})
	}

	// Loose accepts any order.
	payment, err := NewParser(WithPolicy(Loose)).ParseString(raw)
	require.NoError(t, err)
	name, ok := payment.Get("Name")
	require.True(t, ok)
	assert.Equal(t, "ООО «Три кита»", name)
}

func TestParseStringMissingRequiredRequisites(t *testing.T) {
	_, err := ParseString("ST00012|Name=ACME")
	var orderErr *WrongRequisiteOrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, "empty", orderErr.Passed)
	assert.Equal(t, "PersonalAcc", orderErr.Expected)
	assert.ErrorIs(t, err, ErrRequiredRequisiteNotPresented)
}

func TestParseStringUnsupportedVersion(t *testing.T) {
	raw := "ST0002" + fixtureRequired[6:]

	_, err := ParseString(raw)
	var versionErr *UnsupportedVersionError
	require.ErrorAs(t, err, &versionErr)
	assert.Equal(t, "0002", string(versionErr.Passed[:]))
	assert.Equal(t, "0001", string(versionErr.Current[:]))

	// A parser configured for that version accepts the same payload.
	payment, err := NewParser(WithVersion("0002")).ParseString(raw)
	require.NoError(t, err)
	assert.Equal(t, "0002", payment.Header().Version())
}

func TestParseStringWrongFormatID(t *testing.T) {
	_, err := ParseString("XY" + fixtureRequired[2:])
	var formatErr *WrongFormatIDError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "XY", string(formatErr.Passed[:]))
}

func TestParseStringShortHeader(t *testing.T) {
	for _, raw := range []string{"", "ST", "ST00012"} {
		_, err := ParseString(raw)
		assert.ErrorIs(t, err, ErrCorruptedHeader, "input %q", raw)
	}
}

// A multi-byte character in the header must fail outright: U+0132
// narrows to the byte '2', so narrowing it would forge a valid-looking
// header while the body offset lands mid-character.
func TestParseStringMultibyteHeader(t *testing.T) {
	_, err := ParseString("ST0001Ĳ|Name=ACME")
	assert.ErrorIs(t, err, ErrCorruptedHeader)

	_, err = ParseString("ST00012«Name=ACME")
	assert.ErrorIs(t, err, ErrCorruptedHeader)
}

func TestParseStringUnknownEncodingCode(t *testing.T) {
	_, err := ParseString("ST00014|Name=ACME")
	var encErr *UnknownEncodingCodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, byte('4'), encErr.Code)
}

// Text input with a non-UTF-8 declared body is rejected by the default
// parsers; Loose skips that check.
func TestParseStringNonUTF8DeclaredBody(t *testing.T) {
	raw := "ST00011" + fixtureRequired[7:]

	_, err := ParseString(raw)
	assert.ErrorIs(t, err, ErrCorruptedHeader)

	_, err = NewParser(WithPolicy(RequisiteTolerant)).ParseString(raw)
	assert.ErrorIs(t, err, ErrCorruptedHeader)

	payment, err := NewParser(WithPolicy(Loose)).ParseString(raw)
	require.NoError(t, err)
	assert.Equal(t, Win1251Encoding, payment.Header().Encoding())
}

func TestParseStringStrictFailsOnUnknownPair(t *testing.T) {
	_, err := ParseString(fixtureRequired + "|Тест=42")
	var unknownErr *UnknownPairError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Тест", unknownErr.Key)
}

func TestParseStringStrictFailsOnMalformedPair(t *testing.T) {
	_, err := ParseString(fixtureRequired + "|garbage")
	var pairErr *WrongPairError
	require.ErrorAs(t, err, &pairErr)
	assert.Equal(t, "garbage", pairErr.Key)
}

func TestParseStringStrictFailsOnConstraintViolation(t *testing.T) {
	_, err := ParseString(fixtureRequired + "|KPP=0123456789")
	var pairErr *WrongPairError
	require.ErrorAs(t, err, &pairErr)
	assert.Equal(t, "KPP", pairErr.Key)
}

func TestParseStringRequisiteTolerantDropsBadPairs(t *testing.T) {
	raw := fixtureRequired + "|Тест=42|fasfdsfsdfs|  |"

	payment, err := NewParser(WithPolicy(RequisiteTolerant)).ParseString(raw)
	require.NoError(t, err)

	expected := NewBuilder(fixtureRequisites(t)).Build()
	assert.Equal(t, expected, payment)
}

func TestParseStringLoose(t *testing.T) {
	payment, err := NewParser(WithPolicy(Loose)).ParseString("ST00012|Name=X||garbage|  |")
	require.NoError(t, err)

	name, ok := payment.Get("Name")
	require.True(t, ok)
	assert.Equal(t, "X", name)
	assert.Len(t, payment.Requisites(), 1)
}

func TestParseBytesWin1251(t *testing.T) {
	payment := NewBuilder(fixtureRequisites(t)).
		WithEncoding(Win1251Encoding).
		WithAdditionalRequisites(fixtureAdditional(t)...).
		Build()

	raw, err := payment.Bytes()
	require.NoError(t, err)
	// Single-byte body: cheaper than UTF-8 for Cyrillic payloads.
	assert.Less(t, len(raw), len(fixtureFull))

	parsed, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, payment, parsed)
}

func TestParseBytesKOI8R(t *testing.T) {
	req, err := NewRequiredRequisites(
		"ООО Ромашка",
		"40702810138250123017",
		"АО БАНК",
		"044525225",
		"30101810400000000225",
	)
	require.NoError(t, err)

	payment := NewBuilder(req).WithEncoding(KOI8REncoding).Build()
	raw, err := payment.Bytes()
	require.NoError(t, err)

	parsed, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, payment, parsed)

	name, ok := parsed.Get("Name")
	require.True(t, ok)
	assert.Equal(t, "ООО Ромашка", name)
}

func TestParseBytesStrictDecodingError(t *testing.T) {
	// 0x98 is the one hole in the Windows-1251 table.
	raw := append([]byte("ST00011|Name=\x98"), []byte("|PersonalAcc=x")...)

	_, err := Parse(raw)
	assert.ErrorIs(t, err, ErrDecoding)

	_, err = NewParser(WithPolicy(RequisiteTolerant)).ParseBytes(raw)
	assert.ErrorIs(t, err, ErrDecoding)
}

func TestParseBytesLooseReplacesUnmappableBytes(t *testing.T) {
	raw := []byte("ST00011|Name=\x98")

	payment, err := NewParser(WithPolicy(Loose)).ParseBytes(raw)
	require.NoError(t, err)

	name, ok := payment.Get("Name")
	require.True(t, ok)
	assert.Equal(t, "�", name)
}

func TestParseBytesInvalidUTF8Body(t *testing.T) {
	raw := []byte("ST00012|Name=\xff\xfe")

	_, err := Parse(raw)
	assert.ErrorIs(t, err, ErrDecoding)

	// The lossy conversion coalesces the invalid run into one
	// replacement character.
	payment, err := NewParser(WithPolicy(Loose)).ParseBytes(raw)
	require.NoError(t, err)
	name, ok := payment.Get("Name")
	require.True(t, ok)
	assert.Equal(t, "�", name)
}

func TestParseStringCustomSeparator(t *testing.T) {
	payment := NewBuilder(fixtureRequisites(t)).WithSeparator(',').Build()

	text, err := payment.Text()
	require.NoError(t, err)

	parsed, err := ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, byte(','), parsed.Header().Separator())
	assert.Equal(t, payment, parsed)
}

func TestParserWithExtensions(t *testing.T) {
	raw := fixtureRequired + "|Foo=Foo|Bar=Bar"

	parser := NewParser(WithExtensions(parseTestExtension))
	payment, err := parser.ParseString(raw)
	require.NoError(t, err)

	foo, ok := payment.Get("Foo")
	require.True(t, ok)
	assert.Equal(t, "Foo", foo)

	bar, ok := payment.Get("Bar")
	require.True(t, ok)
	assert.Equal(t, "Bar", bar)

	text, err := payment.Text()
	require.NoError(t, err)
	assert.Equal(t, raw, text)

	// Keys outside the extension's set still fail under Strict.
	_, err = parser.ParseString(fixtureRequired + "|Baz=1")
	var unknownErr *UnknownPairError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Baz", unknownErr.Key)
}

func TestWithVersionPanicsOnBadLength(t *testing.T) {
	assert.Panics(t, func() { WithVersion("001") })
	assert.Panics(t, func() { WithVersion("00001") })
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "Strict", Strict.String())
	assert.Equal(t, "RequisiteTolerant", RequisiteTolerant.String())
	assert.Equal(t, "Loose", Loose.String())
}
