package st00012

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture payloads mirror the examples published with GOST R 56042
// (one segment per field, Cyrillic payee data).
const (
	fixtureRequired = "ST00012|Name=ООО «Три кита»|PersonalAcc=40702810138250123017|" +
		"BankName=ОАО \"БАНК\"|BIC=044525225|CorrespAcc=30101810400000000225"

	fixtureFull = fixtureRequired + "|PayeeINN=6200098765|LastName=Иванов|FirstName=Иван|" +
		"MiddleName=Иванович|Purpose=Оплата членского взноса|" +
		"PayerAddress=г.Рязань ул.Ленина д.10 кв.15|Sum=100000"
)

// fixtureRequisites builds the five required requisites shared by most
// fixtures, failing the test on invalid input.
func fixtureRequisites(t *testing.T) RequiredRequisites {
	t.Helper()
	req, err := NewRequiredRequisites(
		"ООО «Три кита»",
		"40702810138250123017",
		"ОАО \"БАНК\"",
		"044525225",
		"30101810400000000225",
	)
	require.NoError(t, err)
	return req
}

// fixtureAdditional builds the additional requisites of fixtureFull in
// wire order.
func fixtureAdditional(t *testing.T) []Requisite {
	t.Helper()
	pairs := []struct {
		kind  RequisiteKind
		value string
	}{
		{PayeeINNRequisite, "6200098765"},
		{LastNameRequisite, "Иванов"},
		{FirstNameRequisite, "Иван"},
		{MiddleNameRequisite, "Иванович"},
		{PurposeRequisite, "Оплата членского взноса"},
		{PayerAddressRequisite, "г.Рязань ул.Ленина д.10 кв.15"},
		{SumRequisite, "100000"},
	}
	requisites := make([]Requisite, 0, len(pairs))
	for _, p := range pairs {
		req, err := NewRequisite(p.kind, p.value)
		require.NoError(t, err)
		requisites = append(requisites, req)
	}
	return requisites
}

// testExtension is a host requisite used to exercise the extension
// point, one fixed key per value.
type testExtension struct {
	key   string
	value string
}

func (e testExtension) Key() string {
	return e.key
}

func (e testExtension) Value() string {
	return e.value
}

// parseTestExtension accepts the keys "Foo" and "Bar" and rejects
// everything else the way the default extension parser does.
func parseTestExtension(key, value string) (Extension, error) {
	switch key {
	case "Foo", "Bar":
		return testExtension{key: key, value: value}, nil
	}
	return nil, &UnknownPairError{Key: key, Value: value}
}
