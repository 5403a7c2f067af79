package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/utils/money"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSum_GroupsByCurrency(t *testing.T) {
	entries := []domain.MonetaryAmount{
		{Value: dec("100"), Currency: "TRY"},
		{Value: dec("50"), Currency: "EUR"},
		{Value: dec("200"), Currency: "TRY"},
	}

	totals := money.Sum(entries, "TRY")

	require.Len(t, totals, 2)
	assert.True(t, totals.Get("TRY").Equal(dec("300")))
	assert.True(t, totals.Get("EUR").Equal(dec("50")))
}

func TestSum_EmptyCurrencyFallsBackToDefault(t *testing.T) {
	entries := []domain.MonetaryAmount{
		{Value: dec("10"), Currency: ""},
		{Value: dec("5"), Currency: "TRY"},
	}

	totals := money.Sum(entries, "TRY")

	require.Len(t, totals, 1)
	assert.True(t, totals.Get("TRY").Equal(dec("15")))
}

func TestSum_RetainsNegativeTotals(t *testing.T) {
	entries := []domain.MonetaryAmount{
		{Value: dec("-100"), Currency: "USD"},
	}

	totals := money.Sum(entries, "TRY")

	assert.True(t, totals.Get("USD").Equal(dec("-100")))
}

func TestGet_MissingCurrencyIsZero(t *testing.T) {
	totals := money.Sum(nil, "TRY")
	assert.True(t, totals.Get("GBP").IsZero())
}

func TestSubtract_UnionOfCurrencies(t *testing.T) {
	a := money.Totals{"TRY": dec("100"), "EUR": dec("40")}
	b := money.Totals{"TRY": dec("30"), "USD": dec("25")}

	result := money.Subtract(a, b)

	require.Len(t, result, 3)
	assert.True(t, result.Get("TRY").Equal(dec("70")))
	assert.True(t, result.Get("EUR").Equal(dec("40")))
	// Present only in the subtrahend: goes negative, never merges elsewhere.
	assert.True(t, result.Get("USD").Equal(dec("-25")))
}

func TestDropNonPositive(t *testing.T) {
	totals := money.Totals{
		"TRY": dec("10"),
		"EUR": dec("0"),
		"USD": dec("-5"),
	}

	result := totals.DropNonPositive()

	require.Len(t, result, 1)
	assert.True(t, result.Get("TRY").Equal(dec("10")))
}

func TestSorted_DeterministicOrder(t *testing.T) {
	totals := money.Totals{
		"USD": dec("1"),
		"EUR": dec("2"),
		"TRY": dec("3"),
	}

	breakdown := totals.Sorted()

	require.Len(t, breakdown, 3)
	assert.Equal(t, "EUR", breakdown[0].Currency)
	assert.Equal(t, "TRY", breakdown[1].Currency)
	assert.Equal(t, "USD", breakdown[2].Currency)
}

func TestPrimary_PrefersDefaultCurrency(t *testing.T) {
	totals := money.Totals{"TRY": dec("100"), "EUR": dec("9999")}
	assert.True(t, totals.Primary("TRY").Equal(dec("100")))
}

func TestPrimary_FallsBackToLargestAbsolute(t *testing.T) {
	totals := money.Totals{"EUR": dec("-500"), "USD": dec("100")}
	assert.True(t, totals.Primary("TRY").Equal(dec("-500")))
}

func TestPrimary_EmptyTotalsIsZero(t *testing.T) {
	totals := money.Totals{}
	assert.True(t, totals.Primary("TRY").IsZero())
}

func TestFromBreakdown_RoundTripsSorted(t *testing.T) {
	totals := money.Totals{"TRY": dec("12.5"), "EUR": dec("3")}

	rebuilt := money.FromBreakdown(totals.Sorted())

	require.Len(t, rebuilt, 2)
	assert.True(t, rebuilt.Get("TRY").Equal(dec("12.5")))
	assert.True(t, rebuilt.Get("EUR").Equal(dec("3")))
}

func TestMerge_AddsBuckets(t *testing.T) {
	a := money.Totals{"TRY": dec("10")}
	a.Merge(money.Totals{"TRY": dec("5"), "EUR": dec("1")})

	assert.True(t, a.Get("TRY").Equal(dec("15")))
	assert.True(t, a.Get("EUR").Equal(dec("1")))
}
