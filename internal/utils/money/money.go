// Package money implements currency-safe aggregation of monetary amounts.
// Amounts in different currencies are never summed together; every operation
// that combines currencies yields a per-currency breakdown.
package money

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// Totals maps a currency code to the summed amount for that currency.
type Totals map[string]decimal.Decimal

// Sum folds a sequence of monetary amounts into per-currency totals.
// Entries with a missing currency are attributed to defaultCurrency.
// Zero and negative totals are retained; callers that want them gone use
// DropNonPositive explicitly.
func Sum(entries []domain.MonetaryAmount, defaultCurrency string) Totals {
	totals := make(Totals)
	for _, e := range entries {
		currency := e.Currency
		if currency == "" {
			currency = defaultCurrency
		}
		totals[currency] = totals[currency].Add(e.Value)
	}
	return totals
}

// Add accumulates value into the bucket for currency, falling back to
// defaultCurrency when currency is empty.
func (t Totals) Add(currency, defaultCurrency string, value decimal.Decimal) {
	if currency == "" {
		currency = defaultCurrency
	}
	t[currency] = t[currency].Add(value)
}

// Get returns the total for currency, or zero if the currency is absent.
func (t Totals) Get(currency string) decimal.Decimal {
	return t[currency]
}

// Subtract computes a - b per currency over the union of currencies appearing
// in either map. A currency present only in b yields a negative entry.
func Subtract(a, b Totals) Totals {
	result := make(Totals, len(a))
	for currency, amount := range a {
		result[currency] = amount
	}
	for currency, amount := range b {
		result[currency] = result[currency].Sub(amount)
	}
	return result
}

// Merge adds every bucket of other into t.
func (t Totals) Merge(other Totals) {
	for currency, amount := range other {
		t[currency] = t[currency].Add(amount)
	}
}

// DropNonPositive returns a copy of t without zero or negative buckets.
// Used where only outstanding remainders matter (e.g. debt alerts).
func (t Totals) DropNonPositive() Totals {
	result := make(Totals, len(t))
	for currency, amount := range t {
		if amount.IsPositive() {
			result[currency] = amount
		}
	}
	return result
}

// Sorted renders the totals as a breakdown slice ordered by currency code.
// The deterministic order is what makes repeated rollups byte-identical.
func (t Totals) Sorted() []domain.CurrencyAmount {
	out := make([]domain.CurrencyAmount, 0, len(t))
	for currency, amount := range t {
		out = append(out, domain.CurrencyAmount{Currency: currency, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}

// Primary selects the scalar used by legacy single-number display fields:
// the default currency's bucket when present, otherwise the bucket with the
// largest absolute total, otherwise zero.
func (t Totals) Primary(defaultCurrency string) decimal.Decimal {
	if amount, ok := t[defaultCurrency]; ok {
		return amount
	}
	best := decimal.Zero
	bestAbs := decimal.Zero
	found := false
	for _, ca := range t.Sorted() {
		abs := ca.Amount.Abs()
		if !found || abs.GreaterThan(bestAbs) {
			best = ca.Amount
			bestAbs = abs
			found = true
		}
	}
	return best
}

// FromBreakdown rebuilds totals from a persisted breakdown slice.
func FromBreakdown(breakdown []domain.CurrencyAmount) Totals {
	totals := make(Totals, len(breakdown))
	for _, ca := range breakdown {
		totals[ca.Currency] = totals[ca.Currency].Add(ca.Amount)
	}
	return totals
}
