package domain

import "github.com/shopspring/decimal"

// MonetaryAmount is a value tagged with the currency it is denominated in.
// Arithmetic between two MonetaryAmounts is only meaningful when their
// currencies match; anything that combines currencies must produce a
// per-currency breakdown instead of a single number.
type MonetaryAmount struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"` // ISO 4217 code, e.g. "TRY"
}

// CurrencyAmount is one element of a currency-grouped breakdown as it is
// persisted and serialized (a stable, sorted slice rather than a map).
type CurrencyAmount struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}
