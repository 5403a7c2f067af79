package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedAmount indicates a monetary field was not numeric after
// separator normalization. Callers recover locally by skipping the entry.
var ErrMalformedAmount = errors.New("malformed monetary amount")

// ParseAmount parses a numeric-looking string into a decimal, normalizing
// mixed thousands/decimal separators. It accepts forms like "1234.56",
// "1.234,56", "1,234.56" and "1.234.567". Empty or non-numeric input yields
// ErrMalformedAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, ErrMalformedAmount
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		// Both present: the rightmost one is the decimal separator, the
		// other is a thousands separator.
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			// Repeated commas can only be thousands separators.
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			// Repeated dots can only be thousands separators.
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrMalformedAmount
	}
	return value, nil
}
