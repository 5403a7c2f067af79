package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourops/tour_backoffice_app/internal/utils/money"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "1234.56", "1234.56"},
		{"integer", "1500", "1500"},
		{"comma decimal", "1234,56", "1234.56"},
		{"dot thousands comma decimal", "1.234,56", "1234.56"},
		{"comma thousands dot decimal", "1,234.56", "1234.56"},
		{"repeated dots are thousands", "1.234.567", "1234567"},
		{"repeated commas are thousands", "1,234,567", "1234567"},
		{"inner spaces stripped", " 1 234,50 ", "1234.50"},
		{"negative", "-250,75", "-250.75"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.ParseAmount(tc.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tc.want)), "got %s want %s", got, tc.want)
		})
	}
}

func TestParseAmount_Malformed(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "12x", "1,2,3.4.5"} {
		_, err := money.ParseAmount(input)
		assert.ErrorIs(t, err, money.ErrMalformedAmount, "input %q", input)
	}
}
