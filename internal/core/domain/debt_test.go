package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

func TestDeriveDebtStatus(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		paid   decimal.Decimal
		want   domain.DebtStatus
	}{
		{
			name:   "nothing paid",
			amount: decimal.NewFromInt(1000),
			paid:   decimal.Zero,
			want:   domain.DebtUnpaid,
		},
		{
			name:   "partially paid",
			amount: decimal.NewFromInt(1000),
			paid:   decimal.NewFromInt(300),
			want:   domain.DebtPartiallyPaid,
		},
		{
			name:   "exactly paid",
			amount: decimal.NewFromInt(1000),
			paid:   decimal.NewFromInt(1000),
			want:   domain.DebtPaid,
		},
		{
			name:   "overpaid still counts as paid",
			amount: decimal.NewFromInt(1000),
			paid:   decimal.NewFromInt(1200),
			want:   domain.DebtPaid,
		},
		{
			name:   "negative paid amount",
			amount: decimal.NewFromInt(1000),
			paid:   decimal.NewFromInt(-50),
			want:   domain.DebtUnpaid,
		},
		{
			name:   "zero amount with zero paid is settled",
			amount: decimal.Zero,
			paid:   decimal.Zero,
			want:   domain.DebtPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DeriveDebtStatus(tt.amount, tt.paid)
			assert.Equal(t, tt.want, got)
		})
	}
}
