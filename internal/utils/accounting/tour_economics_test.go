package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/utils/accounting"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var calc = accounting.Calculator{DefaultCurrency: "TRY"}

func TestIncome_BasePlusActivities(t *testing.T) {
	// 1000 EUR base, one 50 EUR activity sold to all 4 participants.
	tour := domain.Tour{
		Currency:         "EUR",
		TotalPrice:       dec("1000"),
		ParticipantCount: 4,
		Activities: []domain.Activity{
			{Name: "Dinner cruise", Price: dec("50"), Currency: "EUR", AllParticipants: true},
		},
	}

	income := calc.Income(tour)

	require.Len(t, income, 1)
	assert.True(t, income.Get("EUR").Equal(dec("1200")))
}

func TestIncome_ActivityInOwnCurrencyBucket(t *testing.T) {
	tour := domain.Tour{
		Currency:   "TRY",
		TotalPrice: dec("5000"),
		Activities: []domain.Activity{
			{Name: "Museum pass", Price: dec("20"), Currency: "USD", ParticipantCount: 2},
		},
	}

	income := calc.Income(tour)

	require.Len(t, income, 2)
	assert.True(t, income.Get("TRY").Equal(dec("5000")))
	assert.True(t, income.Get("USD").Equal(dec("40")))
}

func TestIncome_SkipsNonPositivePriceAndZeroParticipants(t *testing.T) {
	tour := domain.Tour{
		Currency: "TRY",
		Activities: []domain.Activity{
			{Price: dec("0"), ParticipantCount: 3},
			{Price: dec("-10"), ParticipantCount: 3},
			{Price: dec("10"), ParticipantCount: 0},
		},
	}

	income := calc.Income(tour)

	assert.Empty(t, income)
}

func TestIncome_ActivityCurrencyFallsBackToTourCurrency(t *testing.T) {
	tour := domain.Tour{
		Currency: "EUR",
		Activities: []domain.Activity{
			{Price: dec("30"), ParticipantCount: 1},
		},
	}

	income := calc.Income(tour)

	assert.True(t, income.Get("EUR").Equal(dec("30")))
}

func TestExpenses_ParsesRawAmountsAndSkipsMalformed(t *testing.T) {
	tour := domain.Tour{
		Currency: "TRY",
		Expenses: []domain.TourExpense{
			{Category: "Transport", Amount: "1.250,50", Currency: "TRY"},
			{Category: "Guide", Amount: "300", Currency: "EUR"},
			{Category: "Broken", Amount: "n/a", Currency: "TRY"},
			{Category: "Zero", Amount: "0", Currency: "TRY"},
		},
	}

	expenses := calc.Expenses(tour)

	require.Len(t, expenses, 2)
	assert.True(t, expenses.Get("TRY").Equal(dec("1250.50")))
	assert.True(t, expenses.Get("EUR").Equal(dec("300")))
}

func TestPaid_CompletedRecognizesFullIncome(t *testing.T) {
	tour := domain.Tour{
		Currency:      "EUR",
		TotalPrice:    dec("1000"),
		PaymentStatus: domain.TourPaymentCompleted,
	}

	figures := calc.Figures(tour)

	assert.True(t, figures.Paid.Get("EUR").Equal(dec("1000")))
	assert.Empty(t, figures.Remaining)
}

func TestPaid_PartialRecognizesOnlyRecordedPayments(t *testing.T) {
	// Partial payment of 300 against a 1200 EUR total.
	tour := domain.Tour{
		Currency:             "EUR",
		TotalPrice:           dec("1000"),
		ParticipantCount:     4,
		PaymentStatus:        domain.TourPaymentPartial,
		PartialPaymentAmount: dec("300"),
		Activities: []domain.Activity{
			{Name: "Dinner cruise", Price: dec("50"), Currency: "EUR", AllParticipants: true},
		},
	}

	figures := calc.Figures(tour)

	assert.True(t, figures.Income.Get("EUR").Equal(dec("1200")))
	assert.True(t, figures.Paid.Get("EUR").Equal(dec("300")))
	assert.True(t, figures.Remaining.Get("EUR").Equal(dec("900")))
}

func TestPaid_RefundedRecognizesNothing(t *testing.T) {
	tour := domain.Tour{
		Currency:      "EUR",
		TotalPrice:    dec("500"),
		PaymentStatus: domain.TourPaymentRefunded,
	}

	figures := calc.Figures(tour)

	assert.Empty(t, figures.Paid)
	assert.True(t, figures.Remaining.Get("EUR").Equal(dec("500")))
}

func TestFigures_ProfitPerCurrency(t *testing.T) {
	tour := domain.Tour{
		Currency:   "EUR",
		TotalPrice: dec("1000"),
		Expenses: []domain.TourExpense{
			{Category: "Hotel", Amount: "400", Currency: "EUR"},
			{Category: "Transfer", Amount: "2000", Currency: "TRY"},
		},
	}

	figures := calc.Figures(tour)

	assert.True(t, figures.Profit.Get("EUR").Equal(dec("600")))
	// An expense-only currency shows a negative profit bucket, never a merge.
	assert.True(t, figures.Profit.Get("TRY").Equal(dec("-2000")))
}

func TestFigures_RemainingOmitsNonIncomeCurrencies(t *testing.T) {
	// Partial payment recorded in a different currency than the sale: the
	// income currency is still fully outstanding and the payment currency does
	// not surface as a negative remainder.
	tour := domain.Tour{
		Currency:               "EUR",
		TotalPrice:             dec("1000"),
		PaymentStatus:          domain.TourPaymentPartial,
		PartialPaymentAmount:   dec("5000"),
		PartialPaymentCurrency: "TRY",
	}

	figures := calc.Figures(tour)

	require.Len(t, figures.Remaining, 1)
	assert.True(t, figures.Remaining.Get("EUR").Equal(dec("1000")))
}

func TestFigures_EmptyTour(t *testing.T) {
	figures := calc.Figures(domain.Tour{Currency: "TRY"})

	assert.Empty(t, figures.Income)
	assert.Empty(t, figures.Expenses)
	assert.Empty(t, figures.Profit)
	assert.Empty(t, figures.Paid)
	assert.Empty(t, figures.Remaining)
}
