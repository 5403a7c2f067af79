// Package accounting computes the economic figures for a single tour sale:
// income, expenses, profit, paid-to-date and remaining balance, each as a
// per-currency breakdown.
package accounting

import (
	"github.com/shopspring/decimal"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/utils/money"
)

// TourFigures holds the computed economics of one tour.
type TourFigures struct {
	Income    money.Totals
	Expenses  money.Totals
	Profit    money.Totals
	Paid      money.Totals
	Remaining money.Totals
}

// Calculator computes tour figures. DefaultCurrency is used wherever a record
// carries no currency of its own.
type Calculator struct {
	DefaultCurrency string
}

// Figures computes all economic figures for a tour.
func (c Calculator) Figures(tour domain.Tour) TourFigures {
	income := c.Income(tour)
	expenses := c.Expenses(tour)
	paid := c.Paid(tour, income)

	remaining := money.Subtract(income, paid)
	// A currency is reported as outstanding only while something is owed in
	// it; settled or overpaid buckets are omitted.
	remaining = remaining.DropNonPositive()
	for currency := range remaining {
		if _, ok := income[currency]; !ok {
			delete(remaining, currency)
		}
	}

	return TourFigures{
		Income:    income,
		Expenses:  expenses,
		Profit:    money.Subtract(income, expenses),
		Paid:      paid,
		Remaining: remaining,
	}
}

// Income sums the tour's base price with every activity's price multiplied by
// its participant count. An "all participants" activity uses the tour's head
// count. Each activity contributes to its own currency bucket. A tour with no
// price and no activities yields an empty map, which callers render as "—".
func (c Calculator) Income(tour domain.Tour) money.Totals {
	totals := make(money.Totals)
	if tour.TotalPrice.IsPositive() {
		totals.Add(tour.Currency, c.DefaultCurrency, tour.TotalPrice)
	}
	for _, activity := range tour.Activities {
		if !activity.Price.IsPositive() {
			continue
		}
		participants := activity.ParticipantCount
		if activity.AllParticipants {
			participants = tour.ParticipantCount
		}
		if participants <= 0 {
			continue
		}
		currency := activity.Currency
		if currency == "" {
			currency = tour.Currency
		}
		contribution := activity.Price.Mul(decimal.NewFromInt(int64(participants)))
		totals.Add(currency, c.DefaultCurrency, contribution)
	}
	return totals
}

// Expenses sums the tour's own expense lines. Amounts are raw operator input
// and are parsed defensively; malformed or non-positive lines are skipped,
// never treated as an error.
func (c Calculator) Expenses(tour domain.Tour) money.Totals {
	totals := make(money.Totals)
	for _, expense := range tour.Expenses {
		amount, err := money.ParseAmount(expense.Amount)
		if err != nil {
			// Malformed lines are skipped, not failed.
			continue
		}
		if !amount.IsPositive() {
			continue
		}
		currency := expense.Currency
		if currency == "" {
			currency = tour.Currency
		}
		totals.Add(currency, c.DefaultCurrency, amount)
	}
	return totals
}

// Paid computes the collected-to-date breakdown. A completed tour recognizes
// the full income, activities included. A partial tour recognizes only the
// recorded partial payments: the tour-level one and any per-activity ones;
// activities with no partial payment contribute nothing even though they
// count in income. Pending and refunded tours recognize nothing.
func (c Calculator) Paid(tour domain.Tour, income money.Totals) money.Totals {
	totals := make(money.Totals)
	switch tour.PaymentStatus {
	case domain.TourPaymentCompleted:
		totals.Merge(income)
	case domain.TourPaymentPartial:
		if tour.PartialPaymentAmount.IsPositive() {
			currency := tour.PartialPaymentCurrency
			if currency == "" {
				currency = tour.Currency
			}
			totals.Add(currency, c.DefaultCurrency, tour.PartialPaymentAmount)
		}
		for _, activity := range tour.Activities {
			if !activity.PartialPaymentAmount.IsPositive() {
				continue
			}
			currency := activity.PartialPaymentCurrency
			if currency == "" {
				currency = activity.Currency
			}
			if currency == "" {
				currency = tour.Currency
			}
			totals.Add(currency, c.DefaultCurrency, activity.PartialPaymentAmount)
		}
	}
	return totals
}
