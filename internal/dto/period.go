package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// RecalculatePeriodsRequest triggers a rollup for one year or for all time.
type RecalculatePeriodsRequest struct {
	Year *int `json:"year" binding:"omitempty,min=2000,max=2200"`
}

// PeriodResponse defines the data returned for one monthly aggregate.
// The scalar totals are the legacy primary-currency display fields; the
// ByCurrency breakdowns are authoritative. NetProfitByCurrency is always a
// per-currency map, never a single coerced number.
type PeriodResponse struct {
	PeriodID string `json:"periodID"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`

	FinancialIncome decimal.Decimal `json:"financialIncome"`
	TourIncome      decimal.Decimal `json:"tourIncome"`
	CompanyExpenses decimal.Decimal `json:"companyExpenses"`
	TourExpenses    decimal.Decimal `json:"tourExpenses"`

	FinancialIncomeByCurrency []domain.CurrencyAmount `json:"financialIncomeByCurrency"`
	TourIncomeByCurrency      []domain.CurrencyAmount `json:"tourIncomeByCurrency"`
	CompanyExpensesByCurrency []domain.CurrencyAmount `json:"companyExpensesByCurrency"`
	TourExpensesByCurrency    []domain.CurrencyAmount `json:"tourExpensesByCurrency"`
	NetProfitByCurrency       []domain.CurrencyAmount `json:"netProfitByCurrency"`

	TourCount        int                 `json:"tourCount"`
	CustomerCount    int                 `json:"customerCount"`
	ReservationCount int                 `json:"reservationCount"`
	Status           domain.PeriodStatus `json:"status"`
	LastUpdatedAt    time.Time           `json:"lastUpdatedAt"`
}

// ToPeriodResponse converts a domain.Period to its DTO, deriving the
// per-currency net profit from the persisted breakdowns.
func ToPeriodResponse(p *domain.Period, netProfit []domain.CurrencyAmount) PeriodResponse {
	return PeriodResponse{
		PeriodID:                  p.PeriodID,
		Year:                      p.Year,
		Month:                     p.Month,
		FinancialIncome:           p.FinancialIncome,
		TourIncome:                p.TourIncome,
		CompanyExpenses:           p.CompanyExpenses,
		TourExpenses:              p.TourExpenses,
		FinancialIncomeByCurrency: p.FinancialIncomeByCurrency,
		TourIncomeByCurrency:      p.TourIncomeByCurrency,
		CompanyExpensesByCurrency: p.CompanyExpensesByCurrency,
		TourExpensesByCurrency:    p.TourExpensesByCurrency,
		NetProfitByCurrency:       netProfit,
		TourCount:                 p.TourCount,
		CustomerCount:             p.CustomerCount,
		ReservationCount:          p.ReservationCount,
		Status:                    p.Status,
		LastUpdatedAt:             p.LastUpdatedAt,
	}
}

// RecalculationResultResponse reports the outcome of a recompute run.
type RecalculationResultResponse struct {
	Status   domain.RecalculationStatus `json:"status"`
	Affected int                        `json:"affected"`
	Months   []domain.MonthRef          `json:"months"`
	Failures []domain.UnitFailure       `json:"failures,omitempty"`
}

// ToRecalculationResultResponse converts a recalculation result to its DTO.
func ToRecalculationResultResponse(r *domain.RecalculationResult) RecalculationResultResponse {
	return RecalculationResultResponse{
		Status:   r.Status,
		Affected: len(r.Affected),
		Months:   r.Affected,
		Failures: r.Failures,
	}
}

// YearDeletionResultResponse reports per-month outcomes of a year deletion.
type YearDeletionResultResponse struct {
	Year     int                  `json:"year"`
	Deleted  int                  `json:"deleted"`
	Months   []domain.MonthRef    `json:"months"`
	Failures []domain.UnitFailure `json:"failures,omitempty"`
}

// ToYearDeletionResultResponse converts a year deletion result to its DTO.
func ToYearDeletionResultResponse(r *domain.YearDeletionResult) YearDeletionResultResponse {
	return YearDeletionResultResponse{
		Year:     r.Year,
		Deleted:  len(r.Deleted),
		Months:   r.Deleted,
		Failures: r.Failures,
	}
}
