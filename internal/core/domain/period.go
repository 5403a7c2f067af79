package domain

import "github.com/shopspring/decimal"

// PeriodStatus indicates whether a period is still accumulating activity.
type PeriodStatus string

const (
	PeriodActive PeriodStatus = "ACTIVE"
	PeriodClosed PeriodStatus = "CLOSED"
)

// Period is a fully derived monthly aggregate. Its content must always be
// reproducible by re-running the rollup over the same source window; it is
// never hand-edited.
//
// The scalar totals are legacy display fields holding only the primary
// currency's bucket; the ByCurrency slices are authoritative.
type Period struct {
	PeriodID string `json:"periodID"`
	Year     int    `json:"year"`
	Month    int    `json:"month"` // 1-12

	FinancialIncome decimal.Decimal `json:"financialIncome"`
	TourIncome      decimal.Decimal `json:"tourIncome"`
	CompanyExpenses decimal.Decimal `json:"companyExpenses"`
	TourExpenses    decimal.Decimal `json:"tourExpenses"`

	FinancialIncomeByCurrency []CurrencyAmount `json:"financialIncomeByCurrency"`
	TourIncomeByCurrency      []CurrencyAmount `json:"tourIncomeByCurrency"`
	CompanyExpensesByCurrency []CurrencyAmount `json:"companyExpensesByCurrency"`
	TourExpensesByCurrency    []CurrencyAmount `json:"tourExpensesByCurrency"`

	TourCount        int `json:"tourCount"`
	CustomerCount    int `json:"customerCount"`
	ReservationCount int `json:"reservationCount"`

	Status PeriodStatus `json:"status"`
	AuditFields
}

// MonthRef identifies one (year, month) rollup unit.
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// UnitFailure records a single month that failed during a recalculation or a
// year deletion, so a retry can be scoped to the remainder.
type UnitFailure struct {
	Unit  MonthRef `json:"unit"`
	Error string   `json:"error"`
}

// RecalculationStatus is the terminal state of a recalculation run.
type RecalculationStatus string

const (
	RecalculationDone   RecalculationStatus = "DONE"
	RecalculationFailed RecalculationStatus = "FAILED"
)

// RecalculationResult reports exactly which months were written and which
// failed during one recompute run.
type RecalculationResult struct {
	Status   RecalculationStatus `json:"status"`
	Affected []MonthRef          `json:"affected"`
	Failures []UnitFailure       `json:"failures,omitempty"`
}

// YearDeletionResult reports per-month outcomes of a year deletion. A failed
// month's Period row is left in place for a retry.
type YearDeletionResult struct {
	Year     int           `json:"year"`
	Deleted  []MonthRef    `json:"deleted"`
	Failures []UnitFailure `json:"failures,omitempty"`
}

// YearlySummary is a pure fold over one year's Period rows. It is never
// recomputed independently from raw records: if the monthly periods are
// stale, the yearly view is stale too.
type YearlySummary struct {
	Year int `json:"year"`

	FinancialIncomeByCurrency []CurrencyAmount `json:"financialIncomeByCurrency"`
	TourIncomeByCurrency      []CurrencyAmount `json:"tourIncomeByCurrency"`
	CompanyExpensesByCurrency []CurrencyAmount `json:"companyExpensesByCurrency"`
	TourExpensesByCurrency    []CurrencyAmount `json:"tourExpensesByCurrency"`
	NetProfitByCurrency       []CurrencyAmount `json:"netProfitByCurrency"`

	TourCount        int `json:"tourCount"`
	CustomerCount    int `json:"customerCount"`
	ReservationCount int `json:"reservationCount"`
	MonthCount       int `json:"monthCount"`
}
