package repositories

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// PeriodReader defines read operations for derived period aggregates.
type PeriodReader interface {
	// FindPeriodByID retrieves a specific period by its unique identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)

	// ListPeriods retrieves period rows ordered by (year, month), optionally
	// restricted to one year. A nil year means all periods.
	ListPeriods(ctx context.Context, year *int) ([]domain.Period, error)
}

// PeriodWriter defines write operations for derived period aggregates.
type PeriodWriter interface {
	// UpsertPeriod overwrites the period row for (period.Year, period.Month),
	// creating it when absent. The write replaces every aggregate field.
	UpsertPeriod(ctx context.Context, period domain.Period) error

	// DeletePeriod removes exactly one period row.
	DeletePeriod(ctx context.Context, periodID string) error
}

// PeriodRepositoryFacade combines all period repository interfaces.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
