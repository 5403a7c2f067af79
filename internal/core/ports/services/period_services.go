package services

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// PeriodSvcFacade owns the derived monthly aggregates.
//
// RecalculatePeriods recomputes every touched (year, month) from scratch
// rather than maintaining the rows incrementally; reads happen in a single
// pass before any write, and a concurrent request while one run is in flight
// is rejected with apperrors.ErrRecalculationRunning. Callers should treat it
// as a long-running operation.
type PeriodSvcFacade interface {
	RecalculatePeriods(ctx context.Context, year *int, userID string) (*domain.RecalculationResult, error)
	GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)
	ListPeriods(ctx context.Context, year *int) ([]domain.Period, error)

	// YearlySummary folds one year's period rows into a yearly view. It never
	// touches raw records; stale monthly rows yield a stale yearly view.
	YearlySummary(ctx context.Context, year int) (*domain.YearlySummary, error)

	DeletePeriod(ctx context.Context, periodID string) error

	// DeleteYear deletes every period row of a year sequentially, reporting
	// per-month successes and failures. No silent partial success.
	DeleteYear(ctx context.Context, year int) (*domain.YearDeletionResult, error)
}
