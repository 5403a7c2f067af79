package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	portsrepo "github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/utils/accounting"
	"github.com/tourops/tour_backoffice_app/internal/utils/money"
)

// periodRollupService implements the PeriodSvcFacade interface.
//
// Periods are always recomputed from scratch: incremental maintenance of
// multi-currency rollups drifts, a full re-read does not. All source reads
// happen in one pass before the first period write, so a concurrent edit to a
// source record during a run may or may not be reflected; re-running fixes it.
type periodRollupService struct {
	BaseService
	tourRepo        portsrepo.TourRepositoryFacade
	entryRepo       portsrepo.FinancialEntryRepositoryFacade
	reservationRepo portsrepo.ReservationRepositoryFacade
	periodRepo      portsrepo.PeriodRepositoryFacade
	calc            accounting.Calculator
	defaultCurrency string
	now             func() time.Time

	// Guards against two concurrent recompute runs; later requests are
	// rejected, not queued.
	recalcMu sync.Mutex
}

// PeriodRollupOption is a functional option for configuring the period service.
type PeriodRollupOption func(*periodRollupService)

// WithRollupClock overrides the time source used for audit stamps.
func WithRollupClock(now func() time.Time) PeriodRollupOption {
	return func(s *periodRollupService) {
		s.now = now
	}
}

// NewPeriodRollupService creates a new period rollup service.
func NewPeriodRollupService(
	tourRepo portsrepo.TourRepositoryFacade,
	entryRepo portsrepo.FinancialEntryRepositoryFacade,
	reservationRepo portsrepo.ReservationRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	defaultCurrency string,
	options ...PeriodRollupOption,
) portssvc.PeriodSvcFacade {
	svc := &periodRollupService{
		tourRepo:        tourRepo,
		entryRepo:       entryRepo,
		reservationRepo: reservationRepo,
		periodRepo:      periodRepo,
		calc:            accounting.Calculator{DefaultCurrency: defaultCurrency},
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PeriodSvcFacade = (*periodRollupService)(nil)

// monthBucket accumulates one calendar month's figures during a recompute.
type monthBucket struct {
	financialIncome  money.Totals
	companyExpenses  money.Totals
	tourIncome       money.Totals
	tourExpenses     money.Totals
	tourCount        int
	customerCount    int
	reservationCount int
}

func newMonthBucket() *monthBucket {
	return &monthBucket{
		financialIncome: make(money.Totals),
		companyExpenses: make(money.Totals),
		tourIncome:      make(money.Totals),
		tourExpenses:    make(money.Totals),
	}
}

// PeriodID returns the deterministic identifier for a (year, month) row.
// Stable ids are what make repeated recomputes overwrite instead of append.
func PeriodID(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// RecalculatePeriods rebuilds every touched (year, month) aggregate from the
// raw tours, financial entries and reservations. A read failure aborts the
// run before any write; upsert failures are collected per month so a retry
// can be scoped to the remainder.
func (s *periodRollupService) RecalculatePeriods(ctx context.Context, year *int, userID string) (*domain.RecalculationResult, error) {
	if !s.recalcMu.TryLock() {
		return nil, apperrors.ErrRecalculationRunning
	}
	defer s.recalcMu.Unlock()

	scope := "all"
	if year != nil {
		scope = fmt.Sprintf("%d", *year)
	}
	s.LogInfo(ctx, "Period recalculation started", slog.String("scope", scope))

	// Snapshot read: everything is loaded before the first write.
	tours, err := s.tourRepo.ListTours(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Period recalculation aborted: failed to load tours")
		return nil, fmt.Errorf("failed to load tours: %w", err)
	}
	entries, err := s.entryRepo.ListEntries(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Period recalculation aborted: failed to load financial entries")
		return nil, fmt.Errorf("failed to load financial entries: %w", err)
	}
	reservations, err := s.reservationRepo.ListReservations(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Period recalculation aborted: failed to load reservations")
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	buckets := make(map[domain.MonthRef]*monthBucket)
	bucketFor := func(t time.Time) *monthBucket {
		ref := domain.MonthRef{Year: t.Year(), Month: int(t.Month())}
		b, ok := buckets[ref]
		if !ok {
			b = newMonthBucket()
			buckets[ref] = b
		}
		return b
	}

	for _, entry := range entries {
		// Entries generated from tour expense lines are excluded so tour
		// expenses are not counted twice.
		if entry.Category == domain.TourExpenseCategory {
			continue
		}
		b := bucketFor(entry.EntryDate)
		switch entry.Kind {
		case domain.EntryIncome:
			b.financialIncome.Add(entry.Currency, s.defaultCurrency, entry.Amount)
		case domain.EntryExpense:
			b.companyExpenses.Add(entry.Currency, s.defaultCurrency, entry.Amount)
		}
	}

	for _, tour := range tours {
		b := bucketFor(tour.SaleDate)
		figures := s.calc.Figures(tour)
		b.tourIncome.Merge(figures.Income)
		b.tourExpenses.Merge(figures.Expenses)
		b.tourCount++
		b.customerCount += tour.ParticipantCount
	}

	for _, reservation := range reservations {
		bucketFor(reservation.TourDate).reservationCount++
	}

	refs := make([]domain.MonthRef, 0, len(buckets))
	for ref := range buckets {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Year != refs[j].Year {
			return refs[i].Year < refs[j].Year
		}
		return refs[i].Month < refs[j].Month
	})

	result := &domain.RecalculationResult{Status: domain.RecalculationDone}
	stamp := s.now().UTC()
	for _, ref := range refs {
		period := s.buildPeriod(ref, buckets[ref], userID, stamp)
		if err := s.periodRepo.UpsertPeriod(ctx, period); err != nil {
			s.LogError(ctx, err, "Failed to persist period",
				slog.Int("year", ref.Year), slog.Int("month", ref.Month))
			result.Failures = append(result.Failures, domain.UnitFailure{Unit: ref, Error: err.Error()})
			continue
		}
		result.Affected = append(result.Affected, ref)
	}
	if len(result.Failures) > 0 {
		result.Status = domain.RecalculationFailed
	}

	s.LogInfo(ctx, "Period recalculation finished",
		slog.String("scope", scope),
		slog.Int("affected", len(result.Affected)),
		slog.Int("failures", len(result.Failures)))
	return result, nil
}

func (s *periodRollupService) buildPeriod(ref domain.MonthRef, b *monthBucket, userID string, stamp time.Time) domain.Period {
	return domain.Period{
		PeriodID: PeriodID(ref.Year, ref.Month),
		Year:     ref.Year,
		Month:    ref.Month,

		FinancialIncome: b.financialIncome.Primary(s.defaultCurrency),
		TourIncome:      b.tourIncome.Primary(s.defaultCurrency),
		CompanyExpenses: b.companyExpenses.Primary(s.defaultCurrency),
		TourExpenses:    b.tourExpenses.Primary(s.defaultCurrency),

		FinancialIncomeByCurrency: b.financialIncome.Sorted(),
		TourIncomeByCurrency:      b.tourIncome.Sorted(),
		CompanyExpensesByCurrency: b.companyExpenses.Sorted(),
		TourExpensesByCurrency:    b.tourExpenses.Sorted(),

		TourCount:        b.tourCount,
		CustomerCount:    b.customerCount,
		ReservationCount: b.reservationCount,

		Status: domain.PeriodActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     stamp,
			CreatedBy:     userID,
			LastUpdatedAt: stamp,
			LastUpdatedBy: userID,
		},
	}
}

// GetPeriodByID retrieves a single period row.
func (s *periodRollupService) GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	return period, nil
}

// ListPeriods retrieves period rows, optionally for one year.
func (s *periodRollupService) ListPeriods(ctx context.Context, year *int) ([]domain.Period, error) {
	periods, err := s.periodRepo.ListPeriods(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}

// YearlySummary folds one year's period rows into a yearly view. The fold
// never touches raw records: stale monthly rows give a stale yearly view
// until the monthly recompute runs.
func (s *periodRollupService) YearlySummary(ctx context.Context, year int) (*domain.YearlySummary, error) {
	periods, err := s.periodRepo.ListPeriods(ctx, &year)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods for %d: %w", year, err)
	}

	financialIncome := make(money.Totals)
	tourIncome := make(money.Totals)
	companyExpenses := make(money.Totals)
	tourExpenses := make(money.Totals)

	summary := &domain.YearlySummary{Year: year, MonthCount: len(periods)}
	for _, p := range periods {
		financialIncome.Merge(money.FromBreakdown(p.FinancialIncomeByCurrency))
		tourIncome.Merge(money.FromBreakdown(p.TourIncomeByCurrency))
		companyExpenses.Merge(money.FromBreakdown(p.CompanyExpensesByCurrency))
		tourExpenses.Merge(money.FromBreakdown(p.TourExpensesByCurrency))
		summary.TourCount += p.TourCount
		summary.CustomerCount += p.CustomerCount
		summary.ReservationCount += p.ReservationCount
	}

	income := make(money.Totals)
	income.Merge(financialIncome)
	income.Merge(tourIncome)
	expenses := make(money.Totals)
	expenses.Merge(companyExpenses)
	expenses.Merge(tourExpenses)

	summary.FinancialIncomeByCurrency = financialIncome.Sorted()
	summary.TourIncomeByCurrency = tourIncome.Sorted()
	summary.CompanyExpensesByCurrency = companyExpenses.Sorted()
	summary.TourExpensesByCurrency = tourExpenses.Sorted()
	summary.NetProfitByCurrency = money.Subtract(income, expenses).Sorted()
	return summary, nil
}

// DeletePeriod removes exactly one (year, month) row.
func (s *periodRollupService) DeletePeriod(ctx context.Context, periodID string) error {
	if err := s.periodRepo.DeletePeriod(ctx, periodID); err != nil {
		s.LogError(ctx, err, "Failed to delete period", slog.String("period_id", periodID))
		return fmt.Errorf("failed to delete period %s: %w", periodID, err)
	}
	s.LogInfo(ctx, "Period deleted", slog.String("period_id", periodID))
	return nil
}

// DeleteYear deletes every period row of a year sequentially. A month that
// fails to delete stays in place and is reported, so a retry can be scoped
// to the remainder; there is no silent partial success.
func (s *periodRollupService) DeleteYear(ctx context.Context, year int) (*domain.YearDeletionResult, error) {
	periods, err := s.periodRepo.ListPeriods(ctx, &year)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods for %d: %w", year, err)
	}

	result := &domain.YearDeletionResult{Year: year}
	for _, period := range periods {
		ref := domain.MonthRef{Year: period.Year, Month: period.Month}
		if err := s.periodRepo.DeletePeriod(ctx, period.PeriodID); err != nil {
			s.LogError(ctx, err, "Failed to delete period during year deletion",
				slog.Int("year", period.Year), slog.Int("month", period.Month))
			result.Failures = append(result.Failures, domain.UnitFailure{Unit: ref, Error: err.Error()})
			continue
		}
		result.Deleted = append(result.Deleted, ref)
	}

	s.LogInfo(ctx, "Year deletion finished",
		slog.Int("year", year),
		slog.Int("deleted", len(result.Deleted)),
		slog.Int("failures", len(result.Failures)))
	return result, nil
}
