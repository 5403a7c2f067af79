package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
)

type PgxPeriodRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPeriodRepository creates a new repository for derived period aggregates.
func NewPgxPeriodRepository(pool *pgxpool.Pool) repositories.PeriodRepositoryFacade {
	return &PgxPeriodRepository{pool: pool}
}

const periodColumns = `
	period_id, year, month,
	financial_income, tour_income, company_expenses, tour_expenses,
	financial_income_by_currency, tour_income_by_currency,
	company_expenses_by_currency, tour_expenses_by_currency,
	tour_count, customer_count, reservation_count, status,
	created_at, created_by, last_updated_at, last_updated_by
`

// scanPeriod scans one period row, unmarshalling the JSONB per-currency
// breakdowns.
func scanPeriod(row pgx.CollectableRow) (domain.Period, error) {
	var (
		period      domain.Period
		finIncome   []byte
		tourIncome  []byte
		compExpense []byte
		tourExpense []byte
	)
	err := row.Scan(
		&period.PeriodID,
		&period.Year,
		&period.Month,
		&period.FinancialIncome,
		&period.TourIncome,
		&period.CompanyExpenses,
		&period.TourExpenses,
		&finIncome,
		&tourIncome,
		&compExpense,
		&tourExpense,
		&period.TourCount,
		&period.CustomerCount,
		&period.ReservationCount,
		&period.Status,
		&period.CreatedAt,
		&period.CreatedBy,
		&period.LastUpdatedAt,
		&period.LastUpdatedBy,
	)
	if err != nil {
		return domain.Period{}, err
	}
	for _, pair := range []struct {
		raw  []byte
		dest *[]domain.CurrencyAmount
	}{
		{finIncome, &period.FinancialIncomeByCurrency},
		{tourIncome, &period.TourIncomeByCurrency},
		{compExpense, &period.CompanyExpensesByCurrency},
		{tourExpense, &period.TourExpensesByCurrency},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dest); err != nil {
			return domain.Period{}, fmt.Errorf("failed to unmarshal breakdown for period %s: %w", period.PeriodID, err)
		}
	}
	return period, nil
}

// FindPeriodByID retrieves a period by its unique identifier.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE period_id = $1;`

	rows, err := r.pool.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query period %s: %w", periodID, err)
	}
	period, err := pgx.CollectOneRow(rows, scanPeriod)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period by id %s: %w", periodID, err)
	}
	return &period, nil
}

// ListPeriods retrieves period rows ordered by (year, month), optionally
// restricted to one year.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, year *int) ([]domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods`
	args := []any{}
	if year != nil {
		query += ` WHERE year = $1`
		args = append(args, *year)
	}
	query += ` ORDER BY year, month;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	periods, err := pgx.CollectRows(rows, scanPeriod)
	if err != nil {
		return nil, fmt.Errorf("failed to scan periods: %w", err)
	}
	return periods, nil
}

// UpsertPeriod overwrites the period row for (period.Year, period.Month),
// creating it when absent. Every aggregate field is replaced so a recompute
// leaves no stale residue.
func (r *PgxPeriodRepository) UpsertPeriod(ctx context.Context, period domain.Period) error {
	breakdowns := make([][]byte, 4)
	for i, b := range [][]domain.CurrencyAmount{
		period.FinancialIncomeByCurrency,
		period.TourIncomeByCurrency,
		period.CompanyExpensesByCurrency,
		period.TourExpensesByCurrency,
	} {
		raw, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("failed to marshal breakdown for period %s: %w", period.PeriodID, err)
		}
		breakdowns[i] = raw
	}

	query := `
		INSERT INTO periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (year, month) DO UPDATE SET
			financial_income = EXCLUDED.financial_income,
			tour_income = EXCLUDED.tour_income,
			company_expenses = EXCLUDED.company_expenses,
			tour_expenses = EXCLUDED.tour_expenses,
			financial_income_by_currency = EXCLUDED.financial_income_by_currency,
			tour_income_by_currency = EXCLUDED.tour_income_by_currency,
			company_expenses_by_currency = EXCLUDED.company_expenses_by_currency,
			tour_expenses_by_currency = EXCLUDED.tour_expenses_by_currency,
			tour_count = EXCLUDED.tour_count,
			customer_count = EXCLUDED.customer_count,
			reservation_count = EXCLUDED.reservation_count,
			status = EXCLUDED.status,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		period.PeriodID,
		period.Year,
		period.Month,
		period.FinancialIncome,
		period.TourIncome,
		period.CompanyExpenses,
		period.TourExpenses,
		breakdowns[0],
		breakdowns[1],
		breakdowns[2],
		breakdowns[3],
		period.TourCount,
		period.CustomerCount,
		period.ReservationCount,
		period.Status,
		period.CreatedAt,
		period.CreatedBy,
		period.LastUpdatedAt,
		period.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert period %s: %w", period.PeriodID, err)
	}
	return nil
}

// DeletePeriod removes exactly one period row.
func (r *PgxPeriodRepository) DeletePeriod(ctx context.Context, periodID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM periods WHERE period_id = $1;`, periodID)
	if err != nil {
		return fmt.Errorf("failed to delete period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
