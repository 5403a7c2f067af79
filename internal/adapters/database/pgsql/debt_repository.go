package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
)

type PgxDebtRepository struct {
	pool *pgxpool.Pool
}

// NewPgxDebtRepository creates a new repository for receivable records.
func NewPgxDebtRepository(pool *pgxpool.Pool) repositories.DebtRepositoryFacade {
	return &PgxDebtRepository{pool: pool}
}

const debtColumns = `
	debt_id, company_id, company_name, reservation_id, tour_id, amount,
	currency, paid_amount, due_date, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanDebt(row pgx.CollectableRow) (domain.Debt, error) {
	var debt domain.Debt
	err := row.Scan(
		&debt.DebtID,
		&debt.CompanyID,
		&debt.CompanyName,
		&debt.ReservationID,
		&debt.TourID,
		&debt.Amount,
		&debt.Currency,
		&debt.PaidAmount,
		&debt.DueDate,
		&debt.Status,
		&debt.CreatedAt,
		&debt.CreatedBy,
		&debt.LastUpdatedAt,
		&debt.LastUpdatedBy,
	)
	return debt, err
}

// FindDebtByID retrieves a debt by its unique identifier.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1;`

	rows, err := r.pool.Query(ctx, query, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to query debt %s: %w", debtID, err)
	}
	debt, err := pgx.CollectOneRow(rows, scanDebt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by id %s: %w", debtID, err)
	}
	return &debt, nil
}

// FindDebtByReservationID retrieves the debt derived from a reservation. The
// reservation_id column carries a unique constraint, so at most one row can
// come back.
func (r *PgxDebtRepository) FindDebtByReservationID(ctx context.Context, reservationID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE reservation_id = $1;`

	rows, err := r.pool.Query(ctx, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query debt for reservation %s: %w", reservationID, err)
	}
	debt, err := pgx.CollectOneRow(rows, scanDebt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by reservation id %s: %w", reservationID, err)
	}
	return &debt, nil
}

// ListDebts retrieves all debts, optionally restricted to one company.
func (r *PgxDebtRepository) ListDebts(ctx context.Context, companyID *string) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts`
	args := []any{}
	if companyID != nil {
		query += ` WHERE company_id = $1`
		args = append(args, *companyID)
	}
	query += ` ORDER BY due_date, debt_id;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	debts, err := pgx.CollectRows(rows, scanDebt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan debts: %w", err)
	}
	return debts, nil
}

// UpsertDebt persists a debt, overwriting an existing row with the same id.
func (r *PgxDebtRepository) UpsertDebt(ctx context.Context, debt domain.Debt) error {
	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (debt_id) DO UPDATE SET
			company_id = EXCLUDED.company_id,
			company_name = EXCLUDED.company_name,
			tour_id = EXCLUDED.tour_id,
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			paid_amount = EXCLUDED.paid_amount,
			due_date = EXCLUDED.due_date,
			status = EXCLUDED.status,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		debt.DebtID,
		debt.CompanyID,
		debt.CompanyName,
		debt.ReservationID,
		debt.TourID,
		debt.Amount,
		debt.Currency,
		debt.PaidAmount,
		debt.DueDate,
		debt.Status,
		debt.CreatedAt,
		debt.CreatedBy,
		debt.LastUpdatedAt,
		debt.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert debt %s: %w", debt.DebtID, err)
	}
	return nil
}

// DeleteDebt removes a debt record.
func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, debtID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM debts WHERE debt_id = $1;`, debtID)
	if err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
