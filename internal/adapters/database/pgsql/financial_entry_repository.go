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

type PgxFinancialEntryRepository struct {
	pool *pgxpool.Pool
}

// NewPgxFinancialEntryRepository creates a new repository for financial entries.
func NewPgxFinancialEntryRepository(pool *pgxpool.Pool) repositories.FinancialEntryRepositoryFacade {
	return &PgxFinancialEntryRepository{pool: pool}
}

const financialEntryColumns = `
	entry_id, entry_date, kind, category, amount, currency, tour_id, company_id,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanFinancialEntry(row pgx.CollectableRow) (domain.FinancialEntry, error) {
	var entry domain.FinancialEntry
	err := row.Scan(
		&entry.EntryID,
		&entry.EntryDate,
		&entry.Kind,
		&entry.Category,
		&entry.Amount,
		&entry.Currency,
		&entry.TourID,
		&entry.CompanyID,
		&entry.CreatedAt,
		&entry.CreatedBy,
		&entry.LastUpdatedAt,
		&entry.LastUpdatedBy,
	)
	return entry, err
}

// FindEntryByID retrieves an entry by its unique identifier.
func (r *PgxFinancialEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.FinancialEntry, error) {
	query := `SELECT ` + financialEntryColumns + ` FROM financial_entries WHERE entry_id = $1;`

	rows, err := r.pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial entry %s: %w", entryID, err)
	}
	entry, err := pgx.CollectOneRow(rows, scanFinancialEntry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find financial entry by id %s: %w", entryID, err)
	}
	return &entry, nil
}

// ListEntries retrieves entries ordered by entry date, optionally restricted
// to an entry-date year.
func (r *PgxFinancialEntryRepository) ListEntries(ctx context.Context, year *int) ([]domain.FinancialEntry, error) {
	query := `SELECT ` + financialEntryColumns + ` FROM financial_entries`
	args := []any{}
	if year != nil {
		query += ` WHERE EXTRACT(YEAR FROM entry_date) = $1`
		args = append(args, *year)
	}
	query += ` ORDER BY entry_date, entry_id;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial entries: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, scanFinancialEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to scan financial entries: %w", err)
	}
	return entries, nil
}

// SaveEntry persists a new financial entry.
func (r *PgxFinancialEntryRepository) SaveEntry(ctx context.Context, entry domain.FinancialEntry) error {
	query := `
		INSERT INTO financial_entries (` + financialEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.EntryID,
		entry.EntryDate,
		entry.Kind,
		entry.Category,
		entry.Amount,
		entry.Currency,
		entry.TourID,
		entry.CompanyID,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save financial entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// UpdateEntry replaces an entry's mutable fields.
func (r *PgxFinancialEntryRepository) UpdateEntry(ctx context.Context, entry domain.FinancialEntry) error {
	query := `
		UPDATE financial_entries SET
			entry_date = $2,
			kind = $3,
			category = $4,
			amount = $5,
			currency = $6,
			tour_id = $7,
			company_id = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE entry_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		entry.EntryID,
		entry.EntryDate,
		entry.Kind,
		entry.Category,
		entry.Amount,
		entry.Currency,
		entry.TourID,
		entry.CompanyID,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update financial entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry.
func (r *PgxFinancialEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM financial_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete financial entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
