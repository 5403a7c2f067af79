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

type PgxCompanyRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCompanyRepository creates a new repository for company data.
func NewPgxCompanyRepository(pool *pgxpool.Pool) repositories.CompanyRepositoryFacade {
	return &PgxCompanyRepository{pool: pool}
}

const companyColumns = `
	company_id, name, category, contact_name, phone, email, notes,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanCompany(row pgx.CollectableRow) (domain.Company, error) {
	var company domain.Company
	err := row.Scan(
		&company.CompanyID,
		&company.Name,
		&company.Category,
		&company.ContactName,
		&company.Phone,
		&company.Email,
		&company.Notes,
		&company.CreatedAt,
		&company.CreatedBy,
		&company.LastUpdatedAt,
		&company.LastUpdatedBy,
	)
	return company, err
}

// FindCompanyByID retrieves a company by its unique identifier.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query company %s: %w", companyID, err)
	}
	company, err := pgx.CollectOneRow(rows, scanCompany)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by id %s: %w", companyID, err)
	}
	return &company, nil
}

// ListCompanies retrieves all companies ordered by name.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name, company_id;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies, err := pgx.CollectRows(rows, scanCompany)
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}
	return companies, nil
}

// UpsertCompany persists a company, overwriting an existing row with the same
// id. Orphan repair relies on the upsert semantics to recreate deleted rows.
func (r *PgxCompanyRepository) UpsertCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (company_id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			contact_name = EXCLUDED.contact_name,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.Category,
		company.ContactName,
		company.Phone,
		company.Email,
		company.Notes,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert company %s: %w", company.CompanyID, err)
	}
	return nil
}
