package repositories

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// CompanyReader defines read operations for company data.
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its unique identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves all companies.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data.
type CompanyWriter interface {
	// UpsertCompany persists a company, overwriting an existing row with the
	// same id. Used both by the company form and by orphan repair.
	UpsertCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines all company repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
