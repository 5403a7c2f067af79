package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	portsrepo "github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
)

// companyService implements the CompanySvcFacade interface.
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	now         func() time.Time
}

// NewCompanyService creates a new company service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo, now: time.Now}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany registers a new company.
func (s *companyService) CreateCompany(ctx context.Context, name, category, creatorUserID string) (*domain.Company, error) {
	if category == "" {
		category = domain.CompanyCategoryAgency
	}
	stamp := s.now().UTC()
	company := domain.Company{
		CompanyID: uuid.NewString(),
		Name:      name,
		Category:  category,
		AuditFields: domain.AuditFields{
			CreatedAt:     stamp,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: stamp,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.companyRepo.UpsertCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to create company", slog.String("name", name))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

// GetCompanyByID retrieves a single company.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company %s: %w", companyID, err)
	}
	return company, nil
}

// ListCompanies retrieves all companies.
func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}
