package dto

import (
	"time"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to register a company.
type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID     string    `json:"companyID"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	ContactName   string    `json:"contactName,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCompanyResponse converts a domain.Company to its DTO.
func ToCompanyResponse(company *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:     company.CompanyID,
		Name:          company.Name,
		Category:      company.Category,
		ContactName:   company.ContactName,
		Phone:         company.Phone,
		Email:         company.Email,
		Notes:         company.Notes,
		CreatedAt:     company.CreatedAt,
		LastUpdatedAt: company.LastUpdatedAt,
	}
}

// ToListCompanyResponse converts a slice of companies to DTOs.
func ToListCompanyResponse(companies []domain.Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i := range companies {
		res[i] = ToCompanyResponse(&companies[i])
	}
	return res
}
