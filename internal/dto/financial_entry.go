package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// CreateFinancialEntryRequest defines the data needed to record a manual
// ledger line. Amount is accepted as entered ("1.234,56" and friends) and
// normalized once at this ingestion boundary.
type CreateFinancialEntryRequest struct {
	EntryDate time.Time        `json:"entryDate" binding:"required"`
	Kind      domain.EntryKind `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Category  string           `json:"category" binding:"required"`
	Amount    string           `json:"amount" binding:"required"`
	Currency  string           `json:"currency" binding:"omitempty,currency"`
	TourID    string           `json:"tourID"`
	CompanyID string           `json:"companyID"`
}

// UpdateFinancialEntryRequest carries the same shape as creation.
type UpdateFinancialEntryRequest = CreateFinancialEntryRequest

// FinancialEntryResponse defines the data returned for a financial entry.
type FinancialEntryResponse struct {
	EntryID       string           `json:"entryID"`
	EntryDate     time.Time        `json:"entryDate"`
	Kind          domain.EntryKind `json:"kind"`
	Category      string           `json:"category"`
	Amount        decimal.Decimal  `json:"amount"`
	Currency      string           `json:"currency"`
	TourID        string           `json:"tourID,omitempty"`
	CompanyID     string           `json:"companyID,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToFinancialEntryResponse converts a domain.FinancialEntry to its DTO.
func ToFinancialEntryResponse(entry *domain.FinancialEntry) FinancialEntryResponse {
	return FinancialEntryResponse{
		EntryID:       entry.EntryID,
		EntryDate:     entry.EntryDate,
		Kind:          entry.Kind,
		Category:      entry.Category,
		Amount:        entry.Amount,
		Currency:      entry.Currency,
		TourID:        entry.TourID,
		CompanyID:     entry.CompanyID,
		CreatedAt:     entry.CreatedAt,
		LastUpdatedAt: entry.LastUpdatedAt,
	}
}

// ToListFinancialEntryResponse converts a slice of entries to DTOs.
func ToListFinancialEntryResponse(entries []domain.FinancialEntry) []FinancialEntryResponse {
	res := make([]FinancialEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToFinancialEntryResponse(&entries[i])
	}
	return res
}
