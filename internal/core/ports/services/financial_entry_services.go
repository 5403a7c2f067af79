package services

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/dto"
)

// FinancialEntrySvcFacade manages manually entered ledger lines.
type FinancialEntrySvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateFinancialEntryRequest, creatorUserID string) (*domain.FinancialEntry, error)
	GetEntryByID(ctx context.Context, entryID string) (*domain.FinancialEntry, error)
	ListEntries(ctx context.Context, year *int) ([]domain.FinancialEntry, error)
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateFinancialEntryRequest, userID string) (*domain.FinancialEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
}
