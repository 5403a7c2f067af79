package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	portsrepo "github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/dto"
	"github.com/tourops/tour_backoffice_app/internal/utils/money"
)

// financialEntryService implements the FinancialEntrySvcFacade interface.
// Monetary strings are normalized exactly once, here at the ingestion
// boundary; everything downstream works with decimals.
type financialEntryService struct {
	BaseService
	entryRepo       portsrepo.FinancialEntryRepositoryFacade
	defaultCurrency string
	now             func() time.Time
}

// NewFinancialEntryService creates a new financial entry service.
func NewFinancialEntryService(entryRepo portsrepo.FinancialEntryRepositoryFacade, defaultCurrency string) portssvc.FinancialEntrySvcFacade {
	return &financialEntryService{
		entryRepo:       entryRepo,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
}

var _ portssvc.FinancialEntrySvcFacade = (*financialEntryService)(nil)

func (s *financialEntryService) entryFromRequest(req dto.CreateFinancialEntryRequest) (domain.FinancialEntry, error) {
	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		return domain.FinancialEntry{}, fmt.Errorf("%w: amount %q is not numeric", apperrors.ErrValidation, req.Amount)
	}
	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}
	return domain.FinancialEntry{
		EntryDate: req.EntryDate,
		Kind:      req.Kind,
		Category:  req.Category,
		Amount:    amount,
		Currency:  currency,
		TourID:    req.TourID,
		CompanyID: req.CompanyID,
	}, nil
}

// CreateEntry records a manual ledger line.
func (s *financialEntryService) CreateEntry(ctx context.Context, req dto.CreateFinancialEntryRequest, creatorUserID string) (*domain.FinancialEntry, error) {
	entry, err := s.entryFromRequest(req)
	if err != nil {
		return nil, err
	}
	entry.EntryID = uuid.NewString()
	stamp := s.now().UTC()
	entry.AuditFields = domain.AuditFields{
		CreatedAt:     stamp,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: stamp,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save financial entry", slog.String("category", entry.Category))
		return nil, fmt.Errorf("failed to save financial entry: %w", err)
	}
	s.LogInfo(ctx, "Financial entry created", slog.String("entry_id", entry.EntryID))
	return &entry, nil
}

// UpdateEntry replaces a ledger line's fields.
func (s *financialEntryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateFinancialEntryRequest, userID string) (*domain.FinancialEntry, error) {
	existing, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find financial entry %s: %w", entryID, err)
	}

	entry, err := s.entryFromRequest(req)
	if err != nil {
		return nil, err
	}
	entry.EntryID = existing.EntryID
	entry.AuditFields = existing.AuditFields
	entry.LastUpdatedAt = s.now().UTC()
	entry.LastUpdatedBy = userID

	if err := s.entryRepo.UpdateEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to update financial entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update financial entry %s: %w", entryID, err)
	}
	s.LogInfo(ctx, "Financial entry updated", slog.String("entry_id", entryID))
	return &entry, nil
}

// GetEntryByID retrieves a single ledger line.
func (s *financialEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.FinancialEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find financial entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries retrieves ledger lines, optionally for one entry-date year.
func (s *financialEntryService) ListEntries(ctx context.Context, year *int) ([]domain.FinancialEntry, error) {
	entries, err := s.entryRepo.ListEntries(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes a ledger line.
func (s *financialEntryService) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete financial entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete financial entry %s: %w", entryID, err)
	}
	s.LogInfo(ctx, "Financial entry deleted", slog.String("entry_id", entryID))
	return nil
}
