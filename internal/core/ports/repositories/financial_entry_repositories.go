package repositories

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// FinancialEntryReader defines read operations for manually entered ledger lines.
type FinancialEntryReader interface {
	// FindEntryByID retrieves a specific entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.FinancialEntry, error)

	// ListEntries retrieves all entries, optionally restricted to an entry-date
	// year. A nil year means all time.
	ListEntries(ctx context.Context, year *int) ([]domain.FinancialEntry, error)
}

// FinancialEntryWriter defines write operations for manually entered ledger lines.
type FinancialEntryWriter interface {
	// SaveEntry persists a new financial entry.
	SaveEntry(ctx context.Context, entry domain.FinancialEntry) error

	// UpdateEntry replaces an entry's mutable fields.
	UpdateEntry(ctx context.Context, entry domain.FinancialEntry) error

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, entryID string) error
}

// FinancialEntryRepositoryFacade combines all financial-entry repository interfaces.
type FinancialEntryRepositoryFacade interface {
	FinancialEntryReader
	FinancialEntryWriter
}
