package repositories

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// DebtReader defines read operations for receivable records.
type DebtReader interface {
	// FindDebtByID retrieves a specific debt by its unique identifier.
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// FindDebtByReservationID retrieves the debt derived from a reservation,
	// if one exists. This is the uniqueness key for the ledger sync.
	FindDebtByReservationID(ctx context.Context, reservationID string) (*domain.Debt, error)

	// ListDebts retrieves all debts, optionally restricted to one company.
	ListDebts(ctx context.Context, companyID *string) ([]domain.Debt, error)
}

// DebtWriter defines write operations for receivable records.
type DebtWriter interface {
	// UpsertDebt persists a debt, overwriting an existing row with the same id.
	UpsertDebt(ctx context.Context, debt domain.Debt) error

	// DeleteDebt removes a debt record.
	DeleteDebt(ctx context.Context, debtID string) error
}

// DebtRepositoryFacade combines all debt repository interfaces.
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
