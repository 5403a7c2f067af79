package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// ReceivableSvcFacade keeps the accounts-receivable ("cari") ledger in sync
// with reservations and serves the debt-management view.
type ReceivableSvcFacade interface {
	// SyncReservation derives or updates the debt record for a reservation.
	// At most one debt exists per originating reservation id; concurrent syncs
	// for the same reservation are serialized. A reservation without a company
	// or without a positive total yields (nil, nil).
	SyncReservation(ctx context.Context, reservation domain.Reservation, userID string) (*domain.Debt, error)

	GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context, companyID *string) ([]domain.Debt, error)

	// RecordPayment adds a collected amount to a debt and re-derives its status.
	RecordPayment(ctx context.Context, debtID string, amount decimal.Decimal, userID string) (*domain.Debt, error)

	// DeleteDebt removes a debt. Deliberately decoupled from reservation
	// deletion; removing a reservation leaves its debt in place.
	DeleteDebt(ctx context.Context, debtID string) error

	// OutstandingTotals sums unpaid remainders per currency, dropping settled
	// and overpaid buckets.
	OutstandingTotals(ctx context.Context, companyID *string) ([]domain.CurrencyAmount, error)
}

// CompanySvcFacade manages the company records debts are held against.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, name, category string, creatorUserID string) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}
