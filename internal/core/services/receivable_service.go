package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	portsrepo "github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/utils/money"
)

// placeholderCompanyNote tags companies recreated by orphan repair so they can
// be told apart from operator-entered records.
const placeholderCompanyNote = "reconstructed from receivable records"

// receivableService implements the ReceivableSvcFacade interface.
type receivableService struct {
	BaseService
	debtRepo        portsrepo.DebtRepositoryFacade
	companyRepo     portsrepo.CompanyRepositoryFacade
	defaultCurrency string
	now             func() time.Time

	// Writes to a reservation's debt are serialized per reservation id.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// ReceivableOption is a functional option for configuring the receivable service.
type ReceivableOption func(*receivableService)

// WithReceivableClock overrides the time source used for audit stamps.
func WithReceivableClock(now func() time.Time) ReceivableOption {
	return func(s *receivableService) {
		s.now = now
	}
}

// NewReceivableService creates a new receivable ledger service.
func NewReceivableService(
	debtRepo portsrepo.DebtRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	defaultCurrency string,
	options ...ReceivableOption,
) portssvc.ReceivableSvcFacade {
	svc := &receivableService{
		debtRepo:        debtRepo,
		companyRepo:     companyRepo,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
		locks:           make(map[string]*sync.Mutex),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReceivableSvcFacade = (*receivableService)(nil)

func (s *receivableService) reservationLock(reservationID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[reservationID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[reservationID] = lock
	}
	return lock
}

// SyncReservation derives or updates the debt record for a reservation.
//
// The lookup is keyed by originating reservation id, never by re-deriving a
// new record, which is what keeps the ledger at one debt per reservation no
// matter how many times the reservation is edited. If the original creation
// failed, the next edit repairs it by creating the record then.
func (s *receivableService) SyncReservation(ctx context.Context, reservation domain.Reservation, userID string) (*domain.Debt, error) {
	if reservation.CompanyID == "" || !reservation.TotalAmount.IsPositive() {
		return nil, nil
	}

	lock := s.reservationLock(reservation.ReservationID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.debtRepo.FindDebtByReservationID(ctx, reservation.ReservationID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up debt for reservation %s: %w", reservation.ReservationID, err)
	}

	company, err := s.ensureCompany(ctx, reservation.CompanyID, existing, userID)
	if err != nil {
		return nil, err
	}

	currency := reservation.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}
	dueDate := reservation.TourDate
	if reservation.PaymentDueDate != nil {
		dueDate = *reservation.PaymentDueDate
	}
	stamp := s.now().UTC()

	var debt domain.Debt
	if existing != nil {
		debt = *existing
		debt.CompanyID = company.CompanyID
		debt.CompanyName = company.Name
		debt.Amount = reservation.TotalAmount
		debt.Currency = currency
		debt.DueDate = dueDate
		debt.LastUpdatedAt = stamp
		debt.LastUpdatedBy = userID
	} else {
		debt = domain.Debt{
			DebtID:        uuid.NewString(),
			CompanyID:     company.CompanyID,
			CompanyName:   company.Name,
			ReservationID: reservation.ReservationID,
			Amount:        reservation.TotalAmount,
			Currency:      currency,
			PaidAmount:    reservation.AmountPaid,
			DueDate:       dueDate,
			AuditFields: domain.AuditFields{
				CreatedAt:     stamp,
				CreatedBy:     userID,
				LastUpdatedAt: stamp,
				LastUpdatedBy: userID,
			},
		}
	}
	debt.Status = domain.DeriveDebtStatus(debt.Amount, debt.PaidAmount)

	if err := s.debtRepo.UpsertDebt(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to persist debt for reservation %s: %w", reservation.ReservationID, err)
	}

	s.LogInfo(ctx, "Receivable synced",
		slog.String("reservation_id", reservation.ReservationID),
		slog.String("debt_id", debt.DebtID),
		slog.String("status", string(debt.Status)))
	return &debt, nil
}

// ensureCompany verifies the debt's company still exists and recreates a
// tagged placeholder when another workflow deleted it, using the best
// available name from surviving debt rows. A dangling company id never
// escapes this service.
func (s *receivableService) ensureCompany(ctx context.Context, companyID string, existing *domain.Debt, userID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to verify company %s: %w", companyID, err)
	}

	name := ""
	if existing != nil {
		name = existing.CompanyName
	}
	if name == "" {
		if debts, listErr := s.debtRepo.ListDebts(ctx, &companyID); listErr == nil {
			for _, d := range debts {
				if d.CompanyName != "" {
					name = d.CompanyName
					break
				}
			}
		}
	}
	if name == "" {
		name = "Unknown agency"
	}

	stamp := s.now().UTC()
	placeholder := domain.Company{
		CompanyID: companyID,
		Name:      name,
		Category:  domain.CompanyCategoryAgency,
		Notes:     placeholderCompanyNote,
		AuditFields: domain.AuditFields{
			CreatedAt:     stamp,
			CreatedBy:     userID,
			LastUpdatedAt: stamp,
			LastUpdatedBy: userID,
		},
	}
	if err := s.companyRepo.UpsertCompany(ctx, placeholder); err != nil {
		return nil, fmt.Errorf("failed to recreate company %s: %w", companyID, err)
	}

	s.LogWarn(ctx, "Recreated placeholder company for orphaned receivable",
		slog.String("company_id", companyID),
		slog.String("name", name))
	return &placeholder, nil
}

// GetDebtByID retrieves a single debt record.
func (s *receivableService) GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to find debt %s: %w", debtID, err)
	}
	return debt, nil
}

// ListDebts retrieves debts, optionally for one company.
func (s *receivableService) ListDebts(ctx context.Context, companyID *string) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return debts, nil
}

// RecordPayment adds a collected amount to a debt and re-derives its status.
// Increasing the paid amount can only move the status forward.
func (s *receivableService) RecordPayment(ctx context.Context, debtID string, amount decimal.Decimal, userID string) (*domain.Debt, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to find debt %s: %w", debtID, err)
	}

	debt.PaidAmount = debt.PaidAmount.Add(amount)
	debt.Status = domain.DeriveDebtStatus(debt.Amount, debt.PaidAmount)
	debt.LastUpdatedAt = s.now().UTC()
	debt.LastUpdatedBy = userID

	if err := s.debtRepo.UpsertDebt(ctx, *debt); err != nil {
		return nil, fmt.Errorf("failed to persist payment on debt %s: %w", debtID, err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("debt_id", debtID),
		slog.String("amount", amount.String()),
		slog.String("status", string(debt.Status)))
	return debt, nil
}

// DeleteDebt removes a debt record. Decoupled from reservation deletion:
// removing a reservation leaves its debt in place for the debt-management
// view to resolve. The company reference is verified (and repaired) first.
func (s *receivableService) DeleteDebt(ctx context.Context, debtID string) error {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return fmt.Errorf("failed to find debt %s: %w", debtID, err)
	}
	if _, err := s.ensureCompany(ctx, debt.CompanyID, debt, debt.LastUpdatedBy); err != nil {
		s.LogWarn(ctx, "Proceeding with debt deletion despite company repair failure",
			slog.String("debt_id", debtID),
			slog.String("error", err.Error()))
	}
	if err := s.debtRepo.DeleteDebt(ctx, debtID); err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}
	s.LogInfo(ctx, "Debt deleted", slog.String("debt_id", debtID))
	return nil
}

// OutstandingTotals sums unpaid remainders per currency across debts,
// dropping settled and overpaid buckets.
func (s *receivableService) OutstandingTotals(ctx context.Context, companyID *string) ([]domain.CurrencyAmount, error) {
	debts, err := s.debtRepo.ListDebts(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	totals := make(money.Totals)
	for _, debt := range debts {
		remaining := debt.Amount.Sub(debt.PaidAmount)
		totals.Add(debt.Currency, s.defaultCurrency, remaining)
	}
	return totals.DropNonPositive().Sorted(), nil
}
