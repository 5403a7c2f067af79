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
	"github.com/tourops/tour_backoffice_app/internal/dto"
)

// reservationService implements the ReservationSvcFacade interface.
//
// The reservation is the primary artifact of a save; the derived debt is
// best-effort state the receivable sync can repair on the next edit. A sync
// failure therefore surfaces as a warning on the result, never as a failed
// save.
type reservationService struct {
	BaseService
	reservationRepo portsrepo.ReservationRepositoryFacade
	receivable      portssvc.ReceivableSvcFacade
	defaultCurrency string
	now             func() time.Time
}

// NewReservationService creates a new reservation service.
func NewReservationService(
	reservationRepo portsrepo.ReservationRepositoryFacade,
	receivable portssvc.ReceivableSvcFacade,
	defaultCurrency string,
) portssvc.ReservationSvcFacade {
	return &reservationService{
		reservationRepo: reservationRepo,
		receivable:      receivable,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
}

var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

func (s *reservationService) reservationFromRequest(req dto.CreateReservationRequest) domain.Reservation {
	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}
	reservation := domain.Reservation{
		SerialNumber:    req.SerialNumber,
		TourDate:        req.TourDate,
		PickupTime:      req.PickupTime,
		DestinationID:   req.DestinationID,
		DestinationName: req.DestinationName,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CompanyID:       req.CompanyID,
		TotalAmount:     req.TotalAmount,
		Currency:        currency,
		AmountPaid:      req.AmountPaid,
		PaymentDueDate:  req.PaymentDueDate,
	}
	reservation.PaymentStatus = derivePaymentStatus(reservation)
	return reservation
}

// derivePaymentStatus applies the same rule the debt ledger uses; it is
// recomputed on every save, never trusted from caller input.
func derivePaymentStatus(r domain.Reservation) domain.ReservationPaymentStatus {
	switch {
	case r.TotalAmount.IsPositive() && r.AmountPaid.GreaterThanOrEqual(r.TotalAmount):
		return domain.ReservationPaid
	case r.AmountPaid.IsPositive():
		return domain.ReservationPartiallyPaid
	default:
		return domain.ReservationUnpaid
	}
}

func (s *reservationService) syncLedger(ctx context.Context, reservation domain.Reservation, userID string, result *dto.ReservationSaveResult) {
	debt, err := s.receivable.SyncReservation(ctx, reservation, userID)
	if err != nil {
		s.LogWarn(ctx, "Receivable sync failed; reservation saved without ledger entry",
			slog.String("reservation_id", reservation.ReservationID),
			slog.String("error", err.Error()))
		result.SyncWarning = err.Error()
		return
	}
	if debt != nil {
		response := dto.ToDebtResponse(debt)
		result.Debt = &response
	}
}

// CreateReservation persists a new reservation and derives its receivable.
func (s *reservationService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest, creatorUserID string) (*dto.ReservationSaveResult, error) {
	reservation := s.reservationFromRequest(req)
	reservation.ReservationID = uuid.NewString()
	stamp := s.now().UTC()
	reservation.AuditFields = domain.AuditFields{
		CreatedAt:     stamp,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: stamp,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.reservationRepo.SaveReservation(ctx, reservation); err != nil {
		s.LogError(ctx, err, "Failed to save reservation", slog.String("serial", reservation.SerialNumber))
		return nil, fmt.Errorf("failed to save reservation: %w", err)
	}
	s.LogInfo(ctx, "Reservation created", slog.String("reservation_id", reservation.ReservationID))

	result := &dto.ReservationSaveResult{Reservation: dto.ToReservationResponse(&reservation)}
	s.syncLedger(ctx, reservation, creatorUserID, result)
	return result, nil
}

// UpdateReservation replaces a reservation's fields and re-runs the ledger sync.
func (s *reservationService) UpdateReservation(ctx context.Context, reservationID string, req dto.UpdateReservationRequest, userID string) (*dto.ReservationSaveResult, error) {
	existing, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservation %s: %w", reservationID, err)
	}

	reservation := s.reservationFromRequest(req)
	reservation.ReservationID = existing.ReservationID
	reservation.AuditFields = existing.AuditFields
	reservation.LastUpdatedAt = s.now().UTC()
	reservation.LastUpdatedBy = userID

	if err := s.reservationRepo.UpdateReservation(ctx, reservation); err != nil {
		s.LogError(ctx, err, "Failed to update reservation", slog.String("reservation_id", reservationID))
		return nil, fmt.Errorf("failed to update reservation %s: %w", reservationID, err)
	}
	s.LogInfo(ctx, "Reservation updated", slog.String("reservation_id", reservationID))

	result := &dto.ReservationSaveResult{Reservation: dto.ToReservationResponse(&reservation)}
	s.syncLedger(ctx, reservation, userID, result)
	return result, nil
}

// GetReservationByID retrieves a single reservation.
func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservation %s: %w", reservationID, err)
	}
	return reservation, nil
}

// ListReservations retrieves reservations, optionally for one tour-date year.
func (s *reservationService) ListReservations(ctx context.Context, year *int) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.ListReservations(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}
