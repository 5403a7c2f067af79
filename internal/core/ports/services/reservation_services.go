package services

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/dto"
)

// ReservationSvcFacade manages reservations. Every create or update re-runs
// the receivable ledger sync; a sync failure never fails the reservation save
// and is reported through dto.ReservationSaveResult.SyncWarning instead.
type ReservationSvcFacade interface {
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest, creatorUserID string) (*dto.ReservationSaveResult, error)
	GetReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)
	ListReservations(ctx context.Context, year *int) ([]domain.Reservation, error)
	UpdateReservation(ctx context.Context, reservationID string, req dto.UpdateReservationRequest, userID string) (*dto.ReservationSaveResult, error)
}
