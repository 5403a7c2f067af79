package repositories

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// ReservationReader defines read operations for reservation data.
type ReservationReader interface {
	// FindReservationByID retrieves a specific reservation by its unique identifier.
	FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// ListReservations retrieves all reservations, optionally restricted to a
	// tour-date year. A nil year means all time.
	ListReservations(ctx context.Context, year *int) ([]domain.Reservation, error)
}

// ReservationWriter defines write operations for reservation data.
type ReservationWriter interface {
	// SaveReservation persists a new reservation.
	SaveReservation(ctx context.Context, reservation domain.Reservation) error

	// UpdateReservation replaces a reservation's mutable fields.
	UpdateReservation(ctx context.Context, reservation domain.Reservation) error
}

// ReservationRepositoryFacade combines all reservation repository interfaces.
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}
