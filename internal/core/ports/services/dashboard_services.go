package services

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// DashboardSvcFacade serves derived, presentation-only views.
type DashboardSvcFacade interface {
	// UpcomingReservationGroups groups reservations by destination, ordered by
	// how soon their tours depart, flagging groups with departures inside the
	// urgency window.
	UpcomingReservationGroups(ctx context.Context) ([]domain.ReservationGroup, error)
}
