package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	portsrepo "github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/utils/urgency"
)

// dashboardService implements the DashboardSvcFacade interface.
type dashboardService struct {
	BaseService
	reservationRepo portsrepo.ReservationRepositoryFacade
	now             func() time.Time
}

// DashboardOption is a functional option for configuring the dashboard service.
type DashboardOption func(*dashboardService)

// WithDashboardClock overrides the time source used for urgency windows.
func WithDashboardClock(now func() time.Time) DashboardOption {
	return func(s *dashboardService) {
		s.now = now
	}
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(reservationRepo portsrepo.ReservationRepositoryFacade, options ...DashboardOption) portssvc.DashboardSvcFacade {
	svc := &dashboardService{reservationRepo: reservationRepo, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// UpcomingReservationGroups groups reservations by destination ordered by
// departure proximity. Nothing is persisted; the grouping is recomputed from
// the reservation list on every call.
func (s *dashboardService) UpcomingReservationGroups(ctx context.Context) ([]domain.ReservationGroup, error) {
	reservations, err := s.reservationRepo.ListReservations(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return urgency.GroupByDestination(reservations, s.now()), nil
}
