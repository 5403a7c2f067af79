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
	"github.com/tourops/tour_backoffice_app/internal/utils/accounting"
)

// tourService implements the TourSvcFacade interface.
type tourService struct {
	BaseService
	tourRepo portsrepo.TourRepositoryFacade
	calc     accounting.Calculator
	now      func() time.Time
}

// NewTourService creates a new tour service.
func NewTourService(tourRepo portsrepo.TourRepositoryFacade, defaultCurrency string) portssvc.TourSvcFacade {
	return &tourService{
		tourRepo: tourRepo,
		calc:     accounting.Calculator{DefaultCurrency: defaultCurrency},
		now:      time.Now,
	}
}

var _ portssvc.TourSvcFacade = (*tourService)(nil)

func tourFromRequest(req dto.CreateTourRequest) domain.Tour {
	activities := make([]domain.Activity, len(req.Activities))
	for i, a := range req.Activities {
		activities[i] = domain.Activity{
			ActivityID:             uuid.NewString(),
			Name:                   a.Name,
			Price:                  a.Price,
			Currency:               a.Currency,
			ParticipantCount:       a.ParticipantCount,
			AllParticipants:        a.AllParticipants,
			PartialPaymentAmount:   a.PartialPaymentAmount,
			PartialPaymentCurrency: a.PartialPaymentCurrency,
		}
	}
	expenses := make([]domain.TourExpense, len(req.Expenses))
	for i, e := range req.Expenses {
		expenses[i] = domain.TourExpense{
			ExpenseID: uuid.NewString(),
			Category:  e.Category,
			Amount:    e.Amount,
			Currency:  e.Currency,
		}
	}
	return domain.Tour{
		Destination:            req.Destination,
		SaleDate:               req.SaleDate,
		EndDate:                req.EndDate,
		Currency:               req.Currency,
		TotalPrice:             req.TotalPrice,
		ParticipantCount:       req.ParticipantCount,
		Activities:             activities,
		Expenses:               expenses,
		PaymentStatus:          req.PaymentStatus,
		PartialPaymentAmount:   req.PartialPaymentAmount,
		PartialPaymentCurrency: req.PartialPaymentCurrency,
	}
}

// CreateTour records a new tour sale.
func (s *tourService) CreateTour(ctx context.Context, req dto.CreateTourRequest, creatorUserID string) (*domain.Tour, error) {
	tour := tourFromRequest(req)
	tour.TourID = uuid.NewString()
	stamp := s.now().UTC()
	tour.AuditFields = domain.AuditFields{
		CreatedAt:     stamp,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: stamp,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.tourRepo.SaveTour(ctx, tour); err != nil {
		s.LogError(ctx, err, "Failed to save tour", slog.String("destination", tour.Destination))
		return nil, fmt.Errorf("failed to save tour: %w", err)
	}
	s.LogInfo(ctx, "Tour created", slog.String("tour_id", tour.TourID))
	return &tour, nil
}

// UpdateTour replaces a tour's fields, activities and expense lines.
func (s *tourService) UpdateTour(ctx context.Context, tourID string, req dto.UpdateTourRequest, userID string) (*domain.Tour, error) {
	existing, err := s.tourRepo.FindTourByID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tour %s: %w", tourID, err)
	}

	tour := tourFromRequest(req)
	tour.TourID = existing.TourID
	tour.AuditFields = existing.AuditFields
	tour.LastUpdatedAt = s.now().UTC()
	tour.LastUpdatedBy = userID

	if err := s.tourRepo.UpdateTour(ctx, tour); err != nil {
		s.LogError(ctx, err, "Failed to update tour", slog.String("tour_id", tourID))
		return nil, fmt.Errorf("failed to update tour %s: %w", tourID, err)
	}
	s.LogInfo(ctx, "Tour updated", slog.String("tour_id", tourID))
	return &tour, nil
}

// GetTourByID retrieves a single tour.
func (s *tourService) GetTourByID(ctx context.Context, tourID string) (*domain.Tour, error) {
	tour, err := s.tourRepo.FindTourByID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tour %s: %w", tourID, err)
	}
	return tour, nil
}

// ListTours retrieves tours, optionally for one sale-date year.
func (s *tourService) ListTours(ctx context.Context, year *int) ([]domain.Tour, error) {
	tours, err := s.tourRepo.ListTours(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	return tours, nil
}

// Figures computes the per-currency economics of one tour.
func (s *tourService) Figures(ctx context.Context, tourID string) (*accounting.TourFigures, error) {
	tour, err := s.tourRepo.FindTourByID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tour %s: %w", tourID, err)
	}
	figures := s.calc.Figures(*tour)
	return &figures, nil
}
