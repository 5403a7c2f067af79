package services

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/dto"
	"github.com/tourops/tour_backoffice_app/internal/utils/accounting"
)

// TourReaderSvc defines read operations for tours.
type TourReaderSvc interface {
	GetTourByID(ctx context.Context, tourID string) (*domain.Tour, error)
	ListTours(ctx context.Context, year *int) ([]domain.Tour, error)

	// Figures computes the per-currency income/expense/profit/paid/remaining
	// breakdowns for one tour.
	Figures(ctx context.Context, tourID string) (*accounting.TourFigures, error)
}

// TourWriterSvc defines write operations for tours.
type TourWriterSvc interface {
	CreateTour(ctx context.Context, req dto.CreateTourRequest, creatorUserID string) (*domain.Tour, error)
	UpdateTour(ctx context.Context, tourID string, req dto.UpdateTourRequest, userID string) (*domain.Tour, error)
}

// TourSvcFacade combines all tour service interfaces.
type TourSvcFacade interface {
	TourReaderSvc
	TourWriterSvc
}
