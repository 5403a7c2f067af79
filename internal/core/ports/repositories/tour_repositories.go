package repositories

import (
	"context"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// TourReader defines read operations for tour data.
type TourReader interface {
	// FindTourByID retrieves a specific tour by its unique identifier.
	FindTourByID(ctx context.Context, tourID string) (*domain.Tour, error)

	// ListTours retrieves all tours, optionally restricted to a sale-date year.
	// A nil year means all time.
	ListTours(ctx context.Context, year *int) ([]domain.Tour, error)
}

// TourWriter defines write operations for tour data.
type TourWriter interface {
	// SaveTour persists a new tour with its activities and expense lines.
	SaveTour(ctx context.Context, tour domain.Tour) error

	// UpdateTour replaces a tour's mutable fields, activities and expenses.
	UpdateTour(ctx context.Context, tour domain.Tour) error
}

// TourRepositoryFacade combines all tour-related repository interfaces.
type TourRepositoryFacade interface {
	TourReader
	TourWriter
}
