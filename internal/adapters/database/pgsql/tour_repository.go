package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
)

type PgxTourRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTourRepository creates a new repository for tour data.
func NewPgxTourRepository(pool *pgxpool.Pool) repositories.TourRepositoryFacade {
	return &PgxTourRepository{pool: pool}
}

const tourColumns = `
	tour_id, destination, sale_date, end_date, currency, total_price,
	participant_count, activities, expenses, payment_status,
	partial_payment_amount, partial_payment_currency,
	created_at, created_by, last_updated_at, last_updated_by
`

// scanTour scans one tour row, unmarshalling the JSONB activity and expense
// line collections.
func scanTour(row pgx.CollectableRow) (domain.Tour, error) {
	var (
		tour          domain.Tour
		activitiesRaw []byte
		expensesRaw   []byte
	)
	err := row.Scan(
		&tour.TourID,
		&tour.Destination,
		&tour.SaleDate,
		&tour.EndDate,
		&tour.Currency,
		&tour.TotalPrice,
		&tour.ParticipantCount,
		&activitiesRaw,
		&expensesRaw,
		&tour.PaymentStatus,
		&tour.PartialPaymentAmount,
		&tour.PartialPaymentCurrency,
		&tour.CreatedAt,
		&tour.CreatedBy,
		&tour.LastUpdatedAt,
		&tour.LastUpdatedBy,
	)
	if err != nil {
		return domain.Tour{}, err
	}
	if len(activitiesRaw) > 0 {
		if err := json.Unmarshal(activitiesRaw, &tour.Activities); err != nil {
			return domain.Tour{}, fmt.Errorf("failed to unmarshal activities for tour %s: %w", tour.TourID, err)
		}
	}
	if len(expensesRaw) > 0 {
		if err := json.Unmarshal(expensesRaw, &tour.Expenses); err != nil {
			return domain.Tour{}, fmt.Errorf("failed to unmarshal expenses for tour %s: %w", tour.TourID, err)
		}
	}
	return tour, nil
}

// FindTourByID retrieves a tour by its unique identifier.
func (r *PgxTourRepository) FindTourByID(ctx context.Context, tourID string) (*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE tour_id = $1;`

	rows, err := r.pool.Query(ctx, query, tourID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tour %s: %w", tourID, err)
	}
	tour, err := pgx.CollectOneRow(rows, scanTour)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tour by id %s: %w", tourID, err)
	}
	return &tour, nil
}

// ListTours retrieves tours ordered by sale date, optionally restricted to a
// sale-date year.
func (r *PgxTourRepository) ListTours(ctx context.Context, year *int) ([]domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours`
	args := []any{}
	if year != nil {
		query += ` WHERE EXTRACT(YEAR FROM sale_date) = $1`
		args = append(args, *year)
	}
	query += ` ORDER BY sale_date, tour_id;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tours: %w", err)
	}
	defer rows.Close()

	tours, err := pgx.CollectRows(rows, scanTour)
	if err != nil {
		return nil, fmt.Errorf("failed to scan tours: %w", err)
	}
	return tours, nil
}

// SaveTour inserts a new tour with its activities and expense lines.
func (r *PgxTourRepository) SaveTour(ctx context.Context, tour domain.Tour) error {
	activitiesRaw, expensesRaw, err := marshalTourLines(tour)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tours (` + tourColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = r.pool.Exec(ctx, query,
		tour.TourID,
		tour.Destination,
		tour.SaleDate,
		tour.EndDate,
		tour.Currency,
		tour.TotalPrice,
		tour.ParticipantCount,
		activitiesRaw,
		expensesRaw,
		tour.PaymentStatus,
		tour.PartialPaymentAmount,
		tour.PartialPaymentCurrency,
		tour.CreatedAt,
		tour.CreatedBy,
		tour.LastUpdatedAt,
		tour.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tour %s: %w", tour.TourID, err)
	}
	return nil
}

// UpdateTour replaces a tour's mutable fields, activities and expenses.
func (r *PgxTourRepository) UpdateTour(ctx context.Context, tour domain.Tour) error {
	activitiesRaw, expensesRaw, err := marshalTourLines(tour)
	if err != nil {
		return err
	}

	query := `
		UPDATE tours SET
			destination = $2,
			sale_date = $3,
			end_date = $4,
			currency = $5,
			total_price = $6,
			participant_count = $7,
			activities = $8,
			expenses = $9,
			payment_status = $10,
			partial_payment_amount = $11,
			partial_payment_currency = $12,
			last_updated_at = $13,
			last_updated_by = $14
		WHERE tour_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		tour.TourID,
		tour.Destination,
		tour.SaleDate,
		tour.EndDate,
		tour.Currency,
		tour.TotalPrice,
		tour.ParticipantCount,
		activitiesRaw,
		expensesRaw,
		tour.PaymentStatus,
		tour.PartialPaymentAmount,
		tour.PartialPaymentCurrency,
		tour.LastUpdatedAt,
		tour.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update tour %s: %w", tour.TourID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func marshalTourLines(tour domain.Tour) ([]byte, []byte, error) {
	activitiesRaw, err := json.Marshal(tour.Activities)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal activities for tour %s: %w", tour.TourID, err)
	}
	expensesRaw, err := json.Marshal(tour.Expenses)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal expenses for tour %s: %w", tour.TourID, err)
	}
	return activitiesRaw, expensesRaw, nil
}
