package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
)

type PgxReservationRepository struct {
	pool *pgxpool.Pool
}

// NewPgxReservationRepository creates a new repository for reservation data.
func NewPgxReservationRepository(pool *pgxpool.Pool) repositories.ReservationRepositoryFacade {
	return &PgxReservationRepository{pool: pool}
}

const reservationColumns = `
	reservation_id, serial_number, tour_date, pickup_time, destination_id,
	destination_name, customer_name, customer_phone, company_id, total_amount,
	currency, amount_paid, payment_due_date, payment_status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanReservation(row pgx.CollectableRow) (domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ReservationID,
		&res.SerialNumber,
		&res.TourDate,
		&res.PickupTime,
		&res.DestinationID,
		&res.DestinationName,
		&res.CustomerName,
		&res.CustomerPhone,
		&res.CompanyID,
		&res.TotalAmount,
		&res.Currency,
		&res.AmountPaid,
		&res.PaymentDueDate,
		&res.PaymentStatus,
		&res.CreatedAt,
		&res.CreatedBy,
		&res.LastUpdatedAt,
		&res.LastUpdatedBy,
	)
	return res, err
}

// FindReservationByID retrieves a reservation by its unique identifier.
func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_id = $1;`

	rows, err := r.pool.Query(ctx, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservation %s: %w", reservationID, err)
	}
	res, err := pgx.CollectOneRow(rows, scanReservation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reservation by id %s: %w", reservationID, err)
	}
	return &res, nil
}

// ListReservations retrieves reservations ordered by tour date, optionally
// restricted to a tour-date year.
func (r *PgxReservationRepository) ListReservations(ctx context.Context, year *int) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations`
	args := []any{}
	if year != nil {
		query += ` WHERE EXTRACT(YEAR FROM tour_date) = $1`
		args = append(args, *year)
	}
	query += ` ORDER BY tour_date, reservation_id;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	reservations, err := pgx.CollectRows(rows, scanReservation)
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservations: %w", err)
	}
	return reservations, nil
}

// SaveReservation persists a new reservation.
func (r *PgxReservationRepository) SaveReservation(ctx context.Context, res domain.Reservation) error {
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.pool.Exec(ctx, query,
		res.ReservationID,
		res.SerialNumber,
		res.TourDate,
		res.PickupTime,
		res.DestinationID,
		res.DestinationName,
		res.CustomerName,
		res.CustomerPhone,
		res.CompanyID,
		res.TotalAmount,
		res.Currency,
		res.AmountPaid,
		res.PaymentDueDate,
		res.PaymentStatus,
		res.CreatedAt,
		res.CreatedBy,
		res.LastUpdatedAt,
		res.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save reservation %s: %w", res.ReservationID, err)
	}
	return nil
}

// UpdateReservation replaces a reservation's mutable fields.
func (r *PgxReservationRepository) UpdateReservation(ctx context.Context, res domain.Reservation) error {
	query := `
		UPDATE reservations SET
			serial_number = $2,
			tour_date = $3,
			pickup_time = $4,
			destination_id = $5,
			destination_name = $6,
			customer_name = $7,
			customer_phone = $8,
			company_id = $9,
			total_amount = $10,
			currency = $11,
			amount_paid = $12,
			payment_due_date = $13,
			payment_status = $14,
			last_updated_at = $15,
			last_updated_by = $16
		WHERE reservation_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		res.ReservationID,
		res.SerialNumber,
		res.TourDate,
		res.PickupTime,
		res.DestinationID,
		res.DestinationName,
		res.CustomerName,
		res.CustomerPhone,
		res.CompanyID,
		res.TotalAmount,
		res.Currency,
		res.AmountPaid,
		res.PaymentDueDate,
		res.PaymentStatus,
		res.LastUpdatedAt,
		res.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", res.ReservationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
