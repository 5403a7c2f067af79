package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository over one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) repositories.RepositoryProvider {
	return repositories.RepositoryProvider{
		TourRepo:           NewPgxTourRepository(pool),
		FinancialEntryRepo: NewPgxFinancialEntryRepository(pool),
		ReservationRepo:    NewPgxReservationRepository(pool),
		PeriodRepo:         NewPgxPeriodRepository(pool),
		DebtRepo:           NewPgxDebtRepository(pool),
		CompanyRepo:        NewPgxCompanyRepository(pool),
	}
}
