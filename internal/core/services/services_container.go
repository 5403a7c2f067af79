package services

import (
	portsrepo "github.com/tourops/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Receivable first: the reservation service depends on it for ledger sync.
	container.Receivable = NewReceivableService(repos.DebtRepo, repos.CompanyRepo, cfg.DefaultCurrency)

	container.Tour = NewTourService(repos.TourRepo, cfg.DefaultCurrency)
	container.FinancialEntry = NewFinancialEntryService(repos.FinancialEntryRepo, cfg.DefaultCurrency)
	container.Reservation = NewReservationService(repos.ReservationRepo, container.Receivable, cfg.DefaultCurrency)
	container.Period = NewPeriodRollupService(
		repos.TourRepo,
		repos.FinancialEntryRepo,
		repos.ReservationRepo,
		repos.PeriodRepo,
		cfg.DefaultCurrency,
	)
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Dashboard = NewDashboardService(repos.ReservationRepo)

	return container
}

// Helper to check interface implementations at compile time.
var (
	_ portssvc.PeriodSvcFacade     = (*periodRollupService)(nil)
	_ portssvc.ReceivableSvcFacade = (*receivableService)(nil)
)
