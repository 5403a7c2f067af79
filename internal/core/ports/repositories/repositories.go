package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TourRepo           TourRepositoryFacade
	FinancialEntryRepo FinancialEntryRepositoryFacade
	ReservationRepo    ReservationRepositoryFacade
	PeriodRepo         PeriodRepositoryFacade
	DebtRepo           DebtRepositoryFacade
	CompanyRepo        CompanyRepositoryFacade
}
