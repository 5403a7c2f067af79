package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/core/services"
)

// --- Mock DebtRepository ---
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindDebtByReservationID(ctx context.Context, reservationID string) (*domain.Debt, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListDebts(ctx context.Context, companyID *string) ([]domain.Debt, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) UpsertDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) DeleteDebt(ctx context.Context, debtID string) error {
	args := m.Called(ctx, debtID)
	return args.Error(0)
}

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpsertCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// --- Test Suite ---
type ReceivableServiceTestSuite struct {
	suite.Suite
	mockDebts     *MockDebtRepository
	mockCompanies *MockCompanyRepository
	service       portssvc.ReceivableSvcFacade
	clock         time.Time
}

func (suite *ReceivableServiceTestSuite) SetupTest() {
	suite.mockDebts = new(MockDebtRepository)
	suite.mockCompanies = new(MockCompanyRepository)
	suite.clock = time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewReceivableService(
		suite.mockDebts,
		suite.mockCompanies,
		"TRY",
		services.WithReceivableClock(func() time.Time { return suite.clock }),
	)
}

func (suite *ReceivableServiceTestSuite) agencyReservation() domain.Reservation {
	due := day(2025, time.May, 1)
	return domain.Reservation{
		ReservationID:  "res-1",
		CompanyID:      "comp-1",
		TourDate:       day(2025, time.April, 20),
		TotalAmount:    dec("1500"),
		Currency:       "EUR",
		AmountPaid:     dec("500"),
		PaymentDueDate: &due,
	}
}

func (suite *ReceivableServiceTestSuite) TestSyncReservation_CreatesDebt() {
	ctx := context.Background()
	reservation := suite.agencyReservation()
	company := &domain.Company{CompanyID: "comp-1", Name: "Sunshine Tours"}

	suite.mockDebts.On("FindDebtByReservationID", ctx, "res-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanies.On("FindCompanyByID", ctx, "comp-1").Return(company, nil).Once()
	suite.mockDebts.On("UpsertDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.ReservationID == "res-1" &&
			d.CompanyID == "comp-1" &&
			d.CompanyName == "Sunshine Tours" &&
			d.Amount.Equal(dec("1500")) &&
			d.PaidAmount.Equal(dec("500")) &&
			d.Currency == "EUR" &&
			d.DueDate.Equal(day(2025, time.May, 1)) &&
			d.Status == domain.DebtPartiallyPaid
	})).Return(nil).Once()

	debt, err := suite.service.SyncReservation(ctx, reservation, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.NotEmpty(debt.DebtID)
	suite.Equal("user-1", debt.CreatedBy)
	suite.mockDebts.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestSyncReservation_UpdatesExistingDebtInPlace() {
	ctx := context.Background()
	reservation := suite.agencyReservation()
	reservation.TotalAmount = dec("2000")
	company := &domain.Company{CompanyID: "comp-1", Name: "Sunshine Tours"}
	existing := &domain.Debt{
		DebtID:        "debt-1",
		CompanyID:     "comp-1",
		CompanyName:   "Sunshine Tours",
		ReservationID: "res-1",
		Amount:        dec("1500"),
		Currency:      "EUR",
		PaidAmount:    dec("1500"),
		Status:        domain.DebtPaid,
	}

	suite.mockDebts.On("FindDebtByReservationID", ctx, "res-1").Return(existing, nil).Once()
	suite.mockCompanies.On("FindCompanyByID", ctx, "comp-1").Return(company, nil).Once()
	suite.mockDebts.On("UpsertDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		// Same debt id over any number of edits, collected amount kept, and the
		// status re-derived from the new total.
		return d.DebtID == "debt-1" &&
			d.Amount.Equal(dec("2000")) &&
			d.PaidAmount.Equal(dec("1500")) &&
			d.Status == domain.DebtPartiallyPaid
	})).Return(nil).Once()

	debt, err := suite.service.SyncReservation(ctx, reservation, "user-2")

	suite.Require().NoError(err)
	suite.Equal("debt-1", debt.DebtID)
	suite.Equal("user-2", debt.LastUpdatedBy)
	suite.mockDebts.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestSyncReservation_SkipsWithoutCompanyOrAmount() {
	ctx := context.Background()

	noCompany := suite.agencyReservation()
	noCompany.CompanyID = ""
	debt, err := suite.service.SyncReservation(ctx, noCompany, "user-1")
	suite.NoError(err)
	suite.Nil(debt)

	zeroAmount := suite.agencyReservation()
	zeroAmount.TotalAmount = dec("0")
	debt, err = suite.service.SyncReservation(ctx, zeroAmount, "user-1")
	suite.NoError(err)
	suite.Nil(debt)

	suite.mockDebts.AssertNotCalled(suite.T(), "UpsertDebt", mock.Anything, mock.Anything)
}

func (suite *ReceivableServiceTestSuite) TestSyncReservation_RecreatesDeletedCompany() {
	ctx := context.Background()
	reservation := suite.agencyReservation()
	existing := &domain.Debt{
		DebtID:        "debt-1",
		CompanyID:     "comp-1",
		CompanyName:   "Sunshine Tours",
		ReservationID: "res-1",
		Amount:        dec("1500"),
		Currency:      "EUR",
	}

	suite.mockDebts.On("FindDebtByReservationID", ctx, "res-1").Return(existing, nil).Once()
	suite.mockCompanies.On("FindCompanyByID", ctx, "comp-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanies.On("UpsertCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.CompanyID == "comp-1" &&
			c.Name == "Sunshine Tours" &&
			c.Category == domain.CompanyCategoryAgency &&
			c.Notes != ""
	})).Return(nil).Once()
	suite.mockDebts.On("UpsertDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	debt, err := suite.service.SyncReservation(ctx, reservation, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.mockCompanies.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestSyncReservation_DefaultsCurrencyAndDueDate() {
	ctx := context.Background()
	reservation := suite.agencyReservation()
	reservation.Currency = ""
	reservation.PaymentDueDate = nil
	company := &domain.Company{CompanyID: "comp-1", Name: "Sunshine Tours"}

	suite.mockDebts.On("FindDebtByReservationID", ctx, "res-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanies.On("FindCompanyByID", ctx, "comp-1").Return(company, nil).Once()
	suite.mockDebts.On("UpsertDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.Currency == "TRY" && d.DueDate.Equal(reservation.TourDate)
	})).Return(nil).Once()

	_, err := suite.service.SyncReservation(ctx, reservation, "user-1")

	suite.Require().NoError(err)
	suite.mockDebts.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestRecordPayment_AdvancesStatus() {
	ctx := context.Background()
	debt := &domain.Debt{
		DebtID:     "debt-1",
		Amount:     dec("1000"),
		Currency:   "EUR",
		PaidAmount: dec("400"),
		Status:     domain.DebtPartiallyPaid,
	}

	suite.mockDebts.On("FindDebtByID", ctx, "debt-1").Return(debt, nil).Once()
	suite.mockDebts.On("UpsertDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.PaidAmount.Equal(dec("1000")) && d.Status == domain.DebtPaid
	})).Return(nil).Once()

	updated, err := suite.service.RecordPayment(ctx, "debt-1", dec("600"), "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.DebtPaid, updated.Status)
	suite.mockDebts.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestRecordPayment_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.RecordPayment(ctx, "debt-1", dec("0"), "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RecordPayment(ctx, "debt-1", dec("-5"), "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockDebts.AssertNotCalled(suite.T(), "FindDebtByID", mock.Anything, mock.Anything)
}

func (suite *ReceivableServiceTestSuite) TestDeleteDebt_ProceedsWhenRepairFails() {
	ctx := context.Background()
	debt := &domain.Debt{DebtID: "debt-1", CompanyID: "comp-1", CompanyName: "Sunshine Tours"}

	suite.mockDebts.On("FindDebtByID", ctx, "debt-1").Return(debt, nil).Once()
	suite.mockCompanies.On("FindCompanyByID", ctx, "comp-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanies.On("UpsertCompany", ctx, mock.AnythingOfType("domain.Company")).Return(assert.AnError).Once()
	suite.mockDebts.On("DeleteDebt", ctx, "debt-1").Return(nil).Once()

	err := suite.service.DeleteDebt(ctx, "debt-1")

	suite.Require().NoError(err)
	suite.mockDebts.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestOutstandingTotals_DropsSettledBuckets() {
	ctx := context.Background()
	debts := []domain.Debt{
		{Amount: dec("1000"), PaidAmount: dec("400"), Currency: "EUR"},
		{Amount: dec("500"), PaidAmount: dec("500"), Currency: "TRY"},
		{Amount: dec("200"), PaidAmount: dec("300"), Currency: "USD"},
		{Amount: dec("100"), PaidAmount: dec("0"), Currency: "EUR"},
	}

	suite.mockDebts.On("ListDebts", ctx, (*string)(nil)).Return(debts, nil).Once()

	totals, err := suite.service.OutstandingTotals(ctx, nil)

	suite.Require().NoError(err)
	suite.Require().Len(totals, 1)
	suite.Equal("EUR", totals[0].Currency)
	suite.True(totals[0].Amount.Equal(dec("700")))
}

func TestReceivableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceivableServiceTestSuite))
}
