package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/core/services"
	"github.com/tourops/tour_backoffice_app/internal/dto"
)

// --- Mock ReceivableService ---
type MockReceivableService struct {
	mock.Mock
}

func (m *MockReceivableService) SyncReservation(ctx context.Context, reservation domain.Reservation, userID string) (*domain.Debt, error) {
	args := m.Called(ctx, reservation, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockReceivableService) GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockReceivableService) ListDebts(ctx context.Context, companyID *string) ([]domain.Debt, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockReceivableService) RecordPayment(ctx context.Context, debtID string, amount decimal.Decimal, userID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID, amount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockReceivableService) DeleteDebt(ctx context.Context, debtID string) error {
	args := m.Called(ctx, debtID)
	return args.Error(0)
}

func (m *MockReceivableService) OutstandingTotals(ctx context.Context, companyID *string) ([]domain.CurrencyAmount, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyAmount), args.Error(1)
}

// --- Test Suite ---
type ReservationServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockReservationRepository
	mockReceivable *MockReceivableService
	service        portssvc.ReservationSvcFacade
}

func (suite *ReservationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReservationRepository)
	suite.mockReceivable = new(MockReceivableService)
	suite.service = services.NewReservationService(suite.mockRepo, suite.mockReceivable, "TRY")
}

func (suite *ReservationServiceTestSuite) request() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		SerialNumber:    "SN-100",
		TourDate:        day(2025, time.July, 3),
		DestinationID:   "dest-1",
		DestinationName: "Cappadocia",
		CustomerName:    "Ada",
		CompanyID:       "comp-1",
		TotalAmount:     dec("900"),
		Currency:        "EUR",
		AmountPaid:      dec("300"),
	}
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_SavesAndSyncs() {
	ctx := context.Background()
	debt := &domain.Debt{DebtID: "debt-1", ReservationID: "whatever", Amount: dec("900"), Currency: "EUR"}

	suite.mockRepo.On("SaveReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.SerialNumber == "SN-100" &&
			r.PaymentStatus == domain.ReservationPartiallyPaid &&
			r.ReservationID != ""
	})).Return(nil).Once()
	suite.mockReceivable.On("SyncReservation", ctx, mock.AnythingOfType("domain.Reservation"), "user-1").
		Return(debt, nil).Once()

	result, err := suite.service.CreateReservation(ctx, suite.request(), "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Empty(result.SyncWarning)
	suite.Require().NotNil(result.Debt)
	suite.Equal("debt-1", result.Debt.DebtID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockReceivable.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_SyncFailureIsWarningNotError() {
	ctx := context.Background()

	suite.mockRepo.On("SaveReservation", ctx, mock.AnythingOfType("domain.Reservation")).Return(nil).Once()
	suite.mockReceivable.On("SyncReservation", ctx, mock.AnythingOfType("domain.Reservation"), "user-1").
		Return(nil, assert.AnError).Once()

	result, err := suite.service.CreateReservation(ctx, suite.request(), "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.NotEmpty(result.SyncWarning)
	suite.Nil(result.Debt)
	suite.Equal("SN-100", result.Reservation.SerialNumber)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_SaveErrorFails() {
	ctx := context.Background()

	suite.mockRepo.On("SaveReservation", ctx, mock.AnythingOfType("domain.Reservation")).Return(assert.AnError).Once()

	result, err := suite.service.CreateReservation(ctx, suite.request(), "user-1")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.mockReceivable.AssertNotCalled(suite.T(), "SyncReservation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestUpdateReservation_ReSyncsLedger() {
	ctx := context.Background()
	existing := &domain.Reservation{
		ReservationID: "res-1",
		AuditFields: domain.AuditFields{
			CreatedAt: day(2025, time.June, 1),
			CreatedBy: "user-0",
		},
	}
	debt := &domain.Debt{DebtID: "debt-1"}

	suite.mockRepo.On("FindReservationByID", ctx, "res-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		// Identity and creation audit survive the edit.
		return r.ReservationID == "res-1" && r.CreatedBy == "user-0" && r.LastUpdatedBy == "user-2"
	})).Return(nil).Once()
	suite.mockReceivable.On("SyncReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.ReservationID == "res-1"
	}), "user-2").Return(debt, nil).Once()

	result, err := suite.service.UpdateReservation(ctx, "res-1", suite.request(), "user-2")

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Debt)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockReceivable.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestUpdateReservation_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindReservationByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.UpdateReservation(ctx, "missing", suite.request(), "user-1")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_DerivesPaidStatus() {
	ctx := context.Background()
	req := suite.request()
	req.AmountPaid = dec("900")

	suite.mockRepo.On("SaveReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.PaymentStatus == domain.ReservationPaid
	})).Return(nil).Once()
	suite.mockReceivable.On("SyncReservation", ctx, mock.AnythingOfType("domain.Reservation"), "user-1").
		Return(nil, nil).Once()

	result, err := suite.service.CreateReservation(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationPaid, result.Reservation.PaymentStatus)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}
