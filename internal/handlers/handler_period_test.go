package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/dto"
	"github.com/tourops/tour_backoffice_app/internal/handlers"
	"github.com/tourops/tour_backoffice_app/internal/platform/config"
)

// --- Mock PeriodService ---
type MockPeriodService struct {
	mock.Mock
}

var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)

func (m *MockPeriodService) RecalculatePeriods(ctx context.Context, year *int, userID string) (*domain.RecalculationResult, error) {
	args := m.Called(ctx, year, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecalculationResult), args.Error(1)
}

func (m *MockPeriodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodService) ListPeriods(ctx context.Context, year *int) ([]domain.Period, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockPeriodService) YearlySummary(ctx context.Context, year int) (*domain.YearlySummary, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YearlySummary), args.Error(1)
}

func (m *MockPeriodService) DeletePeriod(ctx context.Context, periodID string) error {
	args := m.Called(ctx, periodID)
	return args.Error(0)
}

func (m *MockPeriodService) DeleteYear(ctx context.Context, year int) (*domain.YearDeletionResult, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YearDeletionResult), args.Error(1)
}

// --- Test Suite ---
type PeriodHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockPeriodService *MockPeriodService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *PeriodHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "backoffice-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PeriodHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockPeriodService = new(MockPeriodService)

	cfg := &config.Config{
		JWTSecret:          suite.jwtSecret,
		DefaultCurrency:    "TRY",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		IsProduction:       true, // keeps swagger routes out of the test router
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Period: suite.mockPeriodService,
	})
}

func (suite *PeriodHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- Test Cases ---

func (suite *PeriodHandlerTestSuite) TestRecalculatePeriods_Success() {
	year := 2025
	expected := &domain.RecalculationResult{
		Status:   domain.RecalculationDone,
		Affected: []domain.MonthRef{{Year: 2025, Month: 1}, {Year: 2025, Month: 2}},
	}
	suite.mockPeriodService.On("RecalculatePeriods",
		mock.Anything,
		mock.MatchedBy(func(y *int) bool { return y != nil && *y == year }),
		"user-1",
	).Return(expected, nil).Once()

	body, _ := json.Marshal(dto.RecalculatePeriodsRequest{Year: &year})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/periods/recalculate", body))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RecalculationResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.RecalculationDone, resp.Status)
	suite.Equal(2, resp.Affected)
	suite.Len(resp.Months, 2)
	suite.mockPeriodService.AssertExpectations(suite.T())
}

func (suite *PeriodHandlerTestSuite) TestRecalculatePeriods_EmptyBodyMeansAllTime() {
	suite.mockPeriodService.On("RecalculatePeriods",
		mock.Anything,
		mock.MatchedBy(func(y *int) bool { return y == nil }),
		"user-1",
	).Return(&domain.RecalculationResult{Status: domain.RecalculationDone}, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/periods/recalculate", nil))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPeriodService.AssertExpectations(suite.T())
}

func (suite *PeriodHandlerTestSuite) TestRecalculatePeriods_ConcurrentRunConflicts() {
	suite.mockPeriodService.On("RecalculatePeriods", mock.Anything, mock.Anything, "user-1").
		Return(nil, apperrors.ErrRecalculationRunning).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/periods/recalculate", nil))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *PeriodHandlerTestSuite) TestRecalculatePeriods_RejectsMissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/periods/recalculate", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPeriodService.AssertNotCalled(suite.T(), "RecalculatePeriods", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodHandlerTestSuite) TestGetPeriod_DerivesNetProfit() {
	period := &domain.Period{
		PeriodID: "2025-03",
		Year:     2025,
		Month:    3,
		FinancialIncomeByCurrency: []domain.CurrencyAmount{
			{Currency: "TRY", Amount: decimal.NewFromInt(100)},
		},
		TourIncomeByCurrency: []domain.CurrencyAmount{
			{Currency: "EUR", Amount: decimal.NewFromInt(1000)},
		},
		TourExpensesByCurrency: []domain.CurrencyAmount{
			{Currency: "EUR", Amount: decimal.NewFromInt(300)},
			{Currency: "TRY", Amount: decimal.NewFromInt(40)},
		},
		Status: domain.PeriodActive,
	}
	suite.mockPeriodService.On("GetPeriodByID", mock.Anything, "2025-03").Return(period, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/periods/2025-03", nil))

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.PeriodResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-03", resp.PeriodID)
	// Net profit stays grouped per currency: EUR 700, TRY 60.
	suite.Require().Len(resp.NetProfitByCurrency, 2)
	suite.Equal("EUR", resp.NetProfitByCurrency[0].Currency)
	suite.True(resp.NetProfitByCurrency[0].Amount.Equal(decimal.NewFromInt(700)))
	suite.Equal("TRY", resp.NetProfitByCurrency[1].Currency)
	suite.True(resp.NetProfitByCurrency[1].Amount.Equal(decimal.NewFromInt(60)))
}

func (suite *PeriodHandlerTestSuite) TestGetPeriod_NotFound() {
	suite.mockPeriodService.On("GetPeriodByID", mock.Anything, "1999-01").
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/periods/1999-01", nil))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PeriodHandlerTestSuite) TestListPeriods_InvalidYearParam() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/periods?year=abc", nil))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPeriodService.AssertNotCalled(suite.T(), "ListPeriods", mock.Anything, mock.Anything)
}

func (suite *PeriodHandlerTestSuite) TestDeletePeriod_NoContent() {
	suite.mockPeriodService.On("DeletePeriod", mock.Anything, "2025-01").Return(nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, "/api/v1/periods/2025-01", nil))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockPeriodService.AssertExpectations(suite.T())
}

func (suite *PeriodHandlerTestSuite) TestYearlySummary_Success() {
	summary := &domain.YearlySummary{
		Year: 2025,
		NetProfitByCurrency: []domain.CurrencyAmount{
			{Currency: "EUR", Amount: decimal.NewFromInt(700)},
		},
		MonthCount: 3,
	}
	suite.mockPeriodService.On("YearlySummary", mock.Anything, 2025).Return(summary, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/periods/yearly/2025", nil))

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp domain.YearlySummary
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.MonthCount)
	suite.Require().Len(resp.NetProfitByCurrency, 1)
	suite.True(resp.NetProfitByCurrency[0].Amount.Equal(decimal.NewFromInt(700)))
}

func (suite *PeriodHandlerTestSuite) TestDeleteYear_ReportsPartialFailure() {
	result := &domain.YearDeletionResult{
		Year:    2025,
		Deleted: []domain.MonthRef{{Year: 2025, Month: 1}},
		Failures: []domain.UnitFailure{
			{Unit: domain.MonthRef{Year: 2025, Month: 2}, Error: "row locked"},
		},
	}
	suite.mockPeriodService.On("DeleteYear", mock.Anything, 2025).Return(result, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, "/api/v1/periods/yearly/2025", nil))

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.YearDeletionResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Deleted)
	suite.Require().Len(resp.Failures, 1)
	assert.Equal(suite.T(), 2, resp.Failures[0].Unit.Month)
}

func (suite *PeriodHandlerTestSuite) TestDeleteYear_InvalidYear() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/periods/yearly/%s", "not-a-year"), nil))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestPeriodHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodHandlerTestSuite))
}
