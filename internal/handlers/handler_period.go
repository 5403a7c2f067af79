package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/dto"
	"github.com/tourops/tour_backoffice_app/internal/middleware"
	"github.com/tourops/tour_backoffice_app/internal/utils/money"
)

// periodHandler handles HTTP requests related to monthly aggregates.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func newPeriodHandler(ps portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: ps}
}

// registerPeriodRoutes registers routes related to periods.
func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)

	periods := rg.Group("/periods")
	{
		periods.POST("/recalculate", h.recalculatePeriods)
		periods.GET("", h.listPeriods)
		periods.GET("/:periodID", h.getPeriod)
		periods.DELETE("/:periodID", h.deletePeriod)
		periods.GET("/yearly/:year", h.yearlySummary)
		periods.DELETE("/yearly/:year", h.deleteYear)
	}
}

// netProfitOf derives the per-currency net profit from a period's persisted
// breakdowns: (financial income + tour income) - (company + tour expenses).
func netProfitOf(p *domain.Period) []domain.CurrencyAmount {
	income := money.FromBreakdown(p.FinancialIncomeByCurrency)
	income.Merge(money.FromBreakdown(p.TourIncomeByCurrency))
	expenses := money.FromBreakdown(p.CompanyExpensesByCurrency)
	expenses.Merge(money.FromBreakdown(p.TourExpensesByCurrency))
	return money.Subtract(income, expenses).Sorted()
}

func yearPathParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2200 {
		return 0, false
	}
	return year, true
}

// recalculatePeriods godoc
// @Summary Recompute monthly aggregates from raw records
// @Description Rebuilds every touched month from scratch. Re-running with unchanged source data produces identical rows. Only one run may be in flight at a time.
// @Tags periods
// @Accept json
// @Produce json
// @Param request body dto.RecalculatePeriodsRequest false "Optional year scope"
// @Success 200 {object} dto.RecalculationResultResponse
// @Failure 409 {object} map[string]string "A recalculation is already running"
// @Security BearerAuth
// @Router /periods/recalculate [post]
func (h *periodHandler) recalculatePeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecalculatePeriodsRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		logger.Warn("Failed to bind JSON for RecalculatePeriods", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.periodService.RecalculatePeriods(c.Request.Context(), req.Year, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecalculationRunning) {
			c.JSON(http.StatusConflict, gin.H{"error": "A recalculation is already running"})
			return
		}
		logger.Error("Failed to recalculate periods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recalculate periods"})
		return
	}
	c.JSON(http.StatusOK, dto.ToRecalculationResultResponse(result))
}

// listPeriods godoc
// @Summary List monthly aggregates
// @Tags periods
// @Produce json
// @Param year query int false "Restrict to one year"
// @Success 200 {array} dto.PeriodResponse
// @Security BearerAuth
// @Router /periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	year, ok := yearQueryParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
		return
	}
	periods, err := h.periodService.ListPeriods(c.Request.Context(), year)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list periods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list periods"})
		return
	}
	res := make([]dto.PeriodResponse, len(periods))
	for i := range periods {
		res[i] = dto.ToPeriodResponse(&periods[i], netProfitOf(&periods[i]))
	}
	c.JSON(http.StatusOK, res)
}

// getPeriod godoc
// @Summary Get one monthly aggregate
// @Tags periods
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Security BearerAuth
// @Router /periods/{periodID} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	period, err := h.periodService.GetPeriodByID(c.Request.Context(), c.Param("periodID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get period", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve period"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period, netProfitOf(period)))
}

// deletePeriod godoc
// @Summary Delete one monthly aggregate
// @Description Removes a derived row only; raw records are untouched and the row reappears on the next recalculation
// @Tags periods
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Period not found"
// @Security BearerAuth
// @Router /periods/{periodID} [delete]
func (h *periodHandler) deletePeriod(c *gin.Context) {
	if err := h.periodService.DeletePeriod(c.Request.Context(), c.Param("periodID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete period", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete period"})
		return
	}
	c.Status(http.StatusNoContent)
}

// yearlySummary godoc
// @Summary Fold one year's monthly aggregates into a yearly view
// @Tags periods
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} domain.YearlySummary
// @Security BearerAuth
// @Router /periods/yearly/{year} [get]
func (h *periodHandler) yearlySummary(c *gin.Context) {
	year, ok := yearPathParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
		return
	}
	summary, err := h.periodService.YearlySummary(c.Request.Context(), year)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build yearly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build yearly summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// deleteYear godoc
// @Summary Delete every monthly aggregate of a year
// @Description Deletes month by month and reports which months succeeded and which failed; failed rows stay in place for a retry
// @Tags periods
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} dto.YearDeletionResultResponse
// @Security BearerAuth
// @Router /periods/yearly/{year} [delete]
func (h *periodHandler) deleteYear(c *gin.Context) {
	year, ok := yearPathParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
		return
	}
	result, err := h.periodService.DeleteYear(c.Request.Context(), year)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete year", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete year"})
		return
	}
	c.JSON(http.StatusOK, dto.ToYearDeletionResultResponse(result))
}
