package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/dto"
	"github.com/tourops/tour_backoffice_app/internal/middleware"
)

// receivableHandler handles HTTP requests for the accounts-receivable ledger.
type receivableHandler struct {
	receivableService portssvc.ReceivableSvcFacade
}

func newReceivableHandler(rs portssvc.ReceivableSvcFacade) *receivableHandler {
	return &receivableHandler{receivableService: rs}
}

// registerReceivableRoutes registers routes related to debts.
func registerReceivableRoutes(rg *gin.RouterGroup, receivableService portssvc.ReceivableSvcFacade) {
	h := newReceivableHandler(receivableService)

	debts := rg.Group("/debts")
	{
		debts.GET("", h.listDebts)
		debts.GET("/outstanding", h.outstandingTotals)
		debts.GET("/:debtID", h.getDebt)
		debts.POST("/:debtID/payments", h.recordPayment)
		debts.DELETE("/:debtID", h.deleteDebt)
	}
}

// companyIDQueryParam parses an optional ?companyID= filter; nil means all.
func companyIDQueryParam(c *gin.Context) *string {
	raw := c.Query("companyID")
	if raw == "" {
		return nil
	}
	return &raw
}

// listDebts godoc
// @Summary List receivable records
// @Tags debts
// @Produce json
// @Param companyID query string false "Restrict to one company"
// @Success 200 {array} dto.DebtResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *receivableHandler) listDebts(c *gin.Context) {
	debts, err := h.receivableService.ListDebts(c.Request.Context(), companyIDQueryParam(c))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list debts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list debts"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListDebtResponse(debts))
}

// outstandingTotals godoc
// @Summary Sum unpaid remainders per currency
// @Description Settled and overpaid debts contribute nothing; currencies are never merged
// @Tags debts
// @Produce json
// @Param companyID query string false "Restrict to one company"
// @Success 200 {object} dto.OutstandingResponse
// @Security BearerAuth
// @Router /debts/outstanding [get]
func (h *receivableHandler) outstandingTotals(c *gin.Context) {
	totals, err := h.receivableService.OutstandingTotals(c.Request.Context(), companyIDQueryParam(c))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to compute outstanding totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute outstanding totals"})
		return
	}
	c.JSON(http.StatusOK, dto.OutstandingResponse{Outstanding: totals})
}

// getDebt godoc
// @Summary Get a receivable record by id
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{debtID} [get]
func (h *receivableHandler) getDebt(c *gin.Context) {
	debt, err := h.receivableService.GetDebtByID(c.Request.Context(), c.Param("debtID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get debt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve debt"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// recordPayment godoc
// @Summary Record a collected payment against a debt
// @Description Adds the amount to the paid total and re-derives the debt status
// @Tags debts
// @Accept json
// @Produce json
// @Param debtID path string true "Debt ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{debtID}/payments [post]
func (h *receivableHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.receivableService.RecordPayment(c.Request.Context(), c.Param("debtID"), req.Amount, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// deleteDebt godoc
// @Summary Delete a receivable record
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{debtID} [delete]
func (h *receivableHandler) deleteDebt(c *gin.Context) {
	if err := h.receivableService.DeleteDebt(c.Request.Context(), c.Param("debtID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete debt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete debt"})
		return
	}
	c.Status(http.StatusNoContent)
}
