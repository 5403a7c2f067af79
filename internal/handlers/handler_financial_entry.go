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

// financialEntryHandler handles HTTP requests related to manual ledger lines.
type financialEntryHandler struct {
	entryService portssvc.FinancialEntrySvcFacade
}

func newFinancialEntryHandler(es portssvc.FinancialEntrySvcFacade) *financialEntryHandler {
	return &financialEntryHandler{entryService: es}
}

// registerFinancialEntryRoutes registers routes related to financial entries.
func registerFinancialEntryRoutes(rg *gin.RouterGroup, entryService portssvc.FinancialEntrySvcFacade) {
	h := newFinancialEntryHandler(entryService)

	entries := rg.Group("/financial-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PUT("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Record a manual ledger line
// @Tags financial-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateFinancialEntryRequest true "Entry details"
// @Success 201 {object} dto.FinancialEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /financial-entries [post]
func (h *financialEntryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFinancialEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create financial entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create financial entry"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToFinancialEntryResponse(entry))
}

// listEntries godoc
// @Summary List financial entries
// @Tags financial-entries
// @Produce json
// @Param year query int false "Restrict to an entry-date year"
// @Success 200 {array} dto.FinancialEntryResponse
// @Security BearerAuth
// @Router /financial-entries [get]
func (h *financialEntryHandler) listEntries(c *gin.Context) {
	year, ok := yearQueryParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
		return
	}
	entries, err := h.entryService.ListEntries(c.Request.Context(), year)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list financial entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list financial entries"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListFinancialEntryResponse(entries))
}

// getEntry godoc
// @Summary Get a financial entry by id
// @Tags financial-entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.FinancialEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /financial-entries/{entryID} [get]
func (h *financialEntryHandler) getEntry(c *gin.Context) {
	entry, err := h.entryService.GetEntryByID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Financial entry not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get financial entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve financial entry"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a financial entry
// @Tags financial-entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateFinancialEntryRequest true "Entry details"
// @Success 200 {object} dto.FinancialEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /financial-entries/{entryID} [put]
func (h *financialEntryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFinancialEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), c.Param("entryID"), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Financial entry not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update financial entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update financial entry"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a financial entry
// @Tags financial-entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /financial-entries/{entryID} [delete]
func (h *financialEntryHandler) deleteEntry(c *gin.Context) {
	if err := h.entryService.DeleteEntry(c.Request.Context(), c.Param("entryID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Financial entry not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete financial entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete financial entry"})
		return
	}
	c.Status(http.StatusNoContent)
}
