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

// reservationHandler handles HTTP requests related to reservations.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

func newReservationHandler(rs portssvc.ReservationSvcFacade) *reservationHandler {
	return &reservationHandler{reservationService: rs}
}

// registerReservationRoutes registers routes related to reservations.
func registerReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade) {
	h := newReservationHandler(reservationService)

	reservations := rg.Group("/reservations")
	{
		reservations.POST("", h.createReservation)
		reservations.GET("", h.listReservations)
		reservations.GET("/:reservationID", h.getReservation)
		reservations.PUT("/:reservationID", h.updateReservation)
	}
}

// createReservation godoc
// @Summary Record a reservation
// @Description Saves the reservation and best-effort re-syncs the receivable ledger; a sync failure is reported as a warning, not an error
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} dto.ReservationSaveResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReservation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.reservationService.CreateReservation(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create reservation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// listReservations godoc
// @Summary List reservations
// @Tags reservations
// @Produce json
// @Param year query int false "Restrict to a tour-date year"
// @Success 200 {array} dto.ReservationResponse
// @Security BearerAuth
// @Router /reservations [get]
func (h *reservationHandler) listReservations(c *gin.Context) {
	year, ok := yearQueryParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
		return
	}
	reservations, err := h.reservationService.ListReservations(c.Request.Context(), year)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list reservations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListReservationResponse(reservations))
}

// getReservation godoc
// @Summary Get a reservation by id
// @Tags reservations
// @Produce json
// @Param reservationID path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} map[string]string "Reservation not found"
// @Security BearerAuth
// @Router /reservations/{reservationID} [get]
func (h *reservationHandler) getReservation(c *gin.Context) {
	reservation, err := h.reservationService.GetReservationByID(c.Request.Context(), c.Param("reservationID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get reservation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reservation"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// updateReservation godoc
// @Summary Update a reservation
// @Description Saves the reservation and best-effort re-syncs the receivable ledger
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservationID path string true "Reservation ID"
// @Param reservation body dto.UpdateReservationRequest true "Reservation details"
// @Success 200 {object} dto.ReservationSaveResult
// @Failure 404 {object} map[string]string "Reservation not found"
// @Security BearerAuth
// @Router /reservations/{reservationID} [put]
func (h *reservationHandler) updateReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReservation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.reservationService.UpdateReservation(c.Request.Context(), c.Param("reservationID"), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update reservation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
