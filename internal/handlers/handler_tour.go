package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tourops/tour_backoffice_app/internal/apperrors"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/dto"
	"github.com/tourops/tour_backoffice_app/internal/middleware"
)

// tourHandler handles HTTP requests related to tours.
type tourHandler struct {
	tourService portssvc.TourSvcFacade
}

func newTourHandler(ts portssvc.TourSvcFacade) *tourHandler {
	return &tourHandler{tourService: ts}
}

// registerTourRoutes registers routes related to tours.
func registerTourRoutes(rg *gin.RouterGroup, tourService portssvc.TourSvcFacade) {
	h := newTourHandler(tourService)

	tours := rg.Group("/tours")
	{
		tours.POST("", h.createTour)
		tours.GET("", h.listTours)
		tours.GET("/:tourID", h.getTour)
		tours.PUT("/:tourID", h.updateTour)
		tours.GET("/:tourID/figures", h.getTourFigures)
	}
}

// yearQueryParam parses an optional ?year= filter; nil means all time.
func yearQueryParam(c *gin.Context) (*int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return nil, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &year, true
}

// createTour godoc
// @Summary Record a tour sale
// @Tags tours
// @Accept json
// @Produce json
// @Param tour body dto.CreateTourRequest true "Tour details"
// @Success 201 {object} dto.TourResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /tours [post]
func (h *tourHandler) createTour(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTour", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tour, err := h.tourService.CreateTour(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create tour", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tour"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToTourResponse(tour))
}

// listTours godoc
// @Summary List tours
// @Tags tours
// @Produce json
// @Param year query int false "Restrict to a sale-date year"
// @Success 200 {array} dto.TourResponse
// @Security BearerAuth
// @Router /tours [get]
func (h *tourHandler) listTours(c *gin.Context) {
	year, ok := yearQueryParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
		return
	}
	tours, err := h.tourService.ListTours(c.Request.Context(), year)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list tours", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tours"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListTourResponse(tours))
}

// getTour godoc
// @Summary Get a tour by id
// @Tags tours
// @Produce json
// @Param tourID path string true "Tour ID"
// @Success 200 {object} dto.TourResponse
// @Failure 404 {object} map[string]string "Tour not found"
// @Security BearerAuth
// @Router /tours/{tourID} [get]
func (h *tourHandler) getTour(c *gin.Context) {
	tour, err := h.tourService.GetTourByID(c.Request.Context(), c.Param("tourID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get tour", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tour"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTourResponse(tour))
}

// updateTour godoc
// @Summary Update a tour
// @Tags tours
// @Accept json
// @Produce json
// @Param tourID path string true "Tour ID"
// @Param tour body dto.UpdateTourRequest true "Tour details"
// @Success 200 {object} dto.TourResponse
// @Failure 404 {object} map[string]string "Tour not found"
// @Security BearerAuth
// @Router /tours/{tourID} [put]
func (h *tourHandler) updateTour(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTour", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tour, err := h.tourService.UpdateTour(c.Request.Context(), c.Param("tourID"), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
			return
		}
		logger.Error("Failed to update tour", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tour"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTourResponse(tour))
}

// getTourFigures godoc
// @Summary Get a tour's per-currency economics
// @Description Income, expenses, profit, paid-to-date and remaining balance, each grouped by currency
// @Tags tours
// @Produce json
// @Param tourID path string true "Tour ID"
// @Success 200 {object} dto.TourFiguresResponse
// @Failure 404 {object} map[string]string "Tour not found"
// @Security BearerAuth
// @Router /tours/{tourID}/figures [get]
func (h *tourHandler) getTourFigures(c *gin.Context) {
	figures, err := h.tourService.Figures(c.Request.Context(), c.Param("tourID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to compute tour figures", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute tour figures"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTourFiguresResponse(figures))
}
