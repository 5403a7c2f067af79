package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tourops/tour_backoffice_app/internal/core/ports/services"
	"github.com/tourops/tour_backoffice_app/internal/dto"
	"github.com/tourops/tour_backoffice_app/internal/middleware"
)

// dashboardHandler serves derived, presentation-only views.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

// registerDashboardRoutes registers routes related to the dashboard.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/reservation-groups", h.reservationGroups)
	}
}

// reservationGroups godoc
// @Summary Group upcoming reservations by destination
// @Description Groups are ordered by how soon their tours depart; groups with a departure inside the next three days are flagged urgent
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.ReservationGroupResponse
// @Security BearerAuth
// @Router /dashboard/reservation-groups [get]
func (h *dashboardHandler) reservationGroups(c *gin.Context) {
	groups, err := h.dashboardService.UpcomingReservationGroups(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to group reservations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to group reservations"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationGroupResponses(groups))
}
