package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Liveness probe
// @Description Returns a static greeting used by deployment health checks
// @Tags misc
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func GetHome(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
