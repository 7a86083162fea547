package handlers

import (
	"net/http"

	apierrors "github.com/asset-management-api/internal/errors"
	"github.com/asset-management-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate statistics view.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the total asset value, the per-type counts and the
// per-department cost rollup in one response.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	data, err := h.dashboardService.GetDashboard()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute dashboard statistics")
		return
	}

	c.JSON(http.StatusOK, data)
}
