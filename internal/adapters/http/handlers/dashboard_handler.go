package handlers

import (
	"nprp-recruiteasy/internal/core/services"
	"nprp-recruiteasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles admin dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns admin dashboard statistics
// @Summary Admin dashboard
// @Description Applicant totals, per-status counts and recent activity
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, "", data)
}
