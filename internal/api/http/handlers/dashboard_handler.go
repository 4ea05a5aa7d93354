package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hireboard/recruitment-service/internal/api/dto"
	"github.com/hireboard/recruitment-service/internal/service"
)

// DashboardHandler renders the caller's role dashboard.
type DashboardHandler struct {
	dashboards *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboards *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Dashboard handles GET /dashboard.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	view, err := h.dashboards.Render(c.UserContext(), sess)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDashboardResponse(view)})
}
