package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hireboard/recruitment-service/internal/api/dto"
	"github.com/hireboard/recruitment-service/internal/service"
)

// AdminHandler serves the read-only admin console.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Users GET /admin/users.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	users, err := h.admin.ListUsers(c.UserContext(), sess)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserRecordResponses(users)})
}

// Jobs GET /admin/jobs.
func (h *AdminHandler) Jobs(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	jobs, err := h.admin.ListJobs(c.UserContext(), sess)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobRecordResponses(jobs)})
}

// Applications GET /admin/applications.
func (h *AdminHandler) Applications(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	apps, err := h.admin.ListApplications(c.UserContext(), sess)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewApplicationRecordResponses(apps)})
}
