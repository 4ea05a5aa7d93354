package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hireboard/recruitment-service/internal/api/dto"
	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/service"
	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

// RecruiterHandler serves the recruiter console.
type RecruiterHandler struct {
	recruiter *service.RecruiterService
}

// NewRecruiterHandler constructs handler.
func NewRecruiterHandler(recruiter *service.RecruiterService) *RecruiterHandler {
	return &RecruiterHandler{recruiter: recruiter}
}

// PostJob POST /recruiter/jobs.
func (h *RecruiterHandler) PostJob(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	job, err := h.recruiter.PostJob(c.UserContext(), sess, service.JobInput{
		Company:     req.Company,
		Role:        req.Role,
		Description: req.Description,
		Skills:      req.Skills,
		Salary:      req.Salary,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewJobResponse(*job)})
}

// ListJobs GET /recruiter/jobs.
func (h *RecruiterHandler) ListJobs(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	jobs, err := h.recruiter.ListMyJobs(c.UserContext(), sess)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobResponses(jobs)})
}

// DeleteJobs POST /recruiter/jobs/delete.
func (h *RecruiterHandler) DeleteJobs(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req dto.DeleteJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	deleted, err := h.recruiter.DeleteJobs(c.UserContext(), sess, req.JobIDs)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": deleted}})
}

// Applicants GET /recruiter/jobs/:id/applicants?name=.
func (h *RecruiterHandler) Applicants(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	jobID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	review, err := h.recruiter.ReviewApplicants(c.UserContext(), sess, jobID, c.Query("name"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewApplicantReviewResponse(review)})
}

// CloseApplicants DELETE /recruiter/selection.
func (h *RecruiterHandler) CloseApplicants(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.recruiter.CloseApplicants(c.UserContext(), sess); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UpdateStatus PATCH /recruiter/applications/:id/status.
func (h *RecruiterHandler) UpdateStatus(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	appID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	app, err := h.recruiter.UpdateStatus(c.UserContext(), sess, appID, domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewApplicationResponse(app)})
}
