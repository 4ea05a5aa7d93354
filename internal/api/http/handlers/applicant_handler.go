package handlers

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hireboard/recruitment-service/internal/api/dto"
	"github.com/hireboard/recruitment-service/internal/service"
)

// ApplicantHandler serves the job board and application workflow.
type ApplicantHandler struct {
	board          *service.JobBoardService
	maxResumeBytes int
}

// NewApplicantHandler constructs handler.
func NewApplicantHandler(board *service.JobBoardService, maxResumeBytes int) *ApplicantHandler {
	return &ApplicantHandler{board: board, maxResumeBytes: maxResumeBytes}
}

// ListJobs GET /applicant/jobs.
func (h *ApplicantHandler) ListJobs(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	listings, err := h.board.ListJobs(c.UserContext(), sess)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobListingResponses(listings)})
}

// ViewJob GET /applicant/jobs/:id.
func (h *ApplicantHandler) ViewJob(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	jobID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	listing, err := h.board.ViewJob(c.UserContext(), sess, jobID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobListingResponse(*listing)})
}

// BackToJobs DELETE /applicant/selection.
func (h *ApplicantHandler) BackToJobs(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.board.BackToJobs(c.UserContext(), sess); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Apply POST /applicant/jobs/:id/application (multipart form).
func (h *ApplicantHandler) Apply(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	jobID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	input := service.ApplyInput{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		Phone:       c.FormValue("phone"),
		Gender:      c.FormValue("gender"),
		Nationality: c.FormValue("nationality"),
	}
	upload, err := h.readResume(c)
	if err != nil {
		return err
	}
	input.Resume = upload

	app, err := h.board.Apply(c.UserContext(), sess, jobID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewApplicationResponse(app)})
}

// Withdraw DELETE /applicant/jobs/:id/application.
func (h *ApplicantHandler) Withdraw(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	jobID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.board.Withdraw(c.UserContext(), sess, jobID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// readResume returns nil when no file was attached, leaving the missing
// field to validation. At most one byte past the cap is read so oversized
// uploads are still rejected.
func (h *ApplicantHandler) readResume(c *fiber.Ctx) (*service.ResumeUpload, error) {
	header, err := c.FormFile("resume")
	if err != nil {
		return nil, nil //nolint:nilerr
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var reader io.Reader = file
	if h.maxResumeBytes > 0 {
		reader = io.LimitReader(file, int64(h.maxResumeBytes)+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return &service.ResumeUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
