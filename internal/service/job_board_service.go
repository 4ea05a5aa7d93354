package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/events"
	"github.com/hireboard/recruitment-service/internal/repository"
	"github.com/hireboard/recruitment-service/internal/resume"
	"github.com/hireboard/recruitment-service/internal/session"
	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

// JobBoardService serves the applicant side: browsing, applying, withdrawing.
type JobBoardService struct {
	jobs           repository.JobRepository
	applications   repository.ApplicationRepository
	sessions       session.Store
	dispatcher     events.Dispatcher
	logger         *zap.Logger
	maxResumeBytes int
}

// JobBoardDependencies bundles collaborators for the job board.
type JobBoardDependencies struct {
	JobRepo         repository.JobRepository
	ApplicationRepo repository.ApplicationRepository
	Sessions        session.Store
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
	MaxResumeBytes  int
}

// NewJobBoardService constructs the service.
func NewJobBoardService(deps JobBoardDependencies) *JobBoardService {
	return &JobBoardService{
		jobs:           deps.JobRepo,
		applications:   deps.ApplicationRepo,
		sessions:       deps.Sessions,
		dispatcher:     deps.Dispatcher,
		logger:         deps.Logger,
		maxResumeBytes: deps.MaxResumeBytes,
	}
}

// ResumeUpload is the raw uploaded resume file.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ApplyInput is the application form.
type ApplyInput struct {
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Gender      string        `json:"gender"`
	Nationality string        `json:"nationality"`
	Resume      *ResumeUpload `json:"resume"`
}

func (in *ApplyInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Gender = strings.TrimSpace(in.Gender)
	in.Nationality = strings.TrimSpace(in.Nationality)
}

func (in ApplyInput) validate(maxResumeBytes int) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required),
		validation.Field(&in.Phone, validation.Required),
		validation.Field(&in.Gender, validation.Required, validation.In(genderValues()...)),
		validation.Field(&in.Nationality, validation.Required),
		validation.Field(&in.Resume, validation.By(resumeRule(maxResumeBytes))),
	)
}

func resumeRule(maxBytes int) validation.RuleFunc {
	return func(value interface{}) error {
		upload, _ := value.(*ResumeUpload)
		if upload == nil || len(upload.Data) == 0 {
			return errors.New("cannot be blank")
		}
		if maxBytes > 0 && len(upload.Data) > maxBytes {
			return fmt.Errorf("must not exceed %d bytes", maxBytes)
		}
		if _, err := resume.Detect(upload.Filename, upload.ContentType); err != nil {
			return errors.New("must be a .txt or .pdf file")
		}
		return nil
	}
}

// ListJobs returns every job annotated with the caller's application status.
func (s *JobBoardService) ListJobs(ctx context.Context, sess *domain.Session) ([]domain.JobListing, error) {
	if err := requireRole(sess, domain.RoleApplicant); err != nil {
		return nil, err
	}
	return s.jobs.ListForApplicant(ctx, sess.UserID)
}

// ViewJob opens the detail view for one job.
func (s *JobBoardService) ViewJob(ctx context.Context, sess *domain.Session, jobID int64) (*domain.JobListing, error) {
	if err := requireRole(sess, domain.RoleApplicant); err != nil {
		return nil, err
	}
	listing, err := s.listing(ctx, sess.UserID, jobID)
	if err != nil {
		return nil, err
	}
	sess.SelectedJobID = int64Ptr(jobID)
	if err := saveSession(ctx, s.sessions, sess); err != nil {
		return nil, err
	}
	return listing, nil
}

// SelectedJob returns the job in the detail view, or nil when none is open
// or it has since been deleted.
func (s *JobBoardService) SelectedJob(ctx context.Context, sess *domain.Session) (*domain.JobListing, error) {
	if sess == nil || sess.SelectedJobID == nil {
		return nil, nil
	}
	listing, err := s.listing(ctx, sess.UserID, *sess.SelectedJobID)
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND" {
		return nil, nil
	}
	return listing, err
}

// BackToJobs closes the detail view.
func (s *JobBoardService) BackToJobs(ctx context.Context, sess *domain.Session) error {
	if err := requireRole(sess, domain.RoleApplicant); err != nil {
		return err
	}
	sess.SelectedJobID = nil
	return saveSession(ctx, s.sessions, sess)
}

// Apply submits an application. Nothing is written unless every field and
// the resume are present.
func (s *JobBoardService) Apply(ctx context.Context, sess *domain.Session, jobID int64, in ApplyInput) (*domain.Application, error) {
	if err := requireRole(sess, domain.RoleApplicant); err != nil {
		return nil, err
	}
	in.normalize()
	if err := in.validate(s.maxResumeBytes); err != nil {
		return nil, apperrors.FromValidation("incomplete application", err)
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, err
	}

	text, err := resume.Extract(in.Resume.Filename, in.Resume.ContentType, in.Resume.Data)
	if err != nil {
		return nil, apperrors.NewValidationError("unreadable resume", map[string]any{"resume": err.Error()})
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: sess.UserID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Gender:      in.Gender,
		Nationality: in.Nationality,
		ResumeText:  text,
		Status:      domain.StatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperrors.NewAlreadyApplied(jobID)
		case errors.Is(err, repository.ErrMissingReference):
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventApplicationSubmitted,
		events.Actor{UserID: sess.UserID, Role: sess.Role},
		events.ApplicationPayload{ApplicationID: app.ID, JobID: jobID, ApplicantID: sess.UserID}))

	sess.SelectedJobID = nil
	if err := saveSession(ctx, s.sessions, sess); err != nil {
		s.logger.Warn("session not updated after apply",
			zap.String("session_id", sess.ID),
			zap.Int64("application_id", app.ID),
			zap.Error(err))
	}
	return app, nil
}

// Withdraw deletes the caller's application to a job.
func (s *JobBoardService) Withdraw(ctx context.Context, sess *domain.Session, jobID int64) error {
	if err := requireRole(sess, domain.RoleApplicant); err != nil {
		return err
	}
	if err := s.applications.DeleteByJobAndApplicant(ctx, jobID, sess.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("application", map[string]any{"job_id": jobID})
		}
		return err
	}

	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventApplicationWithdrawn,
		events.Actor{UserID: sess.UserID, Role: sess.Role},
		events.ApplicationPayload{JobID: jobID, ApplicantID: sess.UserID}))

	sess.SelectedJobID = nil
	return saveSession(ctx, s.sessions, sess)
}

func (s *JobBoardService) listing(ctx context.Context, applicantID, jobID int64) (*domain.JobListing, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, err
	}
	listing := &domain.JobListing{Job: *job}
	app, err := s.applications.GetByJobAndApplicant(ctx, jobID, applicantID)
	switch {
	case err == nil:
		status := app.Status
		listing.Status = &status
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, err
	}
	return listing, nil
}

func genderValues() []interface{} {
	values := make([]interface{}, 0, len(domain.Genders))
	for _, g := range domain.Genders {
		values = append(values, g)
	}
	return values
}
