package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/events"
	"github.com/hireboard/recruitment-service/internal/repository"
	"github.com/hireboard/recruitment-service/internal/session"
	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

// RecruiterService covers posting jobs and triaging their applicants.
type RecruiterService struct {
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	sessions     session.Store
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// RecruiterDependencies bundles collaborators for the recruiter console.
type RecruiterDependencies struct {
	JobRepo         repository.JobRepository
	ApplicationRepo repository.ApplicationRepository
	Sessions        session.Store
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// NewRecruiterService constructs the service.
func NewRecruiterService(deps RecruiterDependencies) *RecruiterService {
	return &RecruiterService{
		jobs:         deps.JobRepo,
		applications: deps.ApplicationRepo,
		sessions:     deps.Sessions,
		dispatcher:   deps.Dispatcher,
		logger:       deps.Logger,
	}
}

// JobInput is the job posting form. Every field is required.
type JobInput struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
	Salary      string `json:"salary"`
}

// Validate rejects postings with any blank field.
func (in JobInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Company, validation.Required),
		validation.Field(&in.Role, validation.Required),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Skills, validation.Required),
		validation.Field(&in.Salary, validation.Required),
	)
}

// ApplicantReview is the applicant-list view for one job.
type ApplicantReview struct {
	Job                  domain.Job
	Applicants           []domain.ApplicantRecord
	Total                int
	GenderBreakdown      []domain.BreakdownEntry
	NationalityBreakdown []domain.BreakdownEntry
	StatusBreakdown      []domain.BreakdownEntry
	Selected             *domain.ApplicantRecord
}

// PostJob creates a job owned by the caller.
func (s *RecruiterService) PostJob(ctx context.Context, sess *domain.Session, in JobInput) (*domain.Job, error) {
	if err := requireRole(sess, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	in = JobInput{
		Company:     strings.TrimSpace(in.Company),
		Role:        strings.TrimSpace(in.Role),
		Description: strings.TrimSpace(in.Description),
		Skills:      strings.TrimSpace(in.Skills),
		Salary:      strings.TrimSpace(in.Salary),
	}
	if err := in.Validate(); err != nil {
		return nil, apperrors.FromValidation("all job fields are required", err)
	}

	job := &domain.Job{
		RecruiterID: sess.UserID,
		Company:     in.Company,
		Role:        in.Role,
		Description: in.Description,
		Skills:      in.Skills,
		Salary:      in.Salary,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventJobPosted,
		events.Actor{UserID: sess.UserID, Role: sess.Role},
		events.JobPostedPayload{JobID: job.ID, Company: job.Company, Role: job.Role}))
	return job, nil
}

// ListMyJobs returns only the caller's jobs.
func (s *RecruiterService) ListMyJobs(ctx context.Context, sess *domain.Session) ([]domain.Job, error) {
	if err := requireRole(sess, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	return s.jobs.ListByRecruiter(ctx, sess.UserID)
}

// DeleteJobs removes the selected jobs and their applications in one
// transaction. If any id is not one of the caller's jobs nothing is deleted.
func (s *RecruiterService) DeleteJobs(ctx context.Context, sess *domain.Session, jobIDs []int64) (int, error) {
	if err := requireRole(sess, domain.RoleRecruiter); err != nil {
		return 0, err
	}
	if len(jobIDs) == 0 {
		return 0, apperrors.NewValidationError("select at least one job", map[string]any{"job_ids": "cannot be blank"})
	}

	deleted, missing, err := s.jobs.DeleteOwned(ctx, sess.UserID, jobIDs)
	if err != nil {
		return 0, err
	}
	if len(missing) > 0 {
		return 0, apperrors.NewNotFound("job", map[string]any{"job_ids": missing})
	}

	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventJobsDeleted,
		events.Actor{UserID: sess.UserID, Role: sess.Role},
		events.JobsDeletedPayload{JobIDs: jobIDs}))

	if sess.ApplicantsJobID != nil && containsID(jobIDs, *sess.ApplicantsJobID) {
		sess.ApplicantsJobID = nil
		if err := saveSession(ctx, s.sessions, sess); err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}

// ReviewApplicants opens the applicant-list view for one of the caller's
// jobs. A non-empty name selects the first applicant with that name.
func (s *RecruiterService) ReviewApplicants(ctx context.Context, sess *domain.Session, jobID int64, name string) (*ApplicantReview, error) {
	if err := requireRole(sess, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	review, err := s.review(ctx, sess.UserID, jobID, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	sess.ApplicantsJobID = int64Ptr(jobID)
	if err := saveSession(ctx, s.sessions, sess); err != nil {
		return nil, err
	}
	return review, nil
}

// OpenReview returns the applicant list the session points at, or nil when
// none is open or the job is gone.
func (s *RecruiterService) OpenReview(ctx context.Context, sess *domain.Session) (*ApplicantReview, error) {
	if sess == nil || sess.ApplicantsJobID == nil {
		return nil, nil
	}
	review, err := s.review(ctx, sess.UserID, *sess.ApplicantsJobID, "")
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) && (domainErr.Code == "NOT_FOUND" || domainErr.Code == "FORBIDDEN") {
		return nil, nil
	}
	return review, err
}

// CloseApplicants leaves the applicant-list view.
func (s *RecruiterService) CloseApplicants(ctx context.Context, sess *domain.Session) error {
	if err := requireRole(sess, domain.RoleRecruiter); err != nil {
		return err
	}
	sess.ApplicantsJobID = nil
	return saveSession(ctx, s.sessions, sess)
}

// UpdateStatus assigns any of the five statuses to an application on one of
// the caller's jobs. Transitions are unrestricted.
func (s *RecruiterService) UpdateStatus(ctx context.Context, sess *domain.Session, applicationID int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if err := requireRole(sess, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	if err := validation.Validate(status, validation.Required, validation.In(statusValues()...)); err != nil {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": err.Error()})
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application", map[string]any{"application_id": applicationID})
		}
		return nil, err
	}
	if _, err := s.ownedJob(ctx, sess.UserID, app.JobID); err != nil {
		return nil, err
	}

	oldStatus := app.Status
	if err := s.applications.UpdateStatus(ctx, app.ID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application", map[string]any{"application_id": applicationID})
		}
		return nil, err
	}
	app.Status = status

	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventApplicationStatusChanged,
		events.Actor{UserID: sess.UserID, Role: sess.Role},
		events.ApplicationStatusChangedPayload{ApplicationID: app.ID, JobID: app.JobID, OldStatus: oldStatus, NewStatus: status}))
	return app, nil
}

func (s *RecruiterService) review(ctx context.Context, recruiterID, jobID int64, name string) (*ApplicantReview, error) {
	job, err := s.ownedJob(ctx, recruiterID, jobID)
	if err != nil {
		return nil, err
	}
	applicants, err := s.applications.ListApplicantsByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	genders := make([]string, 0, len(applicants))
	nationalities := make([]string, 0, len(applicants))
	statuses := make([]string, 0, len(applicants))
	for _, a := range applicants {
		genders = append(genders, a.Gender)
		nationalities = append(nationalities, a.Nationality)
		statuses = append(statuses, string(a.Status))
	}

	review := &ApplicantReview{
		Job:                  *job,
		Applicants:           applicants,
		Total:                len(applicants),
		GenderBreakdown:      Breakdown(genders),
		NationalityBreakdown: Breakdown(nationalities),
		StatusBreakdown:      Breakdown(statuses),
	}
	if name != "" {
		for i := range applicants {
			if applicants[i].Name == name {
				selected := applicants[i]
				review.Selected = &selected
				break
			}
		}
		if review.Selected == nil {
			return nil, apperrors.NewNotFound("applicant", map[string]any{"name": name, "job_id": jobID})
		}
	}
	return review, nil
}

func (s *RecruiterService) ownedJob(ctx context.Context, recruiterID, jobID int64) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, err
	}
	if job.RecruiterID != recruiterID {
		return nil, apperrors.NewForbidden("job belongs to another recruiter")
	}
	return job, nil
}

// Breakdown counts occurrences of each value, most frequent first and ties
// broken alphabetically.
func Breakdown(values []string) []domain.BreakdownEntry {
	counts := map[string]int{}
	for _, v := range values {
		counts[v]++
	}
	entries := make([]domain.BreakdownEntry, 0, len(counts))
	for v, c := range counts {
		entries = append(entries, domain.BreakdownEntry{Value: v, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})
	return entries
}

func containsID(ids []int64, target int64) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

func statusValues() []interface{} {
	values := make([]interface{}, 0, len(domain.ApplicationStatuses))
	for _, st := range domain.ApplicationStatuses {
		values = append(values, st)
	}
	return values
}
