// Package memory is an in-process storage backend with the same constraints
// as the Postgres schema: unique usernames, one application per job and
// applicant, foreign keys, and atomic job deletion.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/repository"
)

// Store holds all tables behind one lock.
type Store struct {
	mu     sync.RWMutex
	now    func() time.Time
	nextID map[string]int64

	users        map[int64]domain.User
	jobs         map[int64]domain.Job
	applications map[int64]domain.Application
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		now:          time.Now,
		nextID:       map[string]int64{},
		users:        map[int64]domain.User{},
		jobs:         map[int64]domain.Job{},
		applications: map[int64]domain.Application{},
	}
}

// Users returns the account repository view.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Jobs returns the job repository view.
func (s *Store) Jobs() repository.JobRepository { return &jobRepo{s} }

// Applications returns the application repository view.
func (s *Store) Applications() repository.ApplicationRepository { return &applicationRepo{s} }

func (s *Store) allocID(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == user.Username {
			return fmt.Errorf("%w: username %q", repository.ErrDuplicate, user.Username)
		}
	}
	user.ID = r.s.allocID("users")
	user.CreatedAt = r.s.now()
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *userRepo) List(_ context.Context) ([]domain.UserRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]domain.UserRecord, 0, len(r.s.users))
	for _, user := range r.s.users {
		result = append(result, domain.UserRecord{ID: user.ID, Username: user.Username, Role: user.Role})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type jobRepo struct{ s *Store }

func (r *jobRepo) Create(_ context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[job.RecruiterID]; !ok {
		return fmt.Errorf("%w: recruiter %d", repository.ErrMissingReference, job.RecruiterID)
	}
	job.ID = r.s.allocID("jobs")
	job.CreatedAt = r.s.now()
	r.s.jobs[job.ID] = *job
	return nil
}

func (r *jobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	job, ok := r.s.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &job, nil
}

func (r *jobRepo) ListByRecruiter(_ context.Context, recruiterID int64) ([]domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.Job{}
	for _, job := range r.s.sortedJobs() {
		if job.RecruiterID == recruiterID {
			result = append(result, job)
		}
	}
	return result, nil
}

func (r *jobRepo) ListForApplicant(_ context.Context, applicantID int64) ([]domain.JobListing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	statuses := map[int64]domain.ApplicationStatus{}
	for _, app := range r.s.applications {
		if app.ApplicantID == applicantID {
			statuses[app.JobID] = app.Status
		}
	}
	jobs := r.s.sortedJobs()
	result := make([]domain.JobListing, 0, len(jobs))
	for _, job := range jobs {
		listing := domain.JobListing{Job: job}
		if status, ok := statuses[job.ID]; ok {
			st := status
			listing.Status = &st
		}
		result = append(result, listing)
	}
	return result, nil
}

func (r *jobRepo) DeleteOwned(_ context.Context, recruiterID int64, ids []int64) (int, []int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := map[int64]struct{}{}
	var targets, missing []int64
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		job, ok := r.s.jobs[id]
		if !ok || job.RecruiterID != recruiterID {
			missing = append(missing, id)
			continue
		}
		targets = append(targets, id)
	}
	if len(missing) > 0 {
		return 0, missing, nil
	}

	for appID, app := range r.s.applications {
		if _, ok := seen[app.JobID]; ok {
			delete(r.s.applications, appID)
		}
	}
	for _, id := range targets {
		delete(r.s.jobs, id)
	}
	return len(targets), nil, nil
}

func (r *jobRepo) ListRecords(_ context.Context) ([]domain.JobRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	jobs := r.s.sortedJobs()
	result := make([]domain.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		recruiter, ok := r.s.users[job.RecruiterID]
		if !ok {
			continue
		}
		result = append(result, domain.JobRecord{
			ID:          job.ID,
			Recruiter:   recruiter.Username,
			Company:     job.Company,
			Title:       job.Role,
			Description: job.Description,
			CreatedAt:   job.CreatedAt,
		})
	}
	return result, nil
}

func (s *Store) sortedJobs() []domain.Job {
	jobs := make([]domain.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	return jobs
}

func (s *Store) sortedApplications() []domain.Application {
	apps := make([]domain.Application, 0, len(s.applications))
	for _, app := range s.applications {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps
}

type applicationRepo struct{ s *Store }

func (r *applicationRepo) Create(_ context.Context, app *domain.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.jobs[app.JobID]; !ok {
		return fmt.Errorf("%w: job %d", repository.ErrMissingReference, app.JobID)
	}
	if _, ok := r.s.users[app.ApplicantID]; !ok {
		return fmt.Errorf("%w: applicant %d", repository.ErrMissingReference, app.ApplicantID)
	}
	for _, existing := range r.s.applications {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return fmt.Errorf("%w: job %d applicant %d", repository.ErrDuplicate, app.JobID, app.ApplicantID)
		}
	}
	if app.Status == "" {
		app.Status = domain.StatusPending
	}
	if !app.Status.Valid() {
		return fmt.Errorf("invalid application status %q", app.Status)
	}
	app.ID = r.s.allocID("applications")
	app.AppliedAt = r.s.now()
	r.s.applications[app.ID] = *app
	return nil
}

func (r *applicationRepo) GetByID(_ context.Context, id int64) (*domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	app, ok := r.s.applications[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &app, nil
}

func (r *applicationRepo) GetByJobAndApplicant(_ context.Context, jobID, applicantID int64) (*domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, app := range r.s.applications {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			a := app
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *applicationRepo) DeleteByJobAndApplicant(_ context.Context, jobID, applicantID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, app := range r.s.applications {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			delete(r.s.applications, id)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *applicationRepo) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid application status %q", status)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	app, ok := r.s.applications[id]
	if !ok {
		return pgx.ErrNoRows
	}
	app.Status = status
	r.s.applications[id] = app
	return nil
}

func (r *applicationRepo) ListApplicantsByJob(_ context.Context, jobID int64) ([]domain.ApplicantRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.ApplicantRecord{}
	for _, app := range r.s.sortedApplications() {
		if app.JobID != jobID {
			continue
		}
		user, ok := r.s.users[app.ApplicantID]
		if !ok {
			continue
		}
		result = append(result, domain.ApplicantRecord{
			ApplicationID: app.ID,
			Username:      user.Username,
			Name:          app.Name,
			Email:         app.Email,
			Phone:         app.Phone,
			Gender:        app.Gender,
			Nationality:   app.Nationality,
			Status:        app.Status,
			ResumeText:    app.ResumeText,
			AppliedAt:     app.AppliedAt,
		})
	}
	return result, nil
}

func (r *applicationRepo) CountByJob(_ context.Context, jobID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	count := 0
	for _, app := range r.s.applications {
		if app.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func (r *applicationRepo) ListRecords(_ context.Context) ([]domain.ApplicationRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.ApplicationRecord{}
	for _, app := range r.s.sortedApplications() {
		user, okUser := r.s.users[app.ApplicantID]
		job, okJob := r.s.jobs[app.JobID]
		if !okUser || !okJob {
			continue
		}
		result = append(result, domain.ApplicationRecord{
			ID:        app.ID,
			Applicant: user.Username,
			JobTitle:  job.Role,
			Status:    app.Status,
			AppliedAt: app.AppliedAt,
		})
	}
	return result, nil
}
