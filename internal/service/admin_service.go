package service

import (
	"context"

	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/repository"
)

// AdminService exposes read-only aggregate records.
type AdminService struct {
	users        repository.UserRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
}

// AdminDependencies bundles repositories for the admin console.
type AdminDependencies struct {
	UserRepo        repository.UserRepository
	JobRepo         repository.JobRepository
	ApplicationRepo repository.ApplicationRepository
}

// AdminOverview is every record the admin console shows.
type AdminOverview struct {
	Users        []domain.UserRecord
	Jobs         []domain.JobRecord
	Applications []domain.ApplicationRecord
}

// NewAdminService constructs the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{users: deps.UserRepo, jobs: deps.JobRepo, applications: deps.ApplicationRepo}
}

func (s *AdminService) ListUsers(ctx context.Context, sess *domain.Session) ([]domain.UserRecord, error) {
	if err := requireRole(sess, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

func (s *AdminService) ListJobs(ctx context.Context, sess *domain.Session) ([]domain.JobRecord, error) {
	if err := requireRole(sess, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.jobs.ListRecords(ctx)
}

func (s *AdminService) ListApplications(ctx context.Context, sess *domain.Session) ([]domain.ApplicationRecord, error) {
	if err := requireRole(sess, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.applications.ListRecords(ctx)
}

// Overview gathers all three record sets.
func (s *AdminService) Overview(ctx context.Context, sess *domain.Session) (*AdminOverview, error) {
	users, err := s.ListUsers(ctx, sess)
	if err != nil {
		return nil, err
	}
	jobs, err := s.ListJobs(ctx, sess)
	if err != nil {
		return nil, err
	}
	apps, err := s.ListApplications(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &AdminOverview{Users: users, Jobs: jobs, Applications: apps}, nil
}
