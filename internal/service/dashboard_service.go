package service

import (
	"context"

	"github.com/hireboard/recruitment-service/internal/domain"
	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

// Dashboard renders the landing view for one role.
type Dashboard interface {
	Role() domain.Role
	Render(ctx context.Context, sess *domain.Session) (any, error)
}

// DashboardView is a rendered dashboard tagged with its role.
type DashboardView struct {
	Role     domain.Role
	Username string
	Content  any
}

// ApplicantDashboard is the job board plus the open detail view, if any.
type ApplicantDashboard struct {
	Jobs     []domain.JobListing
	Selected *domain.JobListing
}

// RecruiterDashboard is the caller's jobs plus the open applicant list, if any.
type RecruiterDashboard struct {
	Jobs       []domain.Job
	Applicants *ApplicantReview
}

// DashboardService dispatches to the dashboard registered for the caller's role.
type DashboardService struct {
	byRole map[domain.Role]Dashboard
}

// NewDashboardService registers one dashboard per role.
func NewDashboardService(dashboards ...Dashboard) *DashboardService {
	byRole := make(map[domain.Role]Dashboard, len(dashboards))
	for _, d := range dashboards {
		byRole[d.Role()] = d
	}
	return &DashboardService{byRole: byRole}
}

// Render builds the dashboard for the session's role.
func (s *DashboardService) Render(ctx context.Context, sess *domain.Session) (*DashboardView, error) {
	if sess == nil {
		return nil, apperrors.NewUnauthorized("login required")
	}
	dashboard, ok := s.byRole[sess.Role]
	if !ok {
		return nil, apperrors.NewForbidden("no dashboard for role " + string(sess.Role))
	}
	content, err := dashboard.Render(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &DashboardView{Role: sess.Role, Username: sess.Username, Content: content}, nil
}

type applicantDashboard struct{ board *JobBoardService }

// NewApplicantDashboard renders the job board.
func NewApplicantDashboard(board *JobBoardService) Dashboard {
	return applicantDashboard{board: board}
}

func (d applicantDashboard) Role() domain.Role { return domain.RoleApplicant }

func (d applicantDashboard) Render(ctx context.Context, sess *domain.Session) (any, error) {
	jobs, err := d.board.ListJobs(ctx, sess)
	if err != nil {
		return nil, err
	}
	selected, err := d.board.SelectedJob(ctx, sess)
	if err != nil {
		return nil, err
	}
	return ApplicantDashboard{Jobs: jobs, Selected: selected}, nil
}

type recruiterDashboard struct{ recruiter *RecruiterService }

// NewRecruiterDashboard renders the recruiter console.
func NewRecruiterDashboard(recruiter *RecruiterService) Dashboard {
	return recruiterDashboard{recruiter: recruiter}
}

func (d recruiterDashboard) Role() domain.Role { return domain.RoleRecruiter }

func (d recruiterDashboard) Render(ctx context.Context, sess *domain.Session) (any, error) {
	jobs, err := d.recruiter.ListMyJobs(ctx, sess)
	if err != nil {
		return nil, err
	}
	review, err := d.recruiter.OpenReview(ctx, sess)
	if err != nil {
		return nil, err
	}
	return RecruiterDashboard{Jobs: jobs, Applicants: review}, nil
}

type adminDashboard struct{ admin *AdminService }

// NewAdminDashboard renders the aggregate records.
func NewAdminDashboard(admin *AdminService) Dashboard {
	return adminDashboard{admin: admin}
}

func (d adminDashboard) Role() domain.Role { return domain.RoleAdmin }

func (d adminDashboard) Render(ctx context.Context, sess *domain.Session) (any, error) {
	return d.admin.Overview(ctx, sess)
}
