package dto

import (
	"time"

	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/service"
)

// UserRecordResponse admin row for an account.
type UserRecordResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// JobRecordResponse admin row for a job.
type JobRecordResponse struct {
	ID          int64     `json:"id"`
	Recruiter   string    `json:"recruiter"`
	Company     string    `json:"company"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplicationRecordResponse admin row for an application.
type ApplicationRecordResponse struct {
	ID        int64     `json:"id"`
	Applicant string    `json:"applicant"`
	JobTitle  string    `json:"job_title"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

// AdminOverviewResponse is every admin record set.
type AdminOverviewResponse struct {
	Users        []UserRecordResponse        `json:"users"`
	Jobs         []JobRecordResponse         `json:"jobs"`
	Applications []ApplicationRecordResponse `json:"applications"`
}

func NewUserRecordResponses(records []domain.UserRecord) []UserRecordResponse {
	out := make([]UserRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, UserRecordResponse{ID: r.ID, Username: r.Username, Role: string(r.Role)})
	}
	return out
}

func NewJobRecordResponses(records []domain.JobRecord) []JobRecordResponse {
	out := make([]JobRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, JobRecordResponse{
			ID:          r.ID,
			Recruiter:   r.Recruiter,
			Company:     r.Company,
			Title:       r.Title,
			Description: r.Description,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out
}

func NewApplicationRecordResponses(records []domain.ApplicationRecord) []ApplicationRecordResponse {
	out := make([]ApplicationRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ApplicationRecordResponse{
			ID:        r.ID,
			Applicant: r.Applicant,
			JobTitle:  r.JobTitle,
			Status:    string(r.Status),
			AppliedAt: r.AppliedAt,
		})
	}
	return out
}

func NewAdminOverviewResponse(o *service.AdminOverview) AdminOverviewResponse {
	return AdminOverviewResponse{
		Users:        NewUserRecordResponses(o.Users),
		Jobs:         NewJobRecordResponses(o.Jobs),
		Applications: NewApplicationRecordResponses(o.Applications),
	}
}
