package dto

import (
	"time"

	"github.com/hireboard/recruitment-service/internal/domain"
)

// JobRequest payload for posting a job.
type JobRequest struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
	Salary      string `json:"salary"`
}

// DeleteJobsRequest selects jobs for bulk deletion.
type DeleteJobsRequest struct {
	JobIDs []int64 `json:"job_ids"`
}

// JobResponse is a job as returned to clients.
type JobResponse struct {
	ID          int64     `json:"id"`
	RecruiterID int64     `json:"recruiter_id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	Skills      string    `json:"skills"`
	Salary      string    `json:"salary"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobListingResponse annotates a job with the applicant's status.
type JobListingResponse struct {
	JobResponse
	Status  string `json:"status"`
	Applied bool   `json:"applied"`
}

func NewJobResponse(j domain.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		RecruiterID: j.RecruiterID,
		Company:     j.Company,
		Role:        j.Role,
		Description: j.Description,
		Skills:      j.Skills,
		Salary:      j.Salary,
		CreatedAt:   j.CreatedAt,
	}
}

func NewJobResponses(jobs []domain.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func NewJobListingResponse(l domain.JobListing) JobListingResponse {
	return JobListingResponse{
		JobResponse: NewJobResponse(l.Job),
		Status:      l.StatusLabel(),
		Applied:     l.Status != nil,
	}
}

func NewJobListingResponses(listings []domain.JobListing) []JobListingResponse {
	out := make([]JobListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewJobListingResponse(l))
	}
	return out
}
