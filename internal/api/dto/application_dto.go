package dto

import (
	"time"

	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/service"
)

// StatusUpdateRequest payload for changing an application's status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// ApplicationResponse is a submitted application.
type ApplicationResponse struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	ApplicantID int64     `json:"applicant_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Gender      string    `json:"gender"`
	Nationality string    `json:"nationality"`
	ResumeText  string    `json:"resume_text"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

// ApplicantResponse is one row of a job's applicant list.
type ApplicantResponse struct {
	ApplicationID int64     `json:"application_id"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Gender        string    `json:"gender"`
	Nationality   string    `json:"nationality"`
	Status        string    `json:"status"`
	ResumeText    string    `json:"resume_text,omitempty"`
	AppliedAt     time.Time `json:"applied_at"`
}

// BreakdownResponse is one value count.
type BreakdownResponse struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ApplicantReviewResponse is the applicant-list view for one job.
type ApplicantReviewResponse struct {
	Job           JobResponse         `json:"job"`
	Total         int                 `json:"total"`
	Applicants    []ApplicantResponse `json:"applicants"`
	Genders       []BreakdownResponse `json:"gender_breakdown"`
	Nationalities []BreakdownResponse `json:"nationality_breakdown"`
	Statuses      []BreakdownResponse `json:"status_breakdown"`
	Selected      *ApplicantResponse  `json:"selected,omitempty"`
	StatusOptions []string            `json:"status_options"`
}

func NewApplicationResponse(a *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		Gender:      a.Gender,
		Nationality: a.Nationality,
		ResumeText:  a.ResumeText,
		Status:      string(a.Status),
		AppliedAt:   a.AppliedAt,
	}
}

// newApplicantResponse omits resume text unless full is set; the list view
// shows contact fields and the selected applicant shows everything.
func newApplicantResponse(r domain.ApplicantRecord, full bool) ApplicantResponse {
	resp := ApplicantResponse{
		ApplicationID: r.ApplicationID,
		Username:      r.Username,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Gender:        r.Gender,
		Nationality:   r.Nationality,
		Status:        string(r.Status),
		AppliedAt:     r.AppliedAt,
	}
	if full {
		resp.ResumeText = r.ResumeText
	}
	return resp
}

func newBreakdown(entries []domain.BreakdownEntry) []BreakdownResponse {
	out := make([]BreakdownResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, BreakdownResponse{Value: e.Value, Count: e.Count})
	}
	return out
}

func NewApplicantReviewResponse(r *service.ApplicantReview) *ApplicantReviewResponse {
	if r == nil {
		return nil
	}
	applicants := make([]ApplicantResponse, 0, len(r.Applicants))
	for _, a := range r.Applicants {
		applicants = append(applicants, newApplicantResponse(a, false))
	}
	options := make([]string, 0, len(domain.ApplicationStatuses))
	for _, s := range domain.ApplicationStatuses {
		options = append(options, string(s))
	}
	resp := &ApplicantReviewResponse{
		Job:           NewJobResponse(r.Job),
		Total:         r.Total,
		Applicants:    applicants,
		Genders:       newBreakdown(r.GenderBreakdown),
		Nationalities: newBreakdown(r.NationalityBreakdown),
		Statuses:      newBreakdown(r.StatusBreakdown),
		StatusOptions: options,
	}
	if r.Selected != nil {
		selected := newApplicantResponse(*r.Selected, true)
		resp.Selected = &selected
	}
	return resp
}
