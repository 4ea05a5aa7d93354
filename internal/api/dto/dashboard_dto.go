package dto

import (
	"github.com/hireboard/recruitment-service/internal/service"
)

// DashboardResponse is the role-specific landing view.
type DashboardResponse struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	View     any    `json:"view"`
}

// ApplicantDashboardResponse applicant landing view.
type ApplicantDashboardResponse struct {
	Jobs     []JobListingResponse `json:"jobs"`
	Selected *JobListingResponse  `json:"selected,omitempty"`
}

// RecruiterDashboardResponse recruiter landing view.
type RecruiterDashboardResponse struct {
	Jobs       []JobResponse            `json:"jobs"`
	Applicants *ApplicantReviewResponse `json:"applicants,omitempty"`
}

func NewDashboardResponse(v *service.DashboardView) DashboardResponse {
	resp := DashboardResponse{Role: string(v.Role), Username: v.Username}
	switch content := v.Content.(type) {
	case service.ApplicantDashboard:
		view := ApplicantDashboardResponse{Jobs: NewJobListingResponses(content.Jobs)}
		if content.Selected != nil {
			selected := NewJobListingResponse(*content.Selected)
			view.Selected = &selected
		}
		resp.View = view
	case service.RecruiterDashboard:
		resp.View = RecruiterDashboardResponse{
			Jobs:       NewJobResponses(content.Jobs),
			Applicants: NewApplicantReviewResponse(content.Applicants),
		}
	case *service.AdminOverview:
		resp.View = NewAdminOverviewResponse(content)
	default:
		resp.View = content
	}
	return resp
}
