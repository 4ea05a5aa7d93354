package domain

import "time"

// ApplicationStatus is the recruiter-controlled lifecycle stage.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "Pending"
	StatusInReview  ApplicationStatus = "In Review"
	StatusInterview ApplicationStatus = "Interview"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusHired     ApplicationStatus = "Hired"
)

// NotAppliedLabel annotates jobs the applicant has no application for.
const NotAppliedLabel = "Not Applied"

// ApplicationStatuses lists every status in display order.
var ApplicationStatuses = []ApplicationStatus{
	StatusPending,
	StatusInReview,
	StatusInterview,
	StatusRejected,
	StatusHired,
}

// Valid reports whether s is one of the five known statuses.
func (s ApplicationStatus) Valid() bool {
	for _, candidate := range ApplicationStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// Genders accepted on the application form.
var Genders = []string{"Male", "Female", "Other"}

// Application links one applicant to one job.
type Application struct {
	ID          int64
	JobID       int64
	ApplicantID int64
	Name        string
	Email       string
	Phone       string
	Gender      string
	Nationality string
	ResumeText  string
	Status      ApplicationStatus
	AppliedAt   time.Time
}

// ApplicantRecord is an application joined with the applicant's username.
type ApplicantRecord struct {
	ApplicationID int64
	Username      string
	Name          string
	Email         string
	Phone         string
	Gender        string
	Nationality   string
	Status        ApplicationStatus
	ResumeText    string
	AppliedAt     time.Time
}

// BreakdownEntry counts how many applicants share a value.
type BreakdownEntry struct {
	Value string
	Count int
}
