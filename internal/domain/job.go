package domain

import "time"

// Job is a posted position owned by one recruiter.
type Job struct {
	ID          int64
	RecruiterID int64
	Company     string
	Role        string
	Description string
	Skills      string
	Salary      string
	CreatedAt   time.Time
}

// JobListing is a job as seen by one applicant. Status is nil when the
// applicant has not applied.
type JobListing struct {
	Job    Job
	Status *ApplicationStatus
}

// StatusLabel renders the listing annotation.
func (l JobListing) StatusLabel() string {
	if l.Status == nil {
		return NotAppliedLabel
	}
	return string(*l.Status)
}
