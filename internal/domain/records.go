package domain

import "time"

// UserRecord is the admin view of an account.
type UserRecord struct {
	ID       int64
	Username string
	Role     Role
}

// JobRecord is a job joined with its recruiter's username.
type JobRecord struct {
	ID          int64
	Recruiter   string
	Company     string
	Title       string
	Description string
	CreatedAt   time.Time
}

// ApplicationRecord is an application joined with applicant and job title.
type ApplicationRecord struct {
	ID        int64
	Applicant string
	JobTitle  string
	Status    ApplicationStatus
	AppliedAt time.Time
}
