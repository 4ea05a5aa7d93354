package domain

import "time"

// Session is the per-login state: identity plus navigation pointers that
// decide which sub-view a dashboard is showing.
type Session struct {
	ID              string    `json:"id"`
	UserID          int64     `json:"user_id"`
	Username        string    `json:"username"`
	Role            Role      `json:"role"`
	SelectedJobID   *int64    `json:"selected_job_id,omitempty"`
	ApplicantsJobID *int64    `json:"applicants_job_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}
