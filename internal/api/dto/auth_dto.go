package dto

import (
	"time"

	"github.com/hireboard/recruitment-service/internal/domain"
)

// CredentialsRequest payload for register and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse exposes the caller's session state.
type SessionResponse struct {
	ID              string    `json:"id"`
	LoggedIn        bool      `json:"logged_in"`
	UserID          int64     `json:"user_id"`
	Username        string    `json:"username"`
	Role            string    `json:"role"`
	SelectedJobID   *int64    `json:"selected_job_id,omitempty"`
	ApplicantsJobID *int64    `json:"applicants_job_id,omitempty"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Role: string(u.Role)}
}

func NewSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		LoggedIn:        true,
		UserID:          s.UserID,
		Username:        s.Username,
		Role:            string(s.Role),
		SelectedJobID:   s.SelectedJobID,
		ApplicantsJobID: s.ApplicantsJobID,
		ExpiresAt:       s.ExpiresAt,
	}
}
