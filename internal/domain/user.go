package domain

import "time"

// Role is the closed set of account kinds. A user's role never changes.
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Roles lists every valid role.
var Roles = []Role{RoleApplicant, RoleRecruiter, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleApplicant, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// User is a registered account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
