package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/hireboard/recruitment-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered           EventType = "user_registered"
	EventJobPosted                EventType = "job_posted"
	EventJobsDeleted              EventType = "jobs_deleted"
	EventApplicationSubmitted     EventType = "application_submitted"
	EventApplicationWithdrawn     EventType = "application_withdrawn"
	EventApplicationStatusChanged EventType = "application_status_changed"
)

// AllEventTypes lists every event the services publish.
var AllEventTypes = []EventType{
	EventUserRegistered,
	EventJobPosted,
	EventJobsDeleted,
	EventApplicationSubmitted,
	EventApplicationWithdrawn,
	EventApplicationStatusChanged,
}

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, actor Actor, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string `json:"username"`
}

// JobPostedPayload payload.
type JobPostedPayload struct {
	JobID   int64  `json:"job_id"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

// JobsDeletedPayload payload.
type JobsDeletedPayload struct {
	JobIDs []int64 `json:"job_ids"`
}

// ApplicationPayload identifies an application by job and applicant.
type ApplicationPayload struct {
	ApplicationID int64 `json:"application_id,omitempty"`
	JobID         int64 `json:"job_id"`
	ApplicantID   int64 `json:"applicant_id"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	ApplicationID int64                    `json:"application_id"`
	JobID         int64                    `json:"job_id"`
	OldStatus     domain.ApplicationStatus `json:"old_status"`
	NewStatus     domain.ApplicationStatus `json:"new_status"`
}
