package events

import (
	"context"
	"errors"
	"testing"

	"github.com/hireboard/recruitment-service/internal/domain"
)

func TestPublishRunsEveryHandler(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0
	boom := errors.New("boom")
	d.Subscribe(EventJobPosted, func(context.Context, Event) error { calls++; return boom })
	d.Subscribe(EventJobPosted, func(context.Context, Event) error { calls++; return nil })
	d.Subscribe(EventJobsDeleted, func(context.Context, Event) error { calls += 10; return nil })

	err := d.Publish(context.Background(), NewEvent(EventJobPosted, Actor{UserID: 1, Role: domain.RoleRecruiter}, JobPostedPayload{JobID: 1}))
	if calls != 2 {
		t.Fatalf("expected 2 handler calls, got %d", calls)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined handler error, got %v", err)
	}
}

func TestNewEventStampsIdentity(t *testing.T) {
	a := NewEvent(EventUserRegistered, Actor{}, nil)
	b := NewEvent(EventUserRegistered, Actor{}, nil)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected unique ids, got %q and %q", a.ID, b.ID)
	}
	if a.Timestamp.IsZero() {
		t.Fatal("expected timestamp")
	}
}
