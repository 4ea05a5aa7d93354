package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hireboard/recruitment-service/internal/domain"
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	s := &domain.Session{UserID: 7, Username: "andy", Role: domain.RoleApplicant}
	if err := store.Create(ctx, s, time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ID == "" {
		t.Fatal("expected generated id")
	}

	jobID := int64(3)
	s.SelectedJobID = &jobID
	if err := store.Update(ctx, s); err != nil {
		t.Fatalf("update: %v", err)
	}

	loaded, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.UserID != 7 || loaded.Role != domain.RoleApplicant {
		t.Fatalf("unexpected session %+v", loaded)
	}
	if loaded.SelectedJobID == nil || *loaded.SelectedJobID != 3 {
		t.Fatalf("expected selected job 3, got %v", loaded.SelectedJobID)
	}

	if err := store.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Update(ctx, s); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update after delete, got %v", err)
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreExpires(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	s := &domain.Session{UserID: 1, Role: domain.RoleAdmin}
	if err := store.Create(context.Background(), s, time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := store.Get(context.Background(), s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	jobID := int64(9)
	s := &domain.Session{UserID: 1, Role: domain.RoleRecruiter, ApplicantsJobID: &jobID}
	if err := store.Create(ctx, s, time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}
	loaded, _ := store.Get(ctx, s.ID)
	*loaded.ApplicantsJobID = 42
	again, _ := store.Get(ctx, s.ID)
	if *again.ApplicantsJobID != 9 {
		t.Fatalf("stored session mutated through a returned copy")
	}
}

func TestRedisStoreLifecycle(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	exerciseStore(t, NewRedisStore(client, "test-session:"))
}
