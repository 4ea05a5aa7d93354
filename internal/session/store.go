// Package session keeps per-login state between requests.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hireboard/recruitment-service/internal/domain"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store persists sessions keyed by id.
type Store interface {
	// Create assigns an id and expiry and saves the session.
	Create(ctx context.Context, s *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Update overwrites an existing session, keeping its expiry.
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	now      func() time.Time
	sessions map[string]domain.Session
}

// NewMemoryStore builds an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now, sessions: map[string]domain.Session{}}
}

func (m *MemoryStore) Create(_ context.Context, s *domain.Session, ttl time.Duration) error {
	prepare(s, m.now(), ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = clone(*s)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if !s.ExpiresAt.After(m.now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	out := clone(s)
	return &out, nil
}

func (m *MemoryStore) Update(_ context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.sessions[s.ID]
	if !ok || !existing.ExpiresAt.After(m.now()) {
		return ErrNotFound
	}
	s.ExpiresAt = existing.ExpiresAt
	m.sessions[s.ID] = clone(*s)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func prepare(s *domain.Session, now time.Time, ttl time.Duration) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

// clone copies the navigation pointers so callers never share them.
func clone(s domain.Session) domain.Session {
	if s.SelectedJobID != nil {
		v := *s.SelectedJobID
		s.SelectedJobID = &v
	}
	if s.ApplicantsJobID != nil {
		v := *s.ApplicantsJobID
		s.ApplicantsJobID = &v
	}
	return s
}
