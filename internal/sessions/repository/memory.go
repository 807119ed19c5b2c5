package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process. Expired sessions are dropped
// lazily on access.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]Session),
		now:      time.Now,
	}
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.lookup(s.ID)
	if !s.ExpiresAt.After(m.now()) {
		delete(m.sessions, s.ID)
		return ErrNotFound
	}
	if err := checkRevision(current, ok, s.Version); err != nil {
		return err
	}

	s.Version++
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.lookup(id)
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lookup(id); !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) Ping(context.Context) error {
	return nil
}

// lookup must be called with mu held.
func (m *MemoryStore) lookup(id uuid.UUID) (Session, bool) {
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}
	if !s.ExpiresAt.After(m.now()) {
		delete(m.sessions, id)
		return Session{}, false
	}
	return s, true
}

var _ Store = (*MemoryStore)(nil)
