// Package repository stores input sessions.
package repository

import (
	"context"
	"errors"
	"time"

	"phone_input_backend/internal/telinput"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by Save when the stored revision no longer
	// matches the one the caller loaded.
	ErrConflict = errors.New("revision conflict")
)

// Session is a persisted phone input: the config it was created with and
// its mutable state. Version counts successful saves; zero means the
// session has never been stored.
type Session struct {
	ID        uuid.UUID       `json:"id"`
	Version   int64           `json:"version"`
	Config    telinput.Config `json:"config"`
	State     telinput.State  `json:"state"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// Store persists sessions until their ExpiresAt.
type Store interface {
	// Save stores s if the stored revision still equals s.Version, or if
	// s.Version is zero and nothing is stored under s.ID. On success
	// s.Version is advanced; otherwise it returns ErrConflict.
	Save(ctx context.Context, s *Session) error
	// Get returns ErrNotFound for missing or expired sessions.
	Get(ctx context.Context, id uuid.UUID) (Session, error)
	// Delete returns ErrNotFound when nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) error
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// checkRevision decides whether a save of revision version may replace
// current. A vanished session cannot be recreated by a stale writer.
func checkRevision(current Session, stored bool, version int64) error {
	switch {
	case !stored && version == 0:
		return nil
	case !stored:
		return ErrNotFound
	case current.Version != version:
		return ErrConflict
	default:
		return nil
	}
}
