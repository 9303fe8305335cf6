package session

import (
	"context"
	"errors"
	"time"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "taskboard_session"

var ErrNotFound = errors.New("session not found")

// Session maps a server-side session ID to a user with an expiry.
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Store persists session records. Implementations must return ErrNotFound
// from Get when the ID is unknown, and treat Delete of an unknown ID as a
// no-op.
type Store interface {
	Save(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
