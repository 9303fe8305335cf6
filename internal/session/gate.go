package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-go/internal/crypto"
)

// Gate issues and resolves session tokens. The token handed to clients is a
// signed wrapper around a server-side session ID, so tampered cookies fail
// signature verification and logout revokes the session regardless of what
// the client still holds.
type Gate struct {
	store  Store
	secret string
	ttl    time.Duration
}

// NewGate creates a Gate over the given store. ttl bounds both the stored
// session and the signed token.
func NewGate(store Store, secret string, ttl time.Duration) *Gate {
	return &Gate{store: store, secret: secret, ttl: ttl}
}

// Create records a new session for the user and returns the signed token to
// be set as the client's cookie.
func (g *Gate) Create(ctx context.Context, userID int64) (string, error) {
	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(g.ttl),
	}

	if err := g.store.Save(ctx, sess); err != nil {
		return "", err
	}

	return crypto.SignSessionToken(sess.ID, g.secret, g.ttl)
}

// Resolve returns the user ID bound to a token. It fails with ErrNotFound
// when the token is malformed, tampered, unknown, or expired. Expired
// sessions are deleted on the way out.
func (g *Gate) Resolve(ctx context.Context, token string) (int64, error) {
	id, err := crypto.ParseSessionToken(token, g.secret)
	if err != nil {
		return 0, ErrNotFound
	}

	sess, err := g.store.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	if sess.Expired(time.Now()) {
		_ = g.store.Delete(ctx, id)
		return 0, ErrNotFound
	}

	return sess.UserID, nil
}

// Destroy revokes the session named by a token. Unknown or malformed tokens
// are ignored; logout is idempotent.
func (g *Gate) Destroy(ctx context.Context, token string) error {
	id, err := crypto.ParseSessionToken(token, g.secret)
	if err != nil {
		return nil
	}
	return g.store.Delete(ctx, id)
}
