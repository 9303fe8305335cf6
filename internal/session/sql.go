package session

import (
	"context"
	"database/sql"
	"errors"
)

// SQLStore persists sessions in the sessions table of the main database,
// so they survive restarts and are shared across instances.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates a Store backed by the given database pool.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Save(ctx context.Context, sess *Session) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, sess.ID, sess.UserID, sess.ExpiresAt, sess.CreatedAt)
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (*Session, error) {
	query := `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = ?`

	sess := &Session{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sess.ID, &sess.UserID, &sess.ExpiresAt, &sess.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return sess, nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}
