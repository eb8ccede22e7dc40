package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresStore persists sessions in the sessions table.
type PostgresStore struct {
	db *sql.DB
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(conn *sql.DB) *PostgresStore {
	return &PostgresStore{db: conn}
}

const querySessionSave = `
INSERT INTO sessions (id, encoded_values, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET encoded_values = EXCLUDED.encoded_values
`

func (s *PostgresStore) Save(ctx context.Context, rec Record) error {
	if _, err := s.db.ExecContext(ctx, querySessionSave, rec.ID, rec.EncodedValues, rec.CreatedAt); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

const querySessionGet = "SELECT id, encoded_values, created_at FROM sessions WHERE id = $1 LIMIT 1"

func (s *PostgresStore) GetByID(ctx context.Context, sessionID string) (Record, error) {
	row := s.db.QueryRowContext(ctx, querySessionGet, sessionID)
	var rec Record
	if err := row.Scan(&rec.ID, &rec.EncodedValues, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrSessionNotFound
		}
		return Record{}, fmt.Errorf("get session: %w", err)
	}
	return rec, nil
}

const querySessionDelete = "DELETE FROM sessions WHERE id = $1"

func (s *PostgresStore) DeleteByID(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, querySessionDelete, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
