// Package session implements the session adapter: an explicit session store
// keyed by session ID, holding the sanitized session principal. The cookie
// only ever carries the securecookie-encoded session ID; the principal lives
// server-side in the backing store.
//
// The layering follows gorilla/sessions: codecStore implements the
// sessions.Store interface over a pluggable Store backend (Postgres in
// production, in-memory in tests), and Manager is the façade the handlers
// use.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is emitted when a session is not found in the
// session store.
var ErrSessionNotFound = errors.New("session not found")

// Record is a stored session: the encoded session values keyed by session ID.
type Record struct {
	ID            string
	EncodedValues string
	CreatedAt     time.Time
}

// Store persists sessions by session ID.
type Store interface {
	Save(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, sessionID string) (Record, error)
	DeleteByID(ctx context.Context, sessionID string) error
}
