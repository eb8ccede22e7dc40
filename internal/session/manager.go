package session

import (
	"encoding/gob"
	"fmt"
	"net/http"
	"time"

	"github.com/ferdiebergado/inkwell/internal/config"
	"github.com/ferdiebergado/inkwell/internal/user"
	"github.com/gorilla/sessions"
)

// Session value keys. A session carries the sanitized principal and its
// creation time; nothing else.
const (
	valuePrincipal = "principal"
	valueCreatedAt = "created_at"
)

func init() {
	gob.Register(user.SessionUser{})
}

// Manager owns the authenticated sessions. The stored principal is trusted
// as-is for the lifetime of the session; it is not re-fetched per request.
type Manager struct {
	store      sessions.Store
	backend    Store
	cookieName string
}

func NewManager(backend Store, cfg *config.Session, keyPairs ...[]byte) *Manager {
	options := &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Duration.Seconds()),
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	return &Manager{
		store:      newCodecStore(backend, options, keyPairs...),
		backend:    backend,
		cookieName: cfg.CookieName,
	}
}

func sessionIsExpired(session *sessions.Session) bool {
	createdAt, ok := session.Values[valueCreatedAt].(int64)
	if !ok {
		return true
	}
	expiresAt := createdAt + int64(session.Options.MaxAge)
	return time.Now().Unix() > expiresAt
}

// New creates a session for the given principal, saves it to the store and
// sets the session cookie on the response. The session ID is always freshly
// minted: an ID presented by the client is never adopted, and any session it
// resolved to is discarded before the principal is attached.
func (m *Manager) New(w http.ResponseWriter, r *http.Request, principal user.SessionUser) error {
	session, err := m.store.Get(r, m.cookieName)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	if !session.IsNew {
		if err := m.backend.DeleteByID(r.Context(), session.ID); err != nil {
			return fmt.Errorf("discard presented session: %w", err)
		}
	}
	session.ID = newSessionID()
	session.IsNew = true
	session.Values = map[any]any{
		valueCreatedAt: time.Now().Unix(),
		valuePrincipal: principal,
	}

	if err := m.store.Save(r, w, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Principal returns the session principal for the request. It returns
// ErrSessionNotFound when there is no session or the session has expired.
func (m *Manager) Principal(w http.ResponseWriter, r *http.Request) (user.SessionUser, error) {
	session, err := m.store.Get(r, m.cookieName)
	if err != nil {
		return user.SessionUser{}, err
	}
	if session.IsNew {
		// The request did not contain a valid session cookie.
		return user.SessionUser{}, ErrSessionNotFound
	}

	// Delete the session if it is expired. Saving with MaxAge <= 0 triggers
	// the deletion.
	if sessionIsExpired(session) {
		session.Options.MaxAge = -1
		if err := m.store.Save(r, w, session); err != nil {
			return user.SessionUser{}, fmt.Errorf("delete expired session: %w", err)
		}
		return user.SessionUser{}, ErrSessionNotFound
	}

	principal, ok := session.Values[valuePrincipal].(user.SessionUser)
	if !ok {
		return user.SessionUser{}, ErrSessionNotFound
	}

	return principal, nil
}

// Delete removes the request's session from the store and clears its cookie.
func (m *Manager) Delete(w http.ResponseWriter, r *http.Request) error {
	session, err := m.store.Get(r, m.cookieName)
	if err != nil {
		return err
	}
	if session.IsNew {
		return ErrSessionNotFound
	}

	// Saving the session with a negative MaxAge deletes it.
	session.Options.MaxAge = -1
	return m.store.Save(r, w, session)
}
