package session

import (
	"encoding/base32"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// codecStore is a sessions.Store backed by a Store. The encoded session ID
// travels in the cookie; the encoded session values stay server-side.
type codecStore struct {
	codecs  []securecookie.Codec
	options *sessions.Options
	backend Store
}

var _ sessions.Store = (*codecStore)(nil)

func newCodecStore(backend Store, options *sessions.Options, keyPairs ...[]byte) *codecStore {
	return &codecStore{
		codecs:  securecookie.CodecsFromPairs(keyPairs...),
		options: options,
		backend: backend,
	}
}

// newSessionID returns a new session ID: a 32 byte base32 string with
// padding, same as the gorilla/sessions reference implementation.
func newSessionID() string {
	return base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32))
}

// Get returns a session for the given name after adding it to the registry.
//
// This function satisfies the sessions.Store interface.
func (s *codecStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns a session for the given name without adding it to the registry.
//
// A new session is returned if the request carries no session cookie, or the
// cookie does not decode, or the session ID is unknown to the backend. Access
// IsNew on the session to tell an existing session from a new one.
//
// This function satisfies the sessions.Store interface.
func (s *codecStore) New(r *http.Request, name string) (*sessions.Session, error) {
	// Setup new session
	session := sessions.NewSession(s, name)
	opts := *s.options
	session.Options = &opts
	session.IsNew = true
	session.ID = newSessionID()

	// Check if the session cookie already exists
	c, err := r.Cookie(name)
	if err == http.ErrNoCookie {
		return session, nil
	} else if err != nil {
		return session, err
	}

	// Decode session ID (overwrites the generated session ID)
	if err := securecookie.DecodeMulti(name, c.Value, &session.ID, s.codecs...); err != nil {
		return session, err
	}

	// Check if the session exists in the backend
	rec, err := s.backend.GetByID(r.Context(), session.ID)
	switch err {
	case nil:
		// Session found. Decode the stored values into the session being
		// returned.
		session.IsNew = false
		err = securecookie.DecodeMulti(session.Name(), rec.EncodedValues,
			&session.Values, s.codecs...)
		if err != nil {
			return session, err
		}
	case ErrSessionNotFound:
		// Session not found in the backend; the new session is returned.
	default:
		return session, err
	}

	return session, nil
}

// Save saves the session to the backend and updates the http response cookie
// with the encoded session ID.
//
// A session with Options.MaxAge <= 0 is deleted from the backend and its
// cookie expired, which is how logout works.
//
// This function satisfies the sessions.Store interface.
func (s *codecStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge <= 0 {
		if err := s.backend.DeleteByID(r.Context(), session.ID); err != nil {
			return err
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	// Save the session values to the backend keyed by session ID.
	encodedValues, err := securecookie.EncodeMulti(session.Name(), session.Values, s.codecs...)
	if err != nil {
		return err
	}

	err = s.backend.Save(r.Context(), Record{
		ID:            session.ID,
		EncodedValues: encodedValues,
		CreatedAt:     time.Now(),
	})
	if err != nil {
		return err
	}

	// Only the encoded session ID goes to the client.
	encodedID, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encodedID, session.Options))

	return nil
}
