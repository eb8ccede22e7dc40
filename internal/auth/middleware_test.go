package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/inkwell/internal/auth"
	"github.com/ferdiebergado/inkwell/internal/config"
	"github.com/ferdiebergado/inkwell/internal/pkg/timex"
	"github.com/ferdiebergado/inkwell/internal/session"
	"github.com/ferdiebergado/inkwell/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionTestKey = []byte("0123456789abcdef0123456789abcdef")

func newSessionManager() *session.Manager {
	cfg := &config.Session{
		CookieName: "inkwell_session",
		MaxAge:     timex.Duration{Duration: 24 * time.Hour},
	}
	return session.NewManager(session.NewMemoryStore(), cfg, sessionTestKey)
}

func sessionRequest(t *testing.T, mgr *session.Manager, principal user.SessionUser) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/account/login", nil)
	require.NoError(t, mgr.New(w, r, principal))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestRequireSession(t *testing.T) {
	t.Parallel()

	mgr := newSessionManager()
	principal := user.SessionUser{ID: "user-1", Role: user.RoleUser, Email: "juan@example.com"}

	var gotPrincipal user.SessionUser
	handler := auth.RequireSession(mgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := auth.PrincipalFromContext(r.Context())
		require.NoError(t, err)
		gotPrincipal = p
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(t, mgr, principal))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, principal, gotPrincipal)
}

func TestRequireSession_NoSession(t *testing.T) {
	t.Parallel()

	handler := auth.RequireSession(newSessionManager())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		role       user.Role
		wantStatus int
	}{
		{"admin passes", user.RoleAdmin, http.StatusOK},
		{"regular user is forbidden", user.RoleUser, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := auth.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			r := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			ctx := auth.NewContextWithPrincipal(r.Context(), user.SessionUser{ID: "user-1", Role: tt.role})
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r.WithContext(ctx))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAdmin_NoPrincipal(t *testing.T) {
	t.Parallel()

	handler := auth.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not run without a principal")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
