package auth

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/inkwell/internal/pkg/message"
	"github.com/ferdiebergado/inkwell/internal/pkg/web"
	"github.com/ferdiebergado/inkwell/internal/session"
	"github.com/ferdiebergado/inkwell/internal/user"
)

var errNotAdmin = errors.New("principal is not an admin")

// RequireSession rejects requests without a live session and puts the session
// principal into the request context for downstream handlers.
func RequireSession(sessions *session.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := sessions.Principal(w, r)
			if err != nil {
				web.RespondUnauthorized(w, err, message.NotLoggedIn, nil)
				return
			}

			ctx := NewContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin principals. It must run after
// RequireSession; a request with no principal in context is treated as not
// logged in.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := PrincipalFromContext(r.Context())
		if err != nil {
			web.RespondUnauthorized(w, err, message.NotLoggedIn, nil)
			return
		}

		if principal.Role != user.RoleAdmin {
			web.RespondForbidden(w, errNotAdmin, message.Forbidden, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
