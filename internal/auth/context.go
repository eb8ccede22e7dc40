package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/inkwell/internal/user"
)

type ctxKey int

const principalKey ctxKey = 0

var errNoPrincipal = errors.New("no principal in context")

// NewContextWithPrincipal stores the session principal in ctx. The session
// guard calls this once per request; handlers read it back with
// PrincipalFromContext.
func NewContextWithPrincipal(ctx context.Context, principal user.SessionUser) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

func PrincipalFromContext(ctx context.Context) (user.SessionUser, error) {
	principal, ok := ctx.Value(principalKey).(user.SessionUser)
	if !ok {
		return user.SessionUser{}, errNoPrincipal
	}
	return principal, nil
}
