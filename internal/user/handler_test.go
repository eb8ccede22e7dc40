package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/inkwell/internal/pkg/message"
	"github.com/ferdiebergado/inkwell/internal/pkg/web"
	"github.com/ferdiebergado/inkwell/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, body []byte) web.ErrorResponse {
	t.Helper()
	var resp web.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func updateRequest(userID string) *http.Request {
	r := httptest.NewRequest(http.MethodPut, "/admin/users/"+userID, nil)
	r.SetPathValue("id", userID)
	ctx := web.NewContextWithParams(r.Context(), user.UpdateUserRequest{
		FirstName:       "Juan",
		LastName:        "Dela Cruz",
		Email:           "juan@example.com",
		Password:        "hunter2A",
		PasswordConfirm: "hunter2A",
	})
	return r.WithContext(ctx)
}

func TestHandler_UpdateUser_NotFound(t *testing.T) {
	t.Parallel()

	svc := &user.StubService{
		UpdateFunc: func(_ context.Context, _ string, _ user.UpdateParams) (user.SessionUser, error) {
			return user.SessionUser{}, user.ErrNotFound
		},
	}
	handler := user.NewHandler(svc)

	rec := httptest.NewRecorder()
	handler.UpdateUser(rec, updateRequest("missing"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, message.UserNotFound, decodeError(t, rec.Body.Bytes()).Message)
}

func TestHandler_UpdateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := &user.StubService{
		UpdateFunc: func(_ context.Context, _ string, _ user.UpdateParams) (user.SessionUser, error) {
			return user.SessionUser{}, user.ErrDuplicateEmail
		},
	}
	handler := user.NewHandler(svc)

	rec := httptest.NewRecorder()
	handler.UpdateUser(rec, updateRequest("user-1"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, message.EmailInUse, decodeError(t, rec.Body.Bytes()).Message)
}

func TestHandler_DeleteUser_NotFound(t *testing.T) {
	t.Parallel()

	svc := &user.StubService{
		DeleteFunc: func(_ context.Context, _ string) (user.SessionUser, error) {
			return user.SessionUser{}, user.ErrNotFound
		},
	}
	handler := user.NewHandler(svc)

	r := httptest.NewRequest(http.MethodDelete, "/admin/users/missing", nil)
	r.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	handler.DeleteUser(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, message.UserNotFound, decodeError(t, rec.Body.Bytes()).Message)
}
