package post_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/inkwell/internal/auth"
	"github.com/ferdiebergado/inkwell/internal/pkg/message"
	"github.com/ferdiebergado/inkwell/internal/pkg/web"
	"github.com/ferdiebergado/inkwell/internal/post"
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

// postRequest builds a request for the given post carrying the actor as the
// session principal, the way the session guard does.
func postRequest(method, postID string, actor user.SessionUser) *http.Request {
	r := httptest.NewRequest(method, "/posts/"+postID, nil)
	r.SetPathValue("id", postID)
	return r.WithContext(auth.NewContextWithPrincipal(r.Context(), actor))
}

func TestHandler_GetPost_NotFound(t *testing.T) {
	t.Parallel()

	svc := &post.StubService{
		GetFunc: func(_ context.Context, _ user.SessionUser, _ string) (post.Post, error) {
			return post.Post{}, post.ErrNotFound
		},
	}
	handler := post.NewHandler(svc)

	rec := httptest.NewRecorder()
	handler.GetPost(rec, postRequest(http.MethodGet, "missing", reader))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, message.PostNotFound, decodeError(t, rec.Body.Bytes()).Message)
}

func TestHandler_DeletePost_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		svcErr      error
		wantCode    int
		wantMessage string
	}{
		{"missing post", post.ErrNotFound, http.StatusNotFound, message.PostNotFound},
		{"not the owner", post.ErrForbidden, http.StatusForbidden, message.Forbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &post.StubService{
				DeleteFunc: func(_ context.Context, _ user.SessionUser, _ string) (post.Post, error) {
					return post.Post{}, tt.svcErr
				},
			}
			handler := post.NewHandler(svc)

			rec := httptest.NewRecorder()
			handler.DeletePost(rec, postRequest(http.MethodDelete, "post-1", reader))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec.Body.Bytes()).Message)
		})
	}
}
