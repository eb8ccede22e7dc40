package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/inkwell/internal/middleware"
	"github.com/ferdiebergado/inkwell/internal/pkg/web"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

const testBodySize = 1 << 20

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid payload", `{"email":"juan@example.com","password":"hunter2A"}`, http.StatusOK},
		{"malformed json", `{"email":`, http.StatusBadRequest},
		{"unknown field", `{"email":"juan@example.com","extra":true}`, http.StatusUnprocessableEntity},
		{"trailing garbage", `{"email":"a@b.co"}{"email":"c@d.co"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var decoded loginPayload
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[loginPayload](r.Context())
				if err != nil {
					t.Errorf("ParamsFromContext() error = %v", err)
				}
				decoded = params
				w.WriteHeader(http.StatusOK)
			})

			handler := middleware.DecodePayload[loginPayload](testBodySize)(next)
			r := httptest.NewRequest(http.MethodPost, "/account/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && decoded.Email != "juan@example.com" {
				t.Errorf("decoded email = %q, want %q", decoded.Email, "juan@example.com")
			}
		})
	}
}

func TestDecodePayload_BodyTooLarge(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("handler must not run for an oversized body")
	})

	handler := middleware.DecodePayload[loginPayload](8)(next)
	body := `{"email":"juan@example.com","password":"hunter2A"}`
	r := httptest.NewRequest(http.MethodPost, "/account/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}
