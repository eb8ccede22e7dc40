package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ferdiebergado/inkwell/internal/pkg/message"
	"github.com/ferdiebergado/inkwell/internal/pkg/web"
)

const mimeJSON = "application/json"

// CheckContentType rejects mutating requests whose body is not JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			contentType := r.Header.Get("Content-Type")
			if !strings.HasPrefix(contentType, mimeJSON) {
				err := fmt.Errorf("unsupported content type: %q", contentType)
				web.Fail(w, http.StatusUnsupportedMediaType, err, message.InvalidInput, nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
