package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/deskflow/deskflow/pkg/composables"
)

// Authenticate trusts the gateway-authenticated user ID header. Requests
// without a parseable ID pass through unauthenticated; downstream handlers
// decide whether that is acceptable.
func Authenticate(userIDHeader string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(userIDHeader)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(composables.WithUserID(r.Context(), id)))
		})
	}
}
