package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/deskflow/deskflow/pkg/composables"
	"github.com/deskflow/deskflow/pkg/menu"
)

// NavItems computes the filtered navigation tree for the authenticated user
// and stashes it in the request context for handlers that render or serve
// the menu. Unauthenticated requests pass through without items.
func NavItems(svc *menu.Service) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := composables.UseUserID(r.Context())
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			items := svc.Menu(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(composables.WithNavItems(r.Context(), items)))
		})
	}
}
