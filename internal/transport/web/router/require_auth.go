package router

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := domain.UserFromContext(r.Context()); !ok {
			logger := domain.LoggerFromContext(r.Context())
			logger.InfoContext(r.Context(), "attempt to use endpoint requiring auth without a token")
			writeUnauthorized(w, "Authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requireAdminMiddleware(next http.Handler) http.Handler {
	return requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, _ := domain.UserFromContext(r.Context()); !user.IsAdmin() {
			logger := domain.LoggerFromContext(r.Context())
			logger.InfoContext(r.Context(), "non-admin attempt to use admin endpoint", "user_id", user.ID)

			writeMessage(w, http.StatusForbidden, "Administrator access required")
			return
		}

		next.ServeHTTP(w, r)
	}))
}
