package router

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

const maxRequestBodyBytes = 50 << 20

// requestContextMiddleware tags the request logger with a request ID and caps the body size.
func requestContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		logger := domain.LoggerFromContext(r.Context()).With(
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)
		ctx := domain.ContextWithLogger(r.Context(), logger)

		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
