package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"feed-catalog/internal/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID echoes or mints a request id and tags the request logger with it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)

		ctx := logger.WithFields(r.Context(), map[string]any{"request_id": reqID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
