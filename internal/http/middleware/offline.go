package middleware

import (
	"net/http"

	"feed-catalog/internal/apperr"
	"feed-catalog/internal/http/respond"
)

var errOffline = apperr.New(apperr.CodeUnavailable, "service temporarily offline")

// Offline answers 503 for everything except the allowed paths while
// isOffline reports true.
func Offline(isOffline func() bool, allow ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allow))
	for _, p := range allow {
		allowed[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := allowed[r.URL.Path]; ok || !isOffline() {
				next.ServeHTTP(w, r)
				return
			}
			respond.Error(w, r, errOffline)
		})
	}
}
