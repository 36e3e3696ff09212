package middleware

import (
	"fmt"
	"net/http"

	"feed-catalog/internal/apperr"
	"feed-catalog/internal/http/respond"
	"feed-catalog/internal/logger"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err := fmt.Errorf("panic: %v", rec)
				logger.FromContext(r.Context()).Error().Err(err).Msg("panic.recovered")
				respond.Error(w, r, apperr.Wrap(apperr.CodeInternal, err, ""))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
