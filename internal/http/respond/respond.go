package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"feed-catalog/internal/apperr"
	"feed-catalog/internal/logger"
)

// ErrorBody is the only error shape the API returns.
type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Errorf("respond: encode response: %v", err)
	}
}

func OK(w http.ResponseWriter, payload any) {
	JSON(w, http.StatusOK, payload)
}

// Error renders err as {"error": msg}. Typed errors keep their message;
// anything else becomes a generic internal error. The cause is logged, never sent.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := apperr.As(err)
	if typed == nil {
		typed = apperr.Wrap(apperr.CodeInternal, err, "")
	}

	meta := apperr.MetadataFor(typed.Code())
	msg := typed.Message()
	if msg == "" {
		msg = meta.PublicMessage
	}

	l := logger.FromContext(r.Context())
	if meta.HTTPStatus >= http.StatusInternalServerError {
		l.Error().Err(err).Str("error_code", string(typed.Code())).Msg("request.error")
	} else {
		l.Debug().Err(err).Str("error_code", string(typed.Code())).Msg("request.rejected")
	}

	JSON(w, meta.HTTPStatus, ErrorBody{Error: msg})
}
