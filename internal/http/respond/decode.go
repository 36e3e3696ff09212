package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"feed-catalog/internal/apperr"
)

// MaxBodyBytes caps every JSON request body. Forms and draft edits are a
// few hundred bytes.
const MaxBodyBytes int64 = 64 << 10

var (
	ErrBadBody     = apperr.New(apperr.CodeValidation, "invalid request body")
	ErrBodyTooLong = apperr.New(apperr.CodeTooLarge, "request body too large")
)

// DecodeJSON reads a single JSON value from the capped request body.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	return decode(w, r, dest, false)
}

// DecodeOptionalJSON is DecodeJSON but an empty body leaves dest untouched.
func DecodeOptionalJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	return decode(w, r, dest, true)
}

func decode(w http.ResponseWriter, r *http.Request, dest any, allowEmpty bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if allowEmpty {
			return nil
		}
		return ErrBadBody
	}

	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	err := json.NewDecoder(body).Decode(dest)
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return apperr.Wrap(apperr.CodeTooLarge, err, ErrBodyTooLong.Message())
	case allowEmpty && errors.Is(err, io.EOF):
		return nil
	}
	return apperr.Wrap(apperr.CodeValidation, err, ErrBadBody.Message())
}
