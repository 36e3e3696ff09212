package respond

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feed-catalog/internal/apperr"
)

type sample struct {
	Name string `json:"name"`
}

func TestDecodeJSON(t *testing.T) {
	var got sample
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "layer pellets"}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &got))
	assert.Equal(t, "layer pellets", got.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	err := DecodeJSON(httptest.NewRecorder(), req, &got)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	assert.Equal(t, "invalid request body", apperr.As(err).Message())

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(DecodeJSON(httptest.NewRecorder(), req, &got)))
}

func TestDecodeOptionalJSONAllowsEmptyBody(t *testing.T) {
	got := sample{Name: "unchanged"}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, DecodeOptionalJSON(httptest.NewRecorder(), req, &got))
	assert.Equal(t, "unchanged", got.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeOptionalJSON(httptest.NewRecorder(), req, &got))
}

func TestDecodeJSONRejectsOversizedBody(t *testing.T) {
	huge := `{"name": "` + strings.Repeat("x", int(MaxBodyBytes)) + `"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(huge))

	var got sample
	err := DecodeJSON(rec, req, &got)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeTooLarge, apperr.CodeOf(err))

	Error(rec, req, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request body too large", decodeError(t, rec))
}
