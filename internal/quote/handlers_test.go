package quote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feed-catalog/internal/auth"
)

func newDraftRouter(t *testing.T) *mux.Router {
	t.Helper()
	sessions := NewSessions(NewMemoryStore(time.Hour), auth.NewTokens("test-secret", "feed-catalog", time.Hour))
	r := mux.NewRouter()
	NewHandler(testCatalog, sessions).Register(r)
	return r
}

func call(t *testing.T, r http.Handler, method, target, token, body string) (*httptest.ResponseRecorder, DraftResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp DraftResponse
	if rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestDraftLifecycle(t *testing.T) {
	r := newDraftRouter(t)

	rec, created := call(t, r, http.MethodPost, "/api/quote/drafts", "", `{"productId": "basic"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, created.Token)
	require.Len(t, created.Draft.Items, 1)
	assert.Equal(t, "50 lb Bag", created.Draft.Items[0].Size)
	assert.Equal(t, "36.00", created.EstimatedTotalDisplay)
	token := created.Token

	rec, got := call(t, r, http.MethodPost, "/api/quote/drafts/current/items", token, `{"productId": "cheap"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, got.Draft.Items, 2)
	assert.Empty(t, got.Token)

	rec, got = call(t, r, http.MethodPatch, "/api/quote/drafts/current/items/0", token, `{"quantity": 2, "size": "1 ton"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, got.Draft.Items[0].Quantity)
	// 20*2*35 + 9.99
	assert.Equal(t, "1409.99", got.EstimatedTotalDisplay)
	assert.InDelta(t, 1409.99, got.EstimatedTotal, 0.001)

	rec, got = call(t, r, http.MethodDelete, "/api/quote/drafts/current/items/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, got.Draft.Items, 1)

	rec, got = call(t, r, http.MethodGet, "/api/quote/drafts/current", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1400.00", got.EstimatedTotalDisplay)

	rec, got = call(t, r, http.MethodPost, "/api/quote/drafts/current/reset", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, got.Draft.Items)
	assert.Equal(t, "0.00", got.EstimatedTotalDisplay)
}

func TestCreateDraftIgnoresUnknownPreselect(t *testing.T) {
	r := newDraftRouter(t)

	rec, created := call(t, r, http.MethodPost, "/api/quote/drafts", "", `{"productId": "ghost"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, created.Draft.Items)

	rec, created = call(t, r, http.MethodPost, "/api/quote/drafts", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, StateIdle, created.Draft.State)
}

func TestDraftItemErrors(t *testing.T) {
	r := newDraftRouter(t)
	_, created := call(t, r, http.MethodPost, "/api/quote/drafts", "", `{"productId": "basic"}`)
	token := created.Token

	cases := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"unknown product", http.MethodPost, "/api/quote/drafts/current/items", `{"productId": "ghost"}`, http.StatusBadRequest},
		{"zero quantity", http.MethodPatch, "/api/quote/drafts/current/items/0", `{"quantity": 0}`, http.StatusBadRequest},
		{"bad size", http.MethodPatch, "/api/quote/drafts/current/items/0", `{"size": "100 lb Drum"}`, http.StatusBadRequest},
		{"index out of range", http.MethodDelete, "/api/quote/drafts/current/items/5", "", http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/quote/drafts/current/items", `{`, http.StatusBadRequest},
		{"non-numeric index", http.MethodDelete, "/api/quote/drafts/current/items/x", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := call(t, r, tc.method, tc.target, token, tc.body)
			assert.Equal(t, tc.status, rec.Code)
		})
	}

	rec, got := call(t, r, http.MethodGet, "/api/quote/drafts/current", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []LineItem{{ProductID: "basic", Quantity: 1, Size: "50 lb Bag"}}, got.Draft.Items)
}

func TestDraftRequiresToken(t *testing.T) {
	r := newDraftRouter(t)

	rec, _ := call(t, r, http.MethodGet, "/api/quote/drafts/current", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "quote session token required"}`, rec.Body.String())

	rec, _ = call(t, r, http.MethodGet, "/api/quote/drafts/current", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "invalid quote session token"}`, rec.Body.String())

	other := auth.NewTokens("test-secret", "feed-catalog", time.Hour)
	orphan, err := other.Issue("never-saved")
	require.NoError(t, err)
	rec, _ = call(t, r, http.MethodGet, "/api/quote/drafts/current", orphan, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmittedDraftRejectsEdits(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	tokens := auth.NewTokens("test-secret", "feed-catalog", time.Hour)
	sessions := NewSessions(store, tokens)
	r := mux.NewRouter()
	NewHandler(testCatalog, sessions).Register(r)

	_, created := call(t, r, http.MethodPost, "/api/quote/drafts", "", `{"productId": "basic"}`)
	d := created.Draft
	require.NoError(t, d.BeginSubmit())
	d.CompleteSubmit("QT-1-ABC")
	require.NoError(t, store.Save(t.Context(), d))

	rec, _ := call(t, r, http.MethodPost, "/api/quote/drafts/current/items", created.Token, `{"productId": "cheap"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, got := call(t, r, http.MethodPost, "/api/quote/drafts/current/reset", created.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StateIdle, got.Draft.State)
	assert.Empty(t, got.Draft.QuoteID)
}

func TestConcurrentAddsAreNotLost(t *testing.T) {
	r := newDraftRouter(t)
	_, created := call(t, r, http.MethodPost, "/api/quote/drafts", "", "")

	const callers = 25
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/quote/drafts/current/items", strings.NewReader(`{"productId": "basic"}`))
			req.Header.Set("Authorization", "Bearer "+created.Token)
			r.ServeHTTP(httptest.NewRecorder(), req)
		}()
	}
	wg.Wait()

	rec, got := call(t, r, http.MethodGet, "/api/quote/drafts/current", created.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, got.Draft.Items, callers)
}

func TestDraftLocksAreReleased(t *testing.T) {
	locks := newDraftLocks()
	unlockA := locks.lock("a")
	unlockB := locks.lock("b")
	assert.Len(t, locks.byID, 2)

	unlockA()
	unlockB()
	assert.Empty(t, locks.byID)
}
