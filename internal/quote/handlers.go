package quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"feed-catalog/internal/apperr"
	"feed-catalog/internal/http/respond"
	"feed-catalog/internal/logger"
)

// DraftResponse is a draft plus its current estimate.
type DraftResponse struct {
	Token                 string  `json:"token,omitempty"`
	Draft                 *Draft  `json:"draft"`
	EstimatedTotal        float64 `json:"estimatedTotal"`
	EstimatedTotalDisplay string  `json:"estimatedTotalDisplay"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

// Handler serves the quote-draft session API.
type Handler struct {
	products ProductLookup
	sessions *Sessions
}

func NewHandler(products ProductLookup, sessions *Sessions) *Handler {
	return &Handler{products: products, sessions: sessions}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/quote/drafts", h.CreateDraft).Methods(http.MethodPost)
	r.HandleFunc("/api/quote/drafts/current", h.GetDraft).Methods(http.MethodGet)
	r.HandleFunc("/api/quote/drafts/current/items", h.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/api/quote/drafts/current/items/{index:[0-9]+}", h.UpdateItem).Methods(http.MethodPatch)
	r.HandleFunc("/api/quote/drafts/current/items/{index:[0-9]+}", h.RemoveItem).Methods(http.MethodDelete)
	r.HandleFunc("/api/quote/drafts/current/reset", h.ResetDraft).Methods(http.MethodPost)
}

func (h *Handler) respondDraft(w http.ResponseWriter, status int, d *Draft, token string) {
	total := d.Estimate(h.products)
	respond.JSON(w, status, DraftResponse{
		Token:                 token,
		Draft:                 d,
		EstimatedTotal:        total.InexactFloat64(),
		EstimatedTotalDisplay: FormatTotal(total),
	})
}

// CreateDraft handles POST /api/quote/drafts. An optional productId preselects
// the first item, like arriving from a product page.
func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := respond.DecodeOptionalJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	d, token, err := h.sessions.Start(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if req.ProductID != "" {
		// unknown preselects are ignored, the page just opens empty
		if err := d.Add(h.products, req.ProductID); err == nil {
			if err := h.sessions.Save(r.Context(), d); err != nil {
				respond.Error(w, r, err)
				return
			}
		}
	}

	logger.FromContext(r.Context()).Debug().Str("draft_id", d.ID).Msg("quote.draft.created")
	h.respondDraft(w, http.StatusCreated, d, token)
}

// GetDraft handles GET /api/quote/drafts/current
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	d, err := h.sessions.Current(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	h.respondDraft(w, http.StatusOK, d, "")
}

// AddItem handles POST /api/quote/drafts/current/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := respond.DecodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	h.mutate(w, r, func(d *Draft) error {
		return d.Add(h.products, req.ProductID)
	})
}

// UpdateItem handles PATCH /api/quote/drafts/current/items/{index}
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(mux.Vars(r)["index"])

	var patch ItemPatch
	if err := respond.DecodeJSON(w, r, &patch); err != nil {
		respond.Error(w, r, err)
		return
	}
	h.mutate(w, r, func(d *Draft) error {
		return d.Update(h.products, index, patch)
	})
}

// RemoveItem handles DELETE /api/quote/drafts/current/items/{index}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(mux.Vars(r)["index"])
	h.mutate(w, r, func(d *Draft) error {
		return d.Remove(index)
	})
}

// ResetDraft handles POST /api/quote/drafts/current/reset
func (h *Handler) ResetDraft(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(d *Draft) error {
		d.Reset()
		return nil
	})
}

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, fn func(*Draft) error) {
	d, err := h.sessions.Update(r, fn)
	if err != nil {
		respond.Error(w, r, DraftError(err))
		return
	}
	h.respondDraft(w, http.StatusOK, d, "")
}

// DraftError maps draft rule violations to API errors.
func DraftError(err error) error {
	switch {
	case errors.Is(err, ErrUnknownProduct),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidSize),
		errors.Is(err, ErrIndexOutOfRange):
		return apperr.Wrap(apperr.CodeValidation, err, err.Error())
	case errors.Is(err, ErrDraftSubmitted),
		errors.Is(err, ErrSubmitInFlight):
		return apperr.Wrap(apperr.CodeConflict, err, err.Error())
	}
	return err
}
