package inquiry

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"feed-catalog/internal/apperr"
	"feed-catalog/internal/http/respond"
	"feed-catalog/internal/logger"
	"feed-catalog/internal/quote"
)

// Submitter is the part of Service the handlers need.
type Submitter interface {
	SubmitContact(ctx context.Context, form ContactForm) (*Confirmation, error)
	SubmitQuote(ctx context.Context, req QuoteRequest) (*Confirmation, error)
}

// DraftSessions applies serialized updates to the caller's quote draft.
type DraftSessions interface {
	Update(r *http.Request, fn func(*quote.Draft) error) (*quote.Draft, error)
}

type Handler struct {
	svc      Submitter
	drafts   DraftSessions
	products quote.ProductLookup
}

func NewHandler(svc Submitter, drafts DraftSessions, products quote.ProductLookup) *Handler {
	return &Handler{svc: svc, drafts: drafts, products: products}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/contact", h.SubmitContact).Methods(http.MethodPost)
	r.HandleFunc("/api/quote", h.SubmitQuote).Methods(http.MethodPost)
	if h.drafts != nil {
		r.HandleFunc("/api/quote/drafts/current/submit", h.SubmitDraft).Methods(http.MethodPost)
	}
}

// SubmitContact handles POST /api/contact
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var form ContactForm
	if err := respond.DecodeJSON(w, r, &form); err != nil {
		respond.Error(w, r, err)
		return
	}

	conf, err := h.svc.SubmitContact(r.Context(), form)
	if err != nil {
		respond.Error(w, r, publicError(err, contactFailedMessage))
		return
	}
	respond.JSON(w, http.StatusOK, ContactResponse{
		Success:   true,
		MessageID: conf.ID,
		Message:   conf.Message,
	})
}

// SubmitQuote handles POST /api/quote
func (h *Handler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := respond.DecodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	conf, err := h.svc.SubmitQuote(r.Context(), req)
	if err != nil {
		respond.Error(w, r, publicError(err, quoteFailedMessage))
		return
	}
	respond.JSON(w, http.StatusOK, QuoteResponse{
		Success: true,
		QuoteID: conf.ID,
		Message: conf.Message,
	})
}

type submitDraftRequest struct {
	FormData QuoteForm `json:"formData"`
}

// SubmitDraft handles POST /api/quote/drafts/current/submit. The draft's
// items and a server-side estimate are submitted together with the form.
// Claiming the draft (Idle or Failed to Submitting) goes through one
// serialized update, so concurrent submits of a draft yield a single quote.
func (h *Handler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body submitDraftRequest
	if err := respond.DecodeJSON(w, r, &body); err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.drafts.Update(r, func(d *quote.Draft) error {
		return d.BeginSubmit()
	})
	if err != nil {
		respond.Error(w, r, quote.DraftError(err))
		return
	}

	total := d.Estimate(h.products)
	conf, err := h.svc.SubmitQuote(ctx, QuoteRequest{
		FormData:       body.FormData,
		QuoteItems:     d.ItemsCopy(),
		EstimatedTotal: total.InexactFloat64(),
	})
	if err != nil {
		pub := publicError(err, quoteFailedMessage)
		h.finishDraft(r, func(d *quote.Draft) { d.FailSubmit(publicMessage(pub)) })
		respond.Error(w, r, pub)
		return
	}

	// the quote went through even if the draft cannot be marked submitted
	h.finishDraft(r, func(d *quote.Draft) { d.CompleteSubmit(conf.ID) })
	respond.JSON(w, http.StatusOK, QuoteResponse{
		Success: true,
		QuoteID: conf.ID,
		Message: conf.Message,
	})
}

// finishDraft settles a submitting draft. A draft reset mid-submit is left alone.
func (h *Handler) finishDraft(r *http.Request, settle func(*quote.Draft)) {
	_, err := h.drafts.Update(r, func(d *quote.Draft) error {
		if d.State == quote.StateSubmitting {
			settle(d)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Msg("quote.draft.save_failed")
	}
}

// publicError keeps typed errors and hides everything else behind the
// form's generic failure message.
func publicError(err error, fallback string) error {
	if apperr.As(err) != nil {
		return err
	}
	return apperr.Wrap(apperr.CodeInternal, err, fallback)
}

func publicMessage(err error) string {
	if typed := apperr.As(err); typed != nil {
		return typed.Message()
	}
	return err.Error()
}
