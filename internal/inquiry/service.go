package inquiry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"feed-catalog/internal/logger"
	"feed-catalog/internal/metrics"
	"feed-catalog/internal/notify"
	"feed-catalog/internal/quote"
)

const tracerName = "feed-catalog/inquiry"

// Service validates submissions, acknowledges them and hands them
// downstream. Nothing is stored.
type Service struct {
	products      quote.ProductLookup
	notifier      notify.Notifier
	metrics       *metrics.InquiryMetrics
	ids           *IDGenerator
	notifyTimeout time.Duration
	now           func() time.Time
}

func NewService(products quote.ProductLookup, notifier notify.Notifier, m *metrics.InquiryMetrics, ids *IDGenerator, notifyTimeout time.Duration) *Service {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &Service{
		products:      products,
		notifier:      notifier,
		metrics:       m,
		ids:           ids,
		notifyTimeout: notifyTimeout,
		now:           time.Now,
	}
}

type customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	FarmType string `json:"farmType,omitempty"`
}

type quotePayload struct {
	Customer             customer         `json:"customer"`
	Products             []quote.LineItem `json:"products"`
	EstimatedTotal       float64          `json:"estimatedTotal"`
	ServerEstimatedTotal string           `json:"serverEstimatedTotal"`
	Message              string           `json:"message,omitempty"`
}

type contactPayload struct {
	Customer customer `json:"customer"`
	Subject  string   `json:"subject"`
	Message  string   `json:"message"`
}

func (s *Service) SubmitContact(ctx context.Context, form ContactForm) (*Confirmation, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "inquiry.SubmitContact")
	defer span.End()

	if err := Validate(form); err != nil {
		return nil, s.reject(ctx, span, KindContact, err)
	}

	payload := contactPayload{
		Customer: customer{
			Name:  form.FirstName + " " + form.LastName,
			Email: form.Email,
			Phone: form.Phone,
		},
		Subject: form.Subject,
		Message: form.Message,
	}
	return s.accept(ctx, span, KindContact, contactPrefix, contactAcceptedMessage, payload), nil
}

// SubmitQuote accepts a quote request. The client's estimate is echoed to
// downstream systems next to a server-side recomputation; product ids that
// do not resolve are tolerated and simply priced at zero.
func (s *Service) SubmitQuote(ctx context.Context, req QuoteRequest) (*Confirmation, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "inquiry.SubmitQuote")
	defer span.End()

	if err := Validate(req.FormData); err != nil {
		return nil, s.reject(ctx, span, KindQuote, err)
	}

	items := req.QuoteItems
	if items == nil {
		items = []quote.LineItem{}
	}
	server := quote.Estimate(s.products, items)
	span.SetAttributes(
		attribute.Int("quote.items", len(items)),
		attribute.String("quote.server_estimate", quote.FormatTotal(server)),
	)

	form := req.FormData
	payload := quotePayload{
		Customer: customer{
			Name:     form.FirstName + " " + form.LastName,
			Email:    form.Email,
			Phone:    form.Phone,
			Company:  form.Company,
			FarmType: form.FarmType,
		},
		Products:             items,
		EstimatedTotal:       req.EstimatedTotal,
		ServerEstimatedTotal: quote.FormatTotal(server),
		Message:              form.Message,
	}
	return s.accept(ctx, span, KindQuote, quotePrefix, quoteAcceptedMessage, payload), nil
}

type recordingSpan interface {
	SetAttributes(kv ...attribute.KeyValue)
	SetStatus(code codes.Code, description string)
}

func (s *Service) reject(ctx context.Context, span recordingSpan, kind string, err error) error {
	span.SetStatus(codes.Error, err.Error())
	s.metrics.IncSubmission(kind, "rejected")
	logger.FromContext(ctx).Info().Str("kind", kind).Err(err).Msg("inquiry.rejected")
	return err
}

func (s *Service) accept(ctx context.Context, span recordingSpan, kind, prefix, message string, payload any) *Confirmation {
	id := s.ids.Next(prefix)
	span.SetAttributes(
		attribute.String("inquiry.kind", kind),
		attribute.String("inquiry.confirmation_id", id),
	)
	s.metrics.IncSubmission(kind, "accepted")

	event := notify.Event{Kind: kind, ID: id, At: s.now().UTC(), Payload: payload}
	nctx := ctx
	if s.notifyTimeout > 0 {
		var cancel context.CancelFunc
		nctx, cancel = context.WithTimeout(ctx, s.notifyTimeout)
		defer cancel()
	}
	// delivery failures never fail the submission
	if err := s.notifier.Notify(nctx, event); err != nil {
		s.metrics.IncNotifyFailure(kind)
		logger.FromContext(ctx).Error().Err(err).Str("kind", kind).Str("confirmation_id", id).Msg("inquiry.notify_failed")
	}

	return &Confirmation{Kind: kind, ID: id, Message: message}
}
