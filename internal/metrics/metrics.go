package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records request counts and latency per route template.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP metrics on the provided registerer.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
	reg.MustRegister(requests, duration)
	return &HTTPMetrics{requests: requests, duration: duration}
}

func (m *HTTPMetrics) Observe(route, method string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// InquiryMetrics counts form submissions.
type InquiryMetrics struct {
	submissions    *prometheus.CounterVec
	notifyFailures *prometheus.CounterVec
}

func NewInquiryMetrics(reg prometheus.Registerer) *InquiryMetrics {
	if reg == nil {
		return &InquiryMetrics{}
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inquiry_submissions_total",
		Help: "Form submissions by kind and outcome.",
	}, []string{"kind", "outcome"})
	notifyFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inquiry_notify_failures_total",
		Help: "Accepted submissions that could not be handed downstream.",
	}, []string{"kind"})
	reg.MustRegister(submissions, notifyFailures)
	return &InquiryMetrics{submissions: submissions, notifyFailures: notifyFailures}
}

// IncSubmission records one submission; outcome is "accepted" or "rejected".
func (m *InquiryMetrics) IncSubmission(kind, outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(kind), normalizeLabel(outcome)).Inc()
}

func (m *InquiryMetrics) IncNotifyFailure(kind string) {
	if m == nil || m.notifyFailures == nil {
		return
	}
	m.notifyFailures.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
