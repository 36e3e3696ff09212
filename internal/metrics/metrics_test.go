package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestInquiryMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewInquiryMetrics(reg)
	m.IncSubmission("quote", "accepted")
	m.IncSubmission("quote", "accepted")
	m.IncSubmission("contact", "rejected")
	m.IncNotifyFailure("quote")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	got, err := counterValue(mfs, "inquiry_submissions_total", map[string]string{"kind": "quote", "outcome": "accepted"})
	if err != nil {
		t.Fatalf("fetch submissions: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected 2 accepted quotes, got %f", got)
	}

	got, err = counterValue(mfs, "inquiry_notify_failures_total", map[string]string{"kind": "quote"})
	if err != nil {
		t.Fatalf("fetch notify failures: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1 notify failure, got %f", got)
	}
}

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.Observe("/api/products/{id}", "GET", 404, 20*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	got, err := counterValue(mfs, "http_requests_total", map[string]string{"route": "/api/products/{id}", "status": "404"})
	if err != nil {
		t.Fatalf("fetch requests: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1 request, got %f", got)
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	NewInquiryMetrics(nil).IncSubmission("quote", "accepted")
	NewHTTPMetrics(nil).Observe("", "GET", 200, time.Millisecond)
	var m *InquiryMetrics
	m.IncNotifyFailure("quote")
}

func counterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if hasLabels(metric.GetLabel(), labels) {
				return metric.GetCounter().GetValue(), nil
			}
		}
		return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
	}
	return 0, fmt.Errorf("metric %q not found", name)
}

func hasLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, p := range pairs {
		if v, ok := want[p.GetName()]; ok && v == p.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
