package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	if metrics.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal is nil")
	}
	if metrics.CheckoutSessionsTotal == nil {
		t.Error("CheckoutSessionsTotal is nil")
	}
	if metrics.ProviderRequestDuration == nil {
		t.Error("ProviderRequestDuration is nil")
	}
}

func TestRecordCheckoutSession(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())

	metrics.RecordCheckoutSession(StatusSuccess, 0.2)
	metrics.RecordCheckoutSession(StatusSuccess, 0.1)
	metrics.RecordCheckoutSession(StatusError, 0.3)

	if got := testutil.ToFloat64(metrics.CheckoutSessionsTotal.WithLabelValues(StatusSuccess)); got != 2 {
		t.Errorf("Expected 2 successful sessions, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.CheckoutSessionsTotal.WithLabelValues(StatusError)); got != 1 {
		t.Errorf("Expected 1 failed session, got %v", got)
	}
	if got := testutil.CollectAndCount(metrics.ProviderRequestDuration); got != 1 {
		t.Errorf("Expected 1 histogram series, got %d", got)
	}
}

func TestMetricsHandler(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	metrics.RecordHTTPRequest("POST", "/api/create-checkout-session", "200", 0.05)

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), `checkout_http_requests_total{method="POST",path="/api/create-checkout-session",status="200"} 1`) {
		t.Errorf("Expected request counter in output, got:\n%s", body)
	}
}
