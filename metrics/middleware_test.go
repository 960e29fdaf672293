package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorRecordsStatusAndPath(t *testing.T) {
	handler := Collector(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/collector-test", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rec.Code)
	}

	// Outside a chi route the raw path is the label.
	got := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues("GET", "/collector-test", "418"))
	if got != 1 {
		t.Errorf("expected 1 recorded request, got %v", got)
	}
}

func TestCollectorDefaultsToOK(t *testing.T) {
	handler := Collector(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest("GET", "/collector-default", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	got := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues("GET", "/collector-default", "200"))
	if got != 1 {
		t.Errorf("expected 1 recorded request with status 200, got %v", got)
	}
}

func TestCollectorInFlightGaugeReturnsToZero(t *testing.T) {
	release := make(chan struct{})
	sampled := make(chan float64, 1)

	handler := Collector(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sampled <- testutil.ToFloat64(HTTPRequestInFlight)
		<-release
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/in-flight", nil))
	}()

	select {
	case during := <-sampled:
		if during < 1 {
			t.Errorf("expected in-flight gauge >= 1 during request, got %v", during)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never ran")
	}

	close(release)
	<-done

	if after := testutil.ToFloat64(HTTPRequestInFlight); after != 0 {
		t.Errorf("expected in-flight gauge 0 after request, got %v", after)
	}
}

func TestObserveHTTPRequest(t *testing.T) {
	ObserveHTTPRequest("POST", "/observe-test", 502, 10*time.Millisecond)

	got := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues("POST", "/observe-test", "502"))
	if got != 1 {
		t.Errorf("expected 1 recorded request, got %v", got)
	}
}
