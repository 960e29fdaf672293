package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/remedia/remedia-api/config"
	"github.com/remedia/remedia-api/consultation"
	"github.com/remedia/remedia-api/data"
	"github.com/remedia/remedia-api/handlers"
	"github.com/remedia/remedia-api/health"
	"github.com/remedia/remedia-api/validation"
	"github.com/remedia/remedia-api/voice"
)

type stubProvider struct{}

func (stubProvider) AnalyzeSymptoms(ctx context.Context, symptoms string) (*consultation.Analysis, error) {
	return &consultation.Analysis{
		Conditions: []consultation.Condition{{Name: "Common Cold", Likelihood: 0.7}},
	}, nil
}

func (stubProvider) RecommendRemedies(ctx context.Context, req consultation.RemedyRequest) (*consultation.RemedyAdvice, error) {
	return &consultation.RemedyAdvice{
		Remedies: []consultation.Remedy{{Name: "Rest", Explanation: "Recover."}},
	}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Port:           "8000",
		Address:        "127.0.0.1",
		Env:            "test",
		MaxRequestBody: 64 * 1024,
		MaxHeaderSize:  16 * 1024,
		VoiceInput:     true,
	}

	store := data.NewSessionContainer()
	store.SetServerStartTime(time.Now())
	service := consultation.NewService(stubProvider{}, 5*time.Second)
	checker := health.NewHealthChecker(store, "openai", 1000)
	handler := handlers.NewHTTPHandler(store, service, validation.NewInputValidator(), checker, voice.NewDescriptor(true))

	return NewServer(cfg, handler)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"voice messages", http.MethodGet, "/api/voice/messages", http.StatusOK},
		{"create consultation", http.MethodPost, "/api/consultations", http.StatusCreated},
		{"unknown consultation", http.MethodGet, "/api/consultations/nope", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound},
		{"wrong method", http.MethodDelete, "/api/consultations", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.RemoteAddr = "10.0.0.42:1000"
			rr := httptest.NewRecorder()
			srv.router.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("Expected %d for %s %s, got %d", tt.wantStatus, tt.method, tt.path, rr.Code)
			}
		})
	}
}

func TestShutdown(t *testing.T) {
	srv := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Shutdown before Start must still return cleanly
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
}
