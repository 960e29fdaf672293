// Package interfaces defines core abstractions for the consultation service
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"net/http"
	"time"

	"github.com/remedia/remedia-api/consultation"
)

// SessionStore defines the contract for consultation session storage.
// It provides thread-safe access to transient consultations and the
// bookkeeping the sweeper and health checks rely on.
type SessionStore interface {
	// Session lifecycle
	Create() *consultation.Consultation
	Get(id string) (*consultation.Consultation, bool)
	Delete(id string)
	Count() int

	// Expiry and bookkeeping
	SweepExpired(ttl time.Duration) int
	CreatedTotal() int64
	SweptTotal() int64
	GetLastSweep() time.Time
	GetServerStartTime() time.Time
}

// Scheduler defines the contract for background job scheduling.
// It manages session expiry sweeps and growth monitoring.
type Scheduler interface {
	// Lifecycle management
	Start() error
	Stop()
}

// HTTPHandler defines the contract for HTTP request handlers.
// It provides a consistent interface for all API endpoints.
type HTTPHandler interface {
	// Consultation endpoints
	CreateConsultation(w http.ResponseWriter, r *http.Request)
	GetConsultation(w http.ResponseWriter, r *http.Request)
	EndConsultation(w http.ResponseWriter, r *http.Request)
	AnalyzeSymptoms(w http.ResponseWriter, r *http.Request)
	RecommendRemedies(w http.ResponseWriter, r *http.Request)

	// Voice input descriptor
	VoiceMessages(w http.ResponseWriter, r *http.Request)

	// This will stay in all versions
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// HealthChecker defines the contract for health check functionality.
// It provides system health monitoring and reporting.
type HealthChecker interface {
	// HealthCheck returns current system health status
	HealthCheck() (status string, details map[string]any, httpStatus int)

	// CalculateNextSweep returns the next scheduled sweep time
	CalculateNextSweep() time.Time
}

// InputValidator defines the contract for user input validation.
// It ensures free-text input is safe and meaningful before any
// provider call is made.
type InputValidator interface {
	// ValidateSymptoms checks a symptom description
	ValidateSymptoms(input string) error

	// ValidateLocation checks a location string
	ValidateLocation(input string) error

	// ValidateInput validates user input strings
	ValidateInput(input string) error
}
