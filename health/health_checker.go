// Package health provides health checking functionality for the consultation API.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/remedia/remedia-api/interfaces"
)

// Sweeps run on a fixed interval, see the scheduler package.
const sweepInterval = 5 * time.Minute

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	store        interfaces.SessionStore
	providerName string
	maxSessions  int
}

// NewHealthChecker creates a new health checker with injected dependencies.
// maxSessions is the session count above which the service reports degraded.
func NewHealthChecker(store interfaces.SessionStore, providerName string, maxSessions int) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		store:        store,
		providerName: providerName,
		maxSessions:  maxSessions,
	}
}

// HealthCheck returns HTTP-specific health data
// Used by /health HTTP endpoint
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	sessions := h.store.Count()
	lastSweep := h.store.GetLastSweep()
	startTime := h.store.GetServerStartTime()

	sweepAge := time.Since(lastSweep)

	// Determine health status and HTTP code
	switch {
	case !lastSweep.IsZero() && sweepAge > 3*sweepInterval:
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable

	case h.maxSessions > 0 && sessions > h.maxSessions:
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	uptime := time.Duration(0)
	if !startTime.IsZero() {
		uptime = time.Since(startTime)
	}

	data = map[string]any{
		"provider":         h.providerName,
		"active_sessions":  sessions,
		"sessions_created": h.store.CreatedTotal(),
		"sessions_swept":   h.store.SweptTotal(),
		"last_sweep":       lastSweep.Format(time.RFC3339),
		"uptime_hours":     math.Round(uptime.Hours()*10) / 10,
	}

	return status, data, httpStatus
}

// CalculateNextSweep returns the next scheduled sweep time
func (h *HealthCheckerImpl) CalculateNextSweep() time.Time {
	lastSweep := h.store.GetLastSweep()
	if lastSweep.IsZero() {
		return time.Now().Add(sweepInterval)
	}
	return lastSweep.Add(sweepInterval)
}
