// Package data provides thread-safe storage for in-flight consultations.
// Consultations are transient: each one is keyed by a random ID, lives only
// in memory, and is swept once it has been idle longer than the configured
// TTL.
package data

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/remedia/remedia-api/consultation"
	"github.com/remedia/remedia-api/interfaces"
	"github.com/remedia/remedia-api/logging"
	"github.com/remedia/remedia-api/metrics"
)

// Compile-time check to ensure SessionContainer implements SessionStore
var _ interfaces.SessionStore = (*SessionContainer)(nil)

// SessionContainer holds all live consultations behind a single lock.
type SessionContainer struct {
	mu              sync.RWMutex
	sessions        map[string]*consultation.Consultation
	created         atomic.Int64
	swept           atomic.Int64
	lastSweep       atomic.Value // time.Time
	serverStartTime atomic.Value // time.Time
}

// NewSessionContainer creates an empty SessionContainer.
func NewSessionContainer() *SessionContainer {
	sc := &SessionContainer{
		sessions: make(map[string]*consultation.Consultation),
	}
	sc.lastSweep.Store(time.Time{})
	sc.serverStartTime.Store(time.Time{})
	return sc
}

// Create registers a new consultation and returns it.
func (sc *SessionContainer) Create() *consultation.Consultation {
	id := uuid.NewString()
	c := consultation.New(id)

	sc.mu.Lock()
	sc.sessions[id] = c
	count := len(sc.sessions)
	sc.mu.Unlock()

	sc.created.Add(1)
	metrics.ConsultationSessionsActive.Set(float64(count))
	return c
}

// Get returns the consultation with the given id, or false when it does not
// exist or has already been swept.
func (sc *SessionContainer) Get(id string) (*consultation.Consultation, bool) {
	sc.mu.RLock()
	c, ok := sc.sessions[id]
	sc.mu.RUnlock()
	return c, ok
}

// Delete removes a consultation. Deleting an unknown id is a no-op.
func (sc *SessionContainer) Delete(id string) {
	sc.mu.Lock()
	delete(sc.sessions, id)
	count := len(sc.sessions)
	sc.mu.Unlock()

	metrics.ConsultationSessionsActive.Set(float64(count))
}

// Count returns the number of live consultations.
func (sc *SessionContainer) Count() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.sessions)
}

// SweepExpired removes every consultation idle longer than ttl and returns
// how many were removed.
func (sc *SessionContainer) SweepExpired(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	sc.mu.Lock()
	removed := 0
	for id, c := range sc.sessions {
		if c.TouchedAt().Before(cutoff) {
			delete(sc.sessions, id)
			removed++
		}
	}
	count := len(sc.sessions)
	sc.mu.Unlock()

	sc.lastSweep.Store(time.Now())
	if removed > 0 {
		sc.swept.Add(int64(removed))
		logging.Info("Swept expired consultations", "removed", removed, "remaining", count)
	}
	metrics.ConsultationSessionsActive.Set(float64(count))
	return removed
}

// CreatedTotal returns the number of consultations created since startup.
func (sc *SessionContainer) CreatedTotal() int64 {
	return sc.created.Load()
}

// SweptTotal returns the number of consultations removed by sweeps.
func (sc *SessionContainer) SweptTotal() int64 {
	return sc.swept.Load()
}

// GetLastSweep returns the timestamp of the last sweep run.
func (sc *SessionContainer) GetLastSweep() time.Time {
	if v := sc.lastSweep.Load(); v != nil {
		if lastSweep, ok := v.(time.Time); ok {
			return lastSweep
		}
	}

	logging.Warn("Could not get the last sweep value")
	return time.Time{}
}

// SetServerStartTime sets the server start time
func (sc *SessionContainer) SetServerStartTime(startTime time.Time) {
	sc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (sc *SessionContainer) GetServerStartTime() time.Time {
	if v := sc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}
