// Package scheduler provides background maintenance for the consultation API.
// It runs cron-based expiry sweeps over the session store and monitors
// session growth using dependency injection.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/remedia/remedia-api/interfaces"
	"github.com/remedia/remedia-api/logging"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles session expiry sweeps and growth monitoring
type Scheduler struct {
	store      interfaces.SessionStore
	sessionTTL time.Duration
	scheduler  *gocron.Scheduler
	done       chan struct{}
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(store interfaces.SessionStore, sessionTTL time.Duration) *Scheduler {
	return &Scheduler{
		store:      store,
		sessionTTL: sessionTTL,
		scheduler:  gocron.NewScheduler(time.Local),
		done:       make(chan struct{}),
	}
}

// Start initializes the scheduler with expiry sweeps and growth monitoring
func (s *Scheduler) Start() error {
	// Sweep expired sessions every 5 minutes
	_, err := s.scheduler.Every(5).Minutes().Do(func() {
		s.sweep()
	})

	if err != nil {
		logging.Error("Failed to schedule session sweeps", "error", err)
		return fmt.Errorf("failed to schedule session sweeps: %w", err)
	}

	s.scheduler.StartAsync()

	// Start growth monitoring
	s.startGrowthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	close(s.done)
	s.scheduler.Stop()
}

// sweep removes every session idle longer than the configured TTL
func (s *Scheduler) sweep() {
	start := time.Now()
	removed := s.store.SweepExpired(s.sessionTTL)

	if removed > 0 {
		logging.Info("Session sweep completed",
			"removed", removed,
			"remaining", s.store.Count(),
			"duration", time.Since(start).String())
	}
}

// startGrowthMonitoring watches for a session map that keeps growing,
// which would indicate the sweeps are not keeping up
func (s *Scheduler) startGrowthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				created := s.store.CreatedTotal()
				swept := s.store.SweptTotal()
				active := s.store.Count()
				if active > 0 && int64(active) > (created-swept) {
					logging.Warn("Session accounting mismatch",
						"active", active,
						"created", created,
						"swept", swept)
				}
				if active > 10000 {
					logging.Warn("Session count is unusually high", "active", active)
				}
			}
		}
	}()
}
