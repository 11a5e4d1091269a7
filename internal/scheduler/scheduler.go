package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"VolumeWatch/internal/collector"
	"VolumeWatch/internal/session"
)

// Scheduler runs periodic housekeeping: dropping stale fetch-cache entries
// and purging expired sessions.
type Scheduler struct {
	Cron     *cron.Cron
	Cache    *collector.CachedFetcher
	Sessions *session.Manager
}

// NewScheduler creates a new Scheduler.
func NewScheduler(cache *collector.CachedFetcher, sessions *session.Manager) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Cache:    cache,
		Sessions: sessions,
	}
}

// RegisterAll registers the cache sweep and session purge tasks.
func (s *Scheduler) RegisterAll(sweepCron, purgeCron string) error {
	if _, err := s.Cron.AddFunc(sweepCron, s.sweepCache); err != nil {
		return fmt.Errorf("register cache sweep: %w", err)
	}
	if _, err := s.Cron.AddFunc(purgeCron, s.purgeSessions); err != nil {
		return fmt.Errorf("register session purge: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) sweepCache() {
	if n := s.Cache.Sweep(); n > 0 {
		log.Printf("[INFO] cache sweep removed %d stale entries", n)
	}
}

func (s *Scheduler) purgeSessions() {
	if n := s.Sessions.Purge(); n > 0 {
		log.Printf("[INFO] purged %d expired sessions", n)
	}
}
