package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler manages periodic recommendation cache warm runs.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a new Scheduler that warms recommendations on an
// interval.
func NewScheduler(
	eng *Engine,
	warmInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if warmInterval <= 0 {
		return nil, fmt.Errorf("warm interval must be positive, got %s", warmInterval)
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+warmInterval.String(),
		s.runWarm,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runWarm() {
	ctx := context.Background()
	s.log.Info("scheduled recommendation warm starting")
	if _, err := s.engine.WarmRecommendations(ctx); err != nil {
		s.log.Error("scheduled recommendation warm failed", "error", err)
	}
}
