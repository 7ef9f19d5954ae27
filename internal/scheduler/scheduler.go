package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"carRental/internal/config"
	"carRental/internal/lib/logger/sl"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

type SessionSweeper interface {
	Sweep() int
}

type AttemptExpirer interface {
	ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Scheduler runs the periodic housekeeping jobs.
type Scheduler struct {
	log        *slog.Logger
	cron       *cron.Cron
	sessions   SessionSweeper
	attempts   AttemptExpirer
	attemptTTL time.Duration
}

// New registers the jobs. attempts may be nil when no ledger is configured.
func New(log *slog.Logger, cfg config.Scheduler, sessions SessionSweeper, attempts AttemptExpirer) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	s := &Scheduler{
		log:        log.With(slog.String("component", "scheduler")),
		cron:       c,
		sessions:   sessions,
		attempts:   attempts,
		attemptTTL: cfg.AttemptTTL,
	}

	if _, err := c.AddFunc(cfg.SweepSessions, s.sweepSessions); err != nil {
		return nil, fmt.Errorf("register session sweep %q: %w", cfg.SweepSessions, err)
	}

	if attempts != nil {
		if _, err := c.AddFunc(cfg.ExpireAttempts, s.expireAttempts); err != nil {
			return nil, fmt.Errorf("register attempt expiry %q: %w", cfg.ExpireAttempts, err)
		}
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for running jobs to finish or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		s.log.Info("scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out")
	}
}

func (s *Scheduler) sweepSessions() {
	if n := s.sessions.Sweep(); n > 0 {
		s.log.Info("expired sessions ended", slog.Int("count", n))
	}
}

func (s *Scheduler) expireAttempts() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.attempts.ExpireStale(ctx, s.attemptTTL)
	if err != nil {
		s.log.Error("failed to expire checkout attempts", sl.Err(err))
		return
	}

	if n > 0 {
		s.log.Info("stale checkout attempts expired", slog.Int64("count", n))
	}
}
