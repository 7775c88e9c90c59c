package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Job is a named unit of periodic work.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Guard grants an exclusive lease on a job across instances.
type Guard interface {
	Acquire(ctx context.Context, job string) (release func(), ok bool, err error)
}

// Scheduler runs its jobs in order on every tick.
type Scheduler struct {
	jobs     []Job
	guard    Guard
	logger   zerolog.Logger
	interval time.Duration
}

// Config for Scheduler.
type Config struct {
	Jobs     []Job
	Guard    Guard // optional
	Logger   zerolog.Logger
	Interval time.Duration // Tick interval
}

// New creates a new Scheduler.
func New(cfg Config) *Scheduler {
	if cfg.Interval == 0 {
		cfg.Interval = time.Hour
	}

	return &Scheduler{
		jobs:     cfg.Jobs,
		guard:    cfg.Guard,
		logger:   cfg.Logger,
		interval: cfg.Interval,
	}
}

// Start runs the jobs immediately and then on every tick until ctx is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info().
		Int("jobs", len(s.jobs)).
		Dur("interval", s.interval).
		Msg("scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("scheduler shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce runs every job once. A failing job does not stop the ones after it.
func (s *Scheduler) runOnce(ctx context.Context) {
	for _, job := range s.jobs {
		if ctx.Err() != nil {
			return
		}
		if err := s.run(ctx, job); err != nil {
			s.logger.Error().Err(err).Str("job", job.Name).Msg("scheduled job failed")
		}
	}
}

func (s *Scheduler) run(ctx context.Context, job Job) error {
	if s.guard != nil {
		release, ok, err := s.guard.Acquire(ctx, job.Name)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Debug().Str("job", job.Name).Msg("job lease held elsewhere, skipping")
			return nil
		}
		defer release()
	}

	s.logger.Debug().Str("job", job.Name).Msg("running scheduled job")
	return job.Run(ctx)
}
