package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/heartmarshall/studyquest-backend/internal/config"
)

// comboSweeper expires combos whose window has passed.
type comboSweeper interface {
	ExpireCombos(ctx context.Context) (int, error)
}

// Jobs runs periodic background work in-process.
type Jobs struct {
	scheduler *gocron.Scheduler
	log       *slog.Logger
}

// NewJobs registers the enabled jobs. Call Start to run them.
func NewJobs(cfg config.JobsConfig, sweeper comboSweeper, logger *slog.Logger) (*Jobs, error) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	j := &Jobs{scheduler: s, log: logger.With("component", "jobs")}

	if cfg.ComboSweepEnabled {
		timeout := cfg.ComboSweepInterval
		if _, err := s.Every(cfg.ComboSweepInterval).Do(j.sweepCombos, sweeper, timeout); err != nil {
			return nil, fmt.Errorf("schedule combo sweep: %w", err)
		}
	}

	return j, nil
}

// Len reports how many jobs are registered.
func (j *Jobs) Len() int { return j.scheduler.Len() }

// Start runs the scheduler in the background.
func (j *Jobs) Start() {
	j.scheduler.StartAsync()
	j.log.Info("background jobs started", slog.Int("jobs", j.scheduler.Len()))
}

// Stop stops the scheduler and waits for running jobs.
func (j *Jobs) Stop() {
	j.scheduler.Stop()
}

// sweepCombos is the fallback for lost per-user timers, e.g. after a restart.
func (j *Jobs) sweepCombos(sweeper comboSweeper, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	n, err := sweeper.ExpireCombos(ctx)
	if err != nil {
		j.log.ErrorContext(ctx, "combo sweep failed", slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		j.log.InfoContext(ctx, "combo sweep expired combos", slog.Int("expired", n))
	}
}
