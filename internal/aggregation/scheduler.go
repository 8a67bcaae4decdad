package aggregation

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const finalSyncTimeout = 30 * time.Second

// Syncer is the part of the Synchronizer the scheduler drives.
type Syncer interface {
	Sync(ctx context.Context, opts SyncOptions) (SyncResult, error)
}

// Scheduler runs Sync on a periodic interval.
// It is stateless: each tick resumes from whatever cursor the store holds.
type Scheduler struct {
	interval time.Duration
	syncer   Syncer
	opts     SyncOptions
}

// NewScheduler creates a periodic scheduler for the given syncer.
func NewScheduler(interval time.Duration, syncer Syncer, opts SyncOptions) *Scheduler {
	return &Scheduler{
		interval: interval,
		syncer:   syncer,
		opts:     opts.normalized(),
	}
}

// Start begins periodic synchronization.
// Runs until context is cancelled, then performs one final sync.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting rollup sync scheduler",
		"interval", s.interval,
		"batch_size", s.opts.BatchSize,
		"max_batches", s.opts.MaxBatches,
	)

	// Catch up with any backlog before the first tick.
	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), finalSyncTimeout)
			defer cancel()

			slog.Info("[Scheduler] Running final sync before shutdown...")
			s.runOnce(shutdownCtx)
			slog.Info("[Scheduler] Final sync complete")

			return nil
		}
	}
}

// runOnce performs one Sync. A run that hits MaxBatches leaves the rest of
// the backlog to the next tick.
func (s *Scheduler) runOnce(ctx context.Context) {
	result, err := s.syncer.Sync(ctx, s.opts)
	if err != nil {
		if errors.Is(err, ErrSyncInProgress) {
			slog.Info("[Scheduler] Sync already running, skipping tick")
			return
		}
		slog.Error("[Scheduler] Rollup sync failed", "error", err)
		return
	}

	if result.Batches >= s.opts.MaxBatches {
		slog.Warn("[Scheduler] Max batches reached, pausing sync",
			"max_batches", s.opts.MaxBatches,
			"processed", result.Processed,
			"note", "Will resume on next tick",
		)
	}
}
