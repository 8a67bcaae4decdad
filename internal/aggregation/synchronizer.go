package aggregation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	coreagg "github.com/aevon-lab/project-tally/internal/core/aggregation"
	"github.com/aevon-lab/project-tally/internal/core/storage"
	"github.com/google/uuid"
)

const (
	MinBatchSize     = 50
	MaxBatchSize     = 400
	DefaultBatchSize = 200

	MinMaxBatches     = 1
	MaxMaxBatches     = 100
	DefaultMaxBatches = 10

	// SyncLeaseName is the lease record guarding cross-process runs.
	SyncLeaseName = "rollup-sync"

	defaultLeaseTTL     = 5 * time.Minute
	leaseReleaseTimeout = 5 * time.Second
)

// ErrSyncInProgress is returned when Sync is called while another call in
// the same process is still running.
var ErrSyncInProgress = errors.New("rollup sync already in progress")

// SyncOptions bounds one Sync call. Out-of-range values are clamped; zero
// selects the default.
type SyncOptions struct {
	BatchSize  int
	MaxBatches int
}

func (o SyncOptions) normalized() SyncOptions {
	n := o
	n.BatchSize = clamp(n.BatchSize, MinBatchSize, MaxBatchSize, DefaultBatchSize)
	n.MaxBatches = clamp(n.MaxBatches, MinMaxBatches, MaxMaxBatches, DefaultMaxBatches)
	return n
}

func clamp(v, lo, hi, def int) int {
	switch {
	case v == 0:
		return def
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// SyncResult summarizes one Sync call.
type SyncResult struct {
	Processed       int        `json:"processed"`
	Skipped         int        `json:"skipped"`
	Batches         int        `json:"batches"`
	LastProcessedAt *time.Time `json:"last_processed_at"`
}

// Config holds the synchronizer settings that do not change per call.
type Config struct {
	Location  *time.Location // day bucketing zone; nil means UTC
	ChunkSize int            // increments per atomic write; clamped to the store limit
	LeaseTTL  time.Duration
}

// Synchronizer folds the event log into the rollup store, resuming from the
// persisted cursor. Delivery is at-least-once: a failed run leaves the cursor
// untouched and the next run re-applies the incomplete batch.
type Synchronizer struct {
	events  storage.EventStore
	rollups storage.RollupStore
	cursors storage.CursorStore
	leases  storage.LeaseStore

	cfg   Config
	owner string

	mu sync.Mutex
}

// NewSynchronizer creates a synchronizer without a cross-process lease.
func NewSynchronizer(
	events storage.EventStore,
	rollups storage.RollupStore,
	cursors storage.CursorStore,
	cfg Config,
) *Synchronizer {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = coreagg.DefaultChunkSize
	}
	if cfg.LeaseTTL <= 0 {
		cfg.LeaseTTL = defaultLeaseTTL
	}
	return &Synchronizer{
		events:  events,
		rollups: rollups,
		cursors: cursors,
		cfg:     cfg,
		owner:   uuid.NewString(),
	}
}

// WithLeases makes every Sync hold SyncLeaseName while it runs.
func (s *Synchronizer) WithLeases(leases storage.LeaseStore) *Synchronizer {
	s.leases = leases
	return s
}

// Cursor returns the persisted cursor, or storage.ErrNotFound before the
// first successful sync.
func (s *Synchronizer) Cursor(ctx context.Context) (coreagg.SyncCursor, error) {
	return s.cursors.GetCursor(ctx)
}

// Sync folds up to MaxBatches batches of new events into the rollups and
// persists the advanced cursor as its last write.
func (s *Synchronizer) Sync(ctx context.Context, opts SyncOptions) (SyncResult, error) {
	if !s.mu.TryLock() {
		return SyncResult{}, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	opts = opts.normalized()

	if s.leases != nil {
		if err := s.leases.AcquireLease(ctx, SyncLeaseName, s.owner, s.cfg.LeaseTTL); err != nil {
			return SyncResult{}, fmt.Errorf("rollup sync: acquire lease: %w", err)
		}
		defer s.releaseLease()
	}

	return s.run(ctx, opts)
}

func (s *Synchronizer) releaseLease() {
	ctx, cancel := context.WithTimeout(context.Background(), leaseReleaseTimeout)
	defer cancel()

	if err := s.leases.ReleaseLease(ctx, SyncLeaseName, s.owner); err != nil {
		slog.Warn("[Synchronizer] Failed to release lease; it will expire",
			"lease", SyncLeaseName,
			"ttl", s.cfg.LeaseTTL,
			"error", err)
	}
}

func (s *Synchronizer) run(ctx context.Context, opts SyncOptions) (SyncResult, error) {
	cursor, err := s.cursors.GetCursor(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return SyncResult{}, fmt.Errorf("rollup sync: read cursor: %w", err)
	}

	position := storage.Position{OccurredAt: cursor.LastProcessedAt, EventID: cursor.LastEventID}
	var result SyncResult

	for result.Batches < opts.MaxBatches {
		if err := ctx.Err(); err != nil {
			return SyncResult{}, fmt.Errorf("rollup sync: %w", err)
		}

		batchNumber := result.Batches + 1
		events, err := s.events.FetchAfter(ctx, position, opts.BatchSize)
		if err != nil {
			return SyncResult{}, fmt.Errorf("rollup sync: fetch batch %d: %w", batchNumber, err)
		}
		if len(events) == 0 {
			break
		}

		acc := coreagg.NewAccumulator(s.cfg.Location)
		for i := range events {
			acc.Add(&events[i])
		}

		incs := acc.Increments()
		if err := s.commit(ctx, batchNumber, incs); err != nil {
			return SyncResult{}, err
		}

		// Events arrive in (occurred_at, id) order, so the last one is the
		// furthest position of the batch.
		position = storage.PositionOf(&events[len(events)-1])
		result.Processed += acc.Folded()
		result.Skipped += acc.Skipped()
		result.Batches++

		slog.Info("[Synchronizer] Batch committed",
			"batch", batchNumber,
			"events", len(events),
			"skipped", acc.Skipped(),
			"increments", len(incs))

		if len(events) < opts.BatchSize {
			break
		}
	}

	if result.Processed == 0 {
		if !cursor.IsZero() {
			last := cursor.LastProcessedAt
			result.LastProcessedAt = &last
		}
		return result, nil
	}

	next := coreagg.SyncCursor{
		LastProcessedAt: position.OccurredAt,
		LastEventID:     position.EventID,
		TotalProcessed:  cursor.TotalProcessed + int64(result.Processed),
	}
	if err := s.cursors.SetCursor(ctx, next); err != nil {
		return SyncResult{}, fmt.Errorf("rollup sync: write cursor: %w", err)
	}

	last := next.LastProcessedAt
	result.LastProcessedAt = &last

	slog.Info("[Synchronizer] Sync complete",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"batches", result.Batches,
		"last_processed_at", last,
		"total_processed", next.TotalProcessed)
	return result, nil
}

// commit writes the batch's increments in chunks, each one atomic write.
func (s *Synchronizer) commit(ctx context.Context, batchNumber int, incs []coreagg.Increment) error {
	size := s.cfg.ChunkSize
	if limit := s.rollups.MaxWriteOps(); limit > 0 && size > limit {
		size = limit
	}

	chunks := coreagg.ChunkIncrements(incs, size)
	for i, chunk := range chunks {
		if err := s.rollups.ApplyIncrements(ctx, chunk); err != nil {
			return fmt.Errorf("rollup sync: batch %d: commit chunk %d/%d: %w", batchNumber, i+1, len(chunks), err)
		}
	}
	return nil
}
