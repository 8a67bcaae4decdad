package aggregation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSyncer struct {
	mu    sync.Mutex
	calls []SyncOptions
	err   error
}

func (f *fakeSyncer) Sync(ctx context.Context, opts SyncOptions) (SyncResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, opts)
	return SyncResult{Batches: opts.MaxBatches}, f.err
}

func (f *fakeSyncer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestScheduler_RunsOnStartTickAndShutdown(t *testing.T) {
	syncer := &fakeSyncer{}
	scheduler := NewScheduler(10*time.Millisecond, syncer, SyncOptions{BatchSize: 5000})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Start(ctx) }()

	require.Eventually(t, func() bool { return syncer.count() >= 3 }, time.Second, 5*time.Millisecond)
	before := syncer.count()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}

	assert.GreaterOrEqual(t, syncer.count(), before+1)
	for _, opts := range syncer.calls {
		assert.Equal(t, MaxBatchSize, opts.BatchSize)
		assert.Equal(t, DefaultMaxBatches, opts.MaxBatches)
	}
}

func TestScheduler_KeepsRunningAfterErrors(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("boom")}
	scheduler := NewScheduler(5*time.Millisecond, syncer, SyncOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Start(ctx) }()

	require.Eventually(t, func() bool { return syncer.count() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestScheduler_SkipsOverlappingRun(t *testing.T) {
	syncer := &fakeSyncer{err: ErrSyncInProgress}
	scheduler := NewScheduler(time.Hour, syncer, SyncOptions{})

	scheduler.runOnce(context.Background())
	assert.Equal(t, 1, syncer.count())
}
