package pivot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	"github.com/aevon-lab/project-tally/internal/core/storage"
	"github.com/aevon-lab/project-tally/internal/core/storage/memory"
	storagemocks "github.com/aevon-lab/project-tally/internal/mocks/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seedEvents appends n events one second apart starting at base, in log
// order so the memory store never shifts.
func seedEvents(t *testing.T, store *memory.Store, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		evt := v1.ConsumptionEvent{
			ID:         fmt.Sprintf("e%05d", i),
			ActorID:    fmt.Sprintf("u%d", i%25),
			Product:    []string{"Flower", "Hash", "Edible"}[i%3],
			OccurredAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, store.Append(context.Background(), &evt))
	}
}

// countingEvents records the limit of every FetchRange call.
type countingEvents struct {
	storage.EventStore
	limits []int
}

func (c *countingEvents) FetchRange(ctx context.Context, q storage.RangeQuery) (storage.EventPage, error) {
	c.limits = append(c.limits, q.Limit)
	return c.EventStore.FetchRange(ctx, q)
}

func TestLoadWindow_MaxDocsBoundsMemory(t *testing.T) {
	store := memory.NewStore()
	seedEvents(t, store, 10000)

	events := &countingEvents{EventStore: store}
	engine := NewEngine(events, store, Config{})

	window, err := engine.LoadWindow(context.Background(), base, base.Add(24*time.Hour), 1000, 50)
	require.NoError(t, err)
	assert.Len(t, window.Events, 50)
	assert.True(t, window.Truncated)
	assert.Equal(t, []int{50}, events.limits)
}

func TestLoadWindow_PagesUntilExhausted(t *testing.T) {
	store := memory.NewStore()
	seedEvents(t, store, 260)

	events := &countingEvents{EventStore: store}
	engine := NewEngine(events, store, Config{})

	window, err := engine.LoadWindow(context.Background(), base, base.Add(time.Hour), 10, 1000)
	require.NoError(t, err)
	assert.Len(t, window.Events, 260)
	assert.False(t, window.Truncated)

	// pageSize 10 is raised to MinPageSize.
	assert.Equal(t, []int{50, 50, 50, 50, 50, 50}, events.limits)

	for i := 1; i < len(window.Events); i++ {
		assert.True(t, window.Events[i-1].OccurredAt.Before(window.Events[i].OccurredAt))
	}
}

func TestLoadWindow_LastPageShrinksToRemaining(t *testing.T) {
	store := memory.NewStore()
	seedEvents(t, store, 500)

	events := &countingEvents{EventStore: store}
	engine := NewEngine(events, store, Config{})

	window, err := engine.LoadWindow(context.Background(), base, base.Add(time.Hour), 100, 230)
	require.NoError(t, err)
	assert.Len(t, window.Events, 230)
	assert.True(t, window.Truncated)
	assert.Equal(t, []int{100, 100, 30}, events.limits)
}

func TestLoadWindow_RespectsBounds(t *testing.T) {
	store := memory.NewStore()
	seedEvents(t, store, 120)

	engine := NewEngine(store, store, Config{MaxDocs: 100000})

	window, err := engine.LoadWindow(context.Background(), base.Add(10*time.Second), base.Add(20*time.Second), 0, 0)
	require.NoError(t, err)
	require.Len(t, window.Events, 10)
	assert.Equal(t, "e00010", window.Events[0].ID)
	assert.Equal(t, "e00019", window.Events[9].ID)
	assert.Equal(t, MaxMaxDocs, engine.cfg.MaxDocs)
}

func TestLoadWindow_StoreError(t *testing.T) {
	events := storagemocks.NewEventStore(t)
	events.EXPECT().
		FetchRange(mock.Anything, mock.AnythingOfType("storage.RangeQuery")).
		Return(storage.EventPage{}, errors.New("deadline exceeded")).
		Once()

	_, err := NewEngine(events, storagemocks.NewProfileStore(t), Config{}).
		LoadWindow(context.Background(), base, base.Add(time.Hour), 100, 100)
	require.ErrorContains(t, err, "load window page 1")
}
