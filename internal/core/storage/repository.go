package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	"github.com/aevon-lab/project-tally/internal/core/aggregation"
)

var (
	// ErrDuplicate is returned when an event with the same id already exists.
	ErrDuplicate = errors.New("event already exists")

	// ErrNotFound is returned when a singleton record has never been written.
	ErrNotFound = errors.New("record not found")

	// ErrLeaseHeld is returned when another owner holds an unexpired lease.
	ErrLeaseHeld = errors.New("lease held by another owner")

	// ErrTooManyOps is returned when a write exceeds the store's atomic limit.
	ErrTooManyOps = errors.New("too many operations in one write")
)

// Position is a point in the (occurred_at, id) ordering of the event log.
type Position struct {
	OccurredAt time.Time
	EventID    string
}

// IsZero reports whether the position is the start of the log.
func (p Position) IsZero() bool {
	return p.OccurredAt.IsZero() && p.EventID == ""
}

// PositionOf returns the log position of an event.
func PositionOf(evt *v1.ConsumptionEvent) Position {
	return Position{OccurredAt: evt.OccurredAt, EventID: evt.ID}
}

// RangeQuery selects events with Start <= occurred_at < End, strictly after
// the After token when one is given.
type RangeQuery struct {
	Start time.Time
	End   time.Time
	After *Position
	Limit int
}

// EventPage is one page of a range scan. Next is nil when the window is
// exhausted.
type EventPage struct {
	Events []v1.ConsumptionEvent
	Next   *Position
}

// EventStore is the append-only consumption event log.
type EventStore interface {
	// Append stores a new event. Returns ErrDuplicate when the id is taken.
	Append(ctx context.Context, event *v1.ConsumptionEvent) error

	// FetchAfter returns up to limit events ordered by (occurred_at, id)
	// ascending, strictly after the given position. A zero position means
	// the beginning of the log. When the position carries no event id, only
	// occurred_at is compared.
	FetchAfter(ctx context.Context, after Position, limit int) ([]v1.ConsumptionEvent, error)

	// FetchRange returns one page of a bounded time window scan.
	FetchRange(ctx context.Context, query RangeQuery) (EventPage, error)
}

// ProfileStore resolves actor profiles by id.
type ProfileStore interface {
	// GetByIDs looks up at most MaxLookupKeys ids in one call. Unknown ids are
	// absent from the result.
	GetByIDs(ctx context.Context, actorIDs []string) (map[string]v1.ActorProfile, error)

	// MaxLookupKeys is the largest id set GetByIDs accepts.
	MaxLookupKeys() int
}

// RollupStore holds the pre-aggregated counters:
// day -> dimension kind -> dimension key -> count.
type RollupStore interface {
	// ApplyIncrements commits all increments atomically. Labels are
	// overwritten, counters are numerically incremented, never replaced.
	// Returns ErrTooManyOps when len(incs) > MaxWriteOps.
	ApplyIncrements(ctx context.Context, incs []aggregation.Increment) error

	// MaxWriteOps is the store's limit for one ApplyIncrements call.
	MaxWriteOps() int

	// ScanGroup returns every entry of kind with startDay <= day <= endDay
	// in a single query.
	ScanGroup(ctx context.Context, kind aggregation.DimensionKind, startDay, endDay string) ([]aggregation.BreakdownEntry, error)

	// LatestDailyTotals returns the most recent limit day totals, day descending.
	LatestDailyTotals(ctx context.Context, limit int) ([]aggregation.DailyTotal, error)

	// DailyTotalsBetween returns day totals for startDay <= day <= endDay,
	// day ascending.
	DailyTotalsBetween(ctx context.Context, startDay, endDay string) ([]aggregation.DailyTotal, error)
}

// CursorStore persists the single synchronizer cursor record.
type CursorStore interface {
	// GetCursor returns ErrNotFound before the first successful sync.
	GetCursor(ctx context.Context) (aggregation.SyncCursor, error)

	// SetCursor merge-writes the cursor. Stores ignore writes that would move
	// LastProcessedAt backwards.
	SetCursor(ctx context.Context, cursor aggregation.SyncCursor) error
}

// LeaseStore guards the synchronizer against concurrent runs across processes.
type LeaseStore interface {
	// AcquireLease takes the named lease for ttl. It succeeds when the lease
	// is free, expired or already owned by owner; otherwise ErrLeaseHeld.
	AcquireLease(ctx context.Context, name, owner string, ttl time.Duration) error

	// ReleaseLease frees the lease if owner still holds it.
	ReleaseLease(ctx context.Context, name, owner string) error
}
