// Package memory is an in-process implementation of every storage contract.
// It backs "database.type: memory" for local development and the scenario
// tests of the synchronizer, reader and pivot engine.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	"github.com/aevon-lab/project-tally/internal/core/aggregation"
	"github.com/aevon-lab/project-tally/internal/core/storage"
	"github.com/google/uuid"
)

const defaultLookupKeys = 10

type breakdownKey struct {
	kind aggregation.DimensionKind
	day  string
	key  string
}

type lease struct {
	owner     string
	expiresAt time.Time
}

// Store keeps events, profiles, counters, the cursor and leases in maps.
type Store struct {
	mu sync.RWMutex

	events    []v1.ConsumptionEvent // kept sorted by (occurred_at, id)
	eventIDs  map[string]struct{}
	profiles  map[string]v1.ActorProfile
	breakdown map[breakdownKey]aggregation.BreakdownEntry
	totals    map[string]aggregation.DailyTotal
	cursor    *aggregation.SyncCursor
	leases    map[string]lease

	lookupKeys int
	nowFn      func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		eventIDs:   make(map[string]struct{}),
		profiles:   make(map[string]v1.ActorProfile),
		breakdown:  make(map[breakdownKey]aggregation.BreakdownEntry),
		totals:     make(map[string]aggregation.DailyTotal),
		leases:     make(map[string]lease),
		lookupKeys: defaultLookupKeys,
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}

// WithLookupKeys overrides the multi-key lookup limit.
func (s *Store) WithLookupKeys(n int) *Store {
	if n > 0 {
		s.lookupKeys = n
	}
	return s
}

// Append implements storage.EventStore.
func (s *Store) Append(ctx context.Context, event *v1.ConsumptionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if _, exists := s.eventIDs[event.ID]; exists {
		return storage.ErrDuplicate
	}

	stored := *event
	if event.Geo != nil {
		geo := *event.Geo
		stored.Geo = &geo
	}

	idx := sort.Search(len(s.events), func(i int) bool {
		return positionLess(storage.PositionOf(&stored), storage.PositionOf(&s.events[i]))
	})
	s.events = append(s.events, v1.ConsumptionEvent{})
	copy(s.events[idx+1:], s.events[idx:])
	s.events[idx] = stored
	s.eventIDs[stored.ID] = struct{}{}
	return nil
}

// FetchAfter implements storage.EventStore.
func (s *Store) FetchAfter(ctx context.Context, after storage.Position, limit int) ([]v1.ConsumptionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []v1.ConsumptionEvent
	for i := range s.events {
		evt := s.events[i]
		if !after.IsZero() && !isAfter(storage.PositionOf(&evt), after) {
			continue
		}
		result = append(result, evt)
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

// FetchRange implements storage.EventStore.
func (s *Store) FetchRange(ctx context.Context, query storage.RangeQuery) (storage.EventPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.EventPage{}, err
	}
	if query.Limit <= 0 {
		return storage.EventPage{}, fmt.Errorf("fetch range: limit must be > 0")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var page storage.EventPage
	for i := range s.events {
		evt := s.events[i]
		if !evt.HasTimestamp() || evt.OccurredAt.Before(query.Start) || !evt.OccurredAt.Before(query.End) {
			continue
		}
		if query.After != nil && !positionLess(*query.After, storage.PositionOf(&evt)) {
			continue
		}
		page.Events = append(page.Events, evt)
		if len(page.Events) == query.Limit {
			next := storage.PositionOf(&evt)
			page.Next = &next
			break
		}
	}
	return page, nil
}

// PutProfile stores or replaces an actor profile.
func (s *Store) PutProfile(profile v1.ActorProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ActorID] = profile
}

// GetByIDs implements storage.ProfileStore.
func (s *Store) GetByIDs(ctx context.Context, actorIDs []string) (map[string]v1.ActorProfile, error) {
	if len(actorIDs) > s.lookupKeys {
		return nil, fmt.Errorf("get profiles: %d ids exceeds lookup limit %d", len(actorIDs), s.lookupKeys)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]v1.ActorProfile, len(actorIDs))
	for _, id := range actorIDs {
		if p, ok := s.profiles[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

// MaxLookupKeys implements storage.ProfileStore.
func (s *Store) MaxLookupKeys() int {
	return s.lookupKeys
}

// ApplyIncrements implements storage.RollupStore. The whole slice is applied
// under one lock, so readers never observe half of a write.
func (s *Store) ApplyIncrements(ctx context.Context, incs []aggregation.Increment) error {
	if len(incs) > aggregation.MaxWriteOps {
		return fmt.Errorf("apply increments: %d ops: %w", len(incs), storage.ErrTooManyOps)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, inc := range incs {
		if inc.IsDailyTotal() {
			total := s.totals[inc.Day]
			total.Day = inc.Day
			total.Date = inc.Date
			total.Count += inc.Delta
			s.totals[inc.Day] = total
			continue
		}

		key := breakdownKey{kind: inc.Kind, day: inc.Day, key: inc.Key}
		entry := s.breakdown[key]
		entry.Day = inc.Day
		entry.Kind = inc.Kind
		entry.Key = inc.Key
		entry.Label = inc.Label
		entry.Count += inc.Delta
		s.breakdown[key] = entry
	}
	return nil
}

// MaxWriteOps implements storage.RollupStore.
func (s *Store) MaxWriteOps() int {
	return aggregation.MaxWriteOps
}

// ScanGroup implements storage.RollupStore.
func (s *Store) ScanGroup(ctx context.Context, kind aggregation.DimensionKind, startDay, endDay string) ([]aggregation.BreakdownEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []aggregation.BreakdownEntry
	for key, entry := range s.breakdown {
		if key.kind != kind || key.day < startDay || key.day > endDay {
			continue
		}
		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		return result[i].Key < result[j].Key
	})
	return result, nil
}

// LatestDailyTotals implements storage.RollupStore.
func (s *Store) LatestDailyTotals(ctx context.Context, limit int) ([]aggregation.DailyTotal, error) {
	all := s.sortedTotals()
	sort.Slice(all, func(i, j int) bool { return all[i].Day > all[j].Day })
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// DailyTotalsBetween implements storage.RollupStore.
func (s *Store) DailyTotalsBetween(ctx context.Context, startDay, endDay string) ([]aggregation.DailyTotal, error) {
	var result []aggregation.DailyTotal
	for _, total := range s.sortedTotals() {
		if total.Day >= startDay && total.Day <= endDay {
			result = append(result, total)
		}
	}
	return result, nil
}

func (s *Store) sortedTotals() []aggregation.DailyTotal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]aggregation.DailyTotal, 0, len(s.totals))
	for _, total := range s.totals {
		all = append(all, total)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Day < all[j].Day })
	return all
}

// GetCursor implements storage.CursorStore.
func (s *Store) GetCursor(ctx context.Context) (aggregation.SyncCursor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cursor == nil {
		return aggregation.SyncCursor{}, storage.ErrNotFound
	}
	return *s.cursor, nil
}

// SetCursor implements storage.CursorStore.
func (s *Store) SetCursor(ctx context.Context, cursor aggregation.SyncCursor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor != nil && cursor.LastProcessedAt.Before(s.cursor.LastProcessedAt) {
		return nil
	}
	if cursor.UpdatedAt.IsZero() {
		cursor.UpdatedAt = s.nowFn()
	}
	s.cursor = &cursor
	return nil
}

// AcquireLease implements storage.LeaseStore.
func (s *Store) AcquireLease(ctx context.Context, name, owner string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	if held, ok := s.leases[name]; ok && held.owner != owner && now.Before(held.expiresAt) {
		return storage.ErrLeaseHeld
	}
	s.leases[name] = lease{owner: owner, expiresAt: now.Add(ttl)}
	return nil
}

// ReleaseLease implements storage.LeaseStore.
func (s *Store) ReleaseLease(ctx context.Context, name, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if held, ok := s.leases[name]; ok && held.owner == owner {
		delete(s.leases, name)
	}
	return nil
}

// Ping always succeeds; it lets the store stand in for a database in health checks.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func positionLess(a, b storage.Position) bool {
	if !a.OccurredAt.Equal(b.OccurredAt) {
		return a.OccurredAt.Before(b.OccurredAt)
	}
	return a.EventID < b.EventID
}

// isAfter mirrors the SQL cursor predicate: tuple comparison when the cursor
// carries an id, plain timestamp comparison otherwise.
func isAfter(p, cursor storage.Position) bool {
	if cursor.EventID == "" {
		return p.OccurredAt.After(cursor.OccurredAt)
	}
	return positionLess(cursor, p)
}
