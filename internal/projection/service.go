package projection

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	coreagg "github.com/aevon-lab/project-tally/internal/core/aggregation"
	"github.com/aevon-lab/project-tally/internal/core/bucket"
	"github.com/aevon-lab/project-tally/internal/core/storage"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid rollup query")

// Service is the read side of the rollups. It never scans raw events.
type Service struct {
	rollups storage.RollupStore
	loc     *time.Location
	nowFn   func() time.Time
}

// NewService creates a rollup reader. loc must match the synchronizer's day
// bucketing zone; nil means UTC.
func NewService(rollups storage.RollupStore, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		rollups: rollups,
		loc:     loc,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// DailyTotals returns the most recent days buckets, oldest first. Days with
// no events are absent. days is clamped to [MinDays, MaxDays].
func (s *Service) DailyTotals(ctx context.Context, days int) ([]DayCount, error) {
	days = clampInt(days, MinDays, MaxDays, DefaultDays)

	totals, err := s.rollups.LatestDailyTotals(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("read latest daily totals: %w", err)
	}

	out := make([]DayCount, len(totals))
	for i, total := range totals {
		out[len(totals)-1-i] = DayCount{Day: total.Day, Count: total.Count}
	}
	return out, nil
}

// DailyTotalsRange returns one point per day of [startDay, endDay], zero for
// days without events.
func (s *Service) DailyTotalsRange(ctx context.Context, startDay, endDay string) ([]DayCount, error) {
	start, end, err := s.dayRange(startDay, endDay)
	if err != nil {
		return nil, err
	}
	startDay, endDay = bucket.DayKey(start, s.loc), bucket.DayKey(end, s.loc)

	totals, err := s.rollups.DailyTotalsBetween(ctx, startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("read daily totals %s..%s: %w", startDay, endDay, err)
	}

	counts := make(map[string]int64, len(totals))
	for _, total := range totals {
		counts[total.Day] = total.Count
	}

	series := emptyDailyBuckets(start, end, s.loc)
	for i := range series {
		series[i].Count = counts[series[i].Day]
	}
	return series, nil
}

// Breakdown ranks the keys of one dimension kind over a day range. Counts are
// summed across days and each key keeps the label of its latest day.
func (s *Service) Breakdown(ctx context.Context, req BreakdownRequest) (*BreakdownResponse, error) {
	kind, err := coreagg.ParseDimensionKind(string(req.Kind))
	if err != nil {
		return nil, invalidQueryf("%v", err)
	}

	start, end, err := s.dayRange(req.StartDay, req.EndDay)
	if err != nil {
		return nil, err
	}
	startDay, endDay := bucket.DayKey(start, s.loc), bucket.DayKey(end, s.loc)

	entries, err := s.rollups.ScanGroup(ctx, kind, startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("scan %s breakdown %s..%s: %w", kind, startDay, endDay, err)
	}

	return &BreakdownResponse{
		Kind:     kind,
		StartDay: startDay,
		EndDay:   endDay,
		Items:    rankEntries(entries, clampInt(req.TopN, MinTopN, MaxTopN, DefaultTopN)),
	}, nil
}

// dayRange parses and orders a day range. An empty end means today in the
// reader's zone; an empty start means DefaultDays back from end.
func (s *Service) dayRange(startDay, endDay string) (time.Time, time.Time, error) {
	var (
		start, end time.Time
		err        error
	)

	if endDay == "" {
		end = bucket.StartOfDay(s.nowFn(), s.loc)
	} else if end, err = bucket.ParseDay(endDay, s.loc); err != nil {
		return time.Time{}, time.Time{}, invalidQueryf("end: %v", err)
	}

	if startDay == "" {
		start = end.AddDate(0, 0, -(DefaultDays - 1))
	} else if start, err = bucket.ParseDay(startDay, s.loc); err != nil {
		return time.Time{}, time.Time{}, invalidQueryf("start: %v", err)
	}

	if start.After(end) {
		start, end = end, start
	}
	if end.Sub(start) > time.Duration(MaxDays)*24*time.Hour {
		return time.Time{}, time.Time{}, invalidQueryf("range exceeds %d days", MaxDays)
	}
	return start, end, nil
}

type ranked struct {
	item     RankingItem
	labelDay string
}

func rankEntries(entries []coreagg.BreakdownEntry, topN int) []RankingItem {
	byKey := make(map[string]*ranked, len(entries))
	for _, entry := range entries {
		r, ok := byKey[entry.Key]
		if !ok {
			r = &ranked{item: RankingItem{Key: entry.Key}}
			byKey[entry.Key] = r
		}
		r.item.Count += entry.Count
		if entry.Label != "" && entry.Day >= r.labelDay {
			r.item.Label = entry.Label
			r.labelDay = entry.Day
		}
	}

	items := make([]RankingItem, 0, len(byKey))
	for _, r := range byKey {
		if r.item.Label == "" {
			r.item.Label = r.item.Key
		}
		items = append(items, r.item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Key < items[j].Key
	})

	if len(items) > topN {
		items = items[:topN]
	}
	return items
}

func clampInt(v, lo, hi, def int) int {
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

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
