package pivot

import (
	"fmt"
	"sort"
	"strings"
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
)

type group struct {
	row    Row
	actors map[string]struct{}
}

// Aggregate groups events by the ordered tuple of dims and ranks the groups
// by metric, breaking ties by count and then by group key. topN is clamped
// to [MinTopN, MaxTopN]. With no dims every event falls into one global row.
// Events without a timestamp are ignored.
func Aggregate(
	events []v1.ConsumptionEvent,
	profiles map[string]v1.ActorProfile,
	dims []DimensionID,
	metric Metric,
	topN int,
	loc *time.Location,
) ([]Row, error) {
	fns := make([]resolveFunc, len(dims))
	for i, id := range dims {
		dim, ok := resolvers[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown dimension %q", ErrInvalidQuery, id)
		}
		fns[i] = dim.resolve
	}
	if metric != MetricLogs && metric != MetricUniqueActors {
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidQuery, metric)
	}
	if loc == nil {
		loc = time.UTC
	}

	groups := make(map[string]*group)
	values := make([]string, len(dims))
	for i := range events {
		evt := &events[i]
		if !evt.HasTimestamp() {
			continue
		}

		var profile *v1.ActorProfile
		if p, ok := profiles[evt.ActorID]; ok {
			profile = &p
		}
		for j, resolve := range fns {
			values[j] = resolve(evt, profile, loc)
		}

		key := strings.Join(values, keySeparator)
		g, ok := groups[key]
		if !ok {
			g = &group{row: Row{Values: make(map[DimensionID]string, len(dims)), key: key}}
			for j, id := range dims {
				g.row.Values[id] = values[j]
			}
			if metric == MetricUniqueActors {
				g.actors = make(map[string]struct{})
			}
			groups[key] = g
		}

		g.row.Count++
		if g.actors != nil {
			g.actors[evt.ActorID] = struct{}{}
		}
	}

	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		if g.actors != nil {
			distinct := len(g.actors)
			g.row.DistinctActors = &distinct
		}
		rows = append(rows, g.row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if ma, mb := metricValue(a, metric), metricValue(b, metric); ma != mb {
			return ma > mb
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.key < b.key
	})

	if topN = clampTopN(topN, MinTopN); len(rows) > topN {
		rows = rows[:topN]
	}
	return rows, nil
}

func metricValue(r Row, metric Metric) int {
	if metric == MetricUniqueActors && r.DistinctActors != nil {
		return *r.DistinctActors
	}
	return r.Count
}

// clampTopN maps zero to def and clamps everything else to [MinTopN, MaxTopN].
func clampTopN(n, def int) int {
	switch {
	case n == 0:
		return def
	case n < MinTopN:
		return MinTopN
	case n > MaxTopN:
		return MaxTopN
	default:
		return n
	}
}
