package aggregation

import (
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	"github.com/aevon-lab/project-tally/internal/core/bucket"
)

// Dimension is one (kind, key, label) an event contributes a count to.
type Dimension struct {
	Kind  DimensionKind
	Key   string
	Label string
}

// EventDimensions derives the day bucket and every rollup dimension of evt
// in loc. ok is false when the event has no usable timestamp.
//
// geo_cell is only derived when both coordinates are present and valid.
func EventDimensions(evt *v1.ConsumptionEvent, loc *time.Location) (day string, dims []Dimension, ok bool) {
	if !evt.HasTimestamp() {
		return "", nil, false
	}

	productKey := bucket.NormalizeToKey(evt.Product)
	deviceKey := bucket.NormalizeToKey(evt.Device)
	hourKey := bucket.HourKey(evt.OccurredAt, loc)
	weekdayKey := bucket.WeekdayKey(evt.OccurredAt, loc)

	dims = make([]Dimension, 0, len(Kinds))
	dims = append(dims,
		Dimension{Kind: KindProduct, Key: productKey, Label: bucket.DisplayLabel(evt.Product)},
		Dimension{Kind: KindDevice, Key: deviceKey, Label: bucket.DisplayLabel(evt.Device)},
		Dimension{Kind: KindLocation, Key: bucket.NormalizeToKey(evt.Location), Label: bucket.DisplayLabel(evt.Location)},
		Dimension{Kind: KindPair, Key: bucket.PairKey(productKey, deviceKey), Label: bucket.PairLabel(evt.Product, evt.Device)},
		Dimension{Kind: KindHour, Key: hourKey, Label: bucket.HourLabel(hourKey)},
		Dimension{Kind: KindWeekday, Key: weekdayKey, Label: bucket.WeekdayLabel(weekdayKey)},
	)

	if evt.Geo != nil {
		if cell, valid := bucket.GeoCell(evt.Geo.Lat, evt.Geo.Lng); valid {
			dims = append(dims, Dimension{Kind: KindGeoCell, Key: cell.ID, Label: cell.Label()})
		}
	}

	return bucket.DayKey(evt.OccurredAt, loc), dims, true
}

type pendingKey struct {
	day  string
	kind DimensionKind
	key  string
}

// Accumulator folds a batch of events into merge increments: one per distinct
// (day, kind, key) plus one day total per day, each carrying the number of
// events that hit it.
type Accumulator struct {
	loc *time.Location

	order     []pendingKey
	pending   map[pendingKey]*Increment
	dayOrder  []string
	dayTotals map[string]*Increment

	folded  int
	skipped int
}

// NewAccumulator creates an empty accumulator bucketing days in loc.
func NewAccumulator(loc *time.Location) *Accumulator {
	if loc == nil {
		loc = time.UTC
	}
	return &Accumulator{
		loc:       loc,
		pending:   make(map[pendingKey]*Increment),
		dayTotals: make(map[string]*Increment),
	}
}

// Add folds one event. It returns false and counts the event as skipped when
// it has no timestamp.
func (a *Accumulator) Add(evt *v1.ConsumptionEvent) bool {
	day, dims, ok := EventDimensions(evt, a.loc)
	if !ok {
		a.skipped++
		return false
	}

	for _, dim := range dims {
		k := pendingKey{day: day, kind: dim.Kind, key: dim.Key}
		inc, exists := a.pending[k]
		if !exists {
			inc = &Increment{Day: day, Kind: dim.Kind, Key: dim.Key}
			a.pending[k] = inc
			a.order = append(a.order, k)
		}
		inc.Label = dim.Label
		inc.Delta++
	}

	total, exists := a.dayTotals[day]
	if !exists {
		total = &Increment{Day: day, Date: bucket.StartOfDay(evt.OccurredAt, a.loc)}
		a.dayTotals[day] = total
		a.dayOrder = append(a.dayOrder, day)
	}
	total.Delta++

	a.folded++
	return true
}

// Increments returns the pending increments in first-seen order, day totals
// last.
func (a *Accumulator) Increments() []Increment {
	out := make([]Increment, 0, len(a.order)+len(a.dayOrder))
	for _, k := range a.order {
		out = append(out, *a.pending[k])
	}
	for _, day := range a.dayOrder {
		out = append(out, *a.dayTotals[day])
	}
	return out
}

// Folded is the number of events added successfully.
func (a *Accumulator) Folded() int { return a.folded }

// Skipped is the number of events rejected for lack of a timestamp.
func (a *Accumulator) Skipped() int { return a.skipped }
