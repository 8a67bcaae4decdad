package aggregation

import (
	"fmt"
	"strings"
	"time"
)

// DimensionKind is one family of rollup counters kept per day.
type DimensionKind string

const (
	KindProduct  DimensionKind = "product"
	KindDevice   DimensionKind = "device"
	KindLocation DimensionKind = "location"
	KindPair     DimensionKind = "pair"
	KindHour     DimensionKind = "hour"
	KindWeekday  DimensionKind = "weekday"
	KindGeoCell  DimensionKind = "geo_cell"
)

// Kinds lists every kind the synchronizer maintains, in a stable order.
var Kinds = []DimensionKind{
	KindProduct,
	KindDevice,
	KindLocation,
	KindPair,
	KindHour,
	KindWeekday,
	KindGeoCell,
}

var kindAliases = map[string]DimensionKind{
	"product":   KindProduct,
	"products":  KindProduct,
	"device":    KindDevice,
	"devices":   KindDevice,
	"location":  KindLocation,
	"locations": KindLocation,
	"pair":      KindPair,
	"pairs":     KindPair,
	"hour":      KindHour,
	"hours":     KindHour,
	"weekday":   KindWeekday,
	"weekdays":  KindWeekday,
	"geo_cell":  KindGeoCell,
	"geo_cells": KindGeoCell,
	"geocell":   KindGeoCell,
	"geocells":  KindGeoCell,
}

// ParseDimensionKind accepts singular, plural and legacy spellings.
func ParseDimensionKind(s string) (DimensionKind, error) {
	kind, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown dimension kind %q", s)
	}
	return kind, nil
}

// BreakdownEntry is one counter: (day, kind, key) -> count.
// For a fixed (day, kind) the counts sum to that day's DailyTotal when every
// event was folded exactly once.
type BreakdownEntry struct {
	Day   string
	Kind  DimensionKind
	Key   string
	Label string
	Count int64
}

// DailyTotal counts every folded event of one calendar day.
// Only ever grows.
type DailyTotal struct {
	Day   string    // YYYY-MM-DD in the configured zone
	Date  time.Time // start of that day
	Count int64
}

// SyncCursor records how far the synchronizer has folded the event log.
// It is written last in a successful sync and only moves forward.
type SyncCursor struct {
	LastProcessedAt time.Time
	LastEventID     string // tie-breaker among events sharing LastProcessedAt
	TotalProcessed  int64
	UpdatedAt       time.Time
}

// IsZero reports whether the cursor has never been written.
func (c SyncCursor) IsZero() bool {
	return c.LastProcessedAt.IsZero() && c.LastEventID == "" && c.TotalProcessed == 0
}

// Increment is a single merge-write: overwrite the label, add Delta to the
// counter. A zero Kind targets the DailyTotal of Day.
type Increment struct {
	Day   string
	Date  time.Time // start of day; only used for daily totals
	Kind  DimensionKind
	Key   string
	Label string
	Delta int64
}

// IsDailyTotal reports whether the increment targets the day total.
func (i Increment) IsDailyTotal() bool {
	return i.Kind == ""
}
