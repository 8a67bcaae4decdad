package projection

import (
	coreagg "github.com/aevon-lab/project-tally/internal/core/aggregation"
)

const (
	MinDays     = 1
	MaxDays     = 366
	DefaultDays = 30

	MinTopN     = 1
	MaxTopN     = 500
	DefaultTopN = 50
)

// DayCount is one point of a daily series.
type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// RankingItem is one key of a breakdown, summed over the requested days.
type RankingItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// BreakdownRequest selects a ranking of one dimension kind over a day range.
// Reversed bounds are swapped.
type BreakdownRequest struct {
	Kind     coreagg.DimensionKind
	StartDay string
	EndDay   string
	TopN     int
}

// BreakdownResponse is the body of GET /v1/rollups/breakdown/:kind.
type BreakdownResponse struct {
	Kind     coreagg.DimensionKind `json:"kind"`
	StartDay string                `json:"start"`
	EndDay   string                `json:"end"`
	Items    []RankingItem         `json:"items"`
}

// DailySeriesResponse is the body of the daily total endpoints.
type DailySeriesResponse struct {
	Days []DayCount `json:"days"`
}
