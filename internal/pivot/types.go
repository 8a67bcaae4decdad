// Package pivot computes ad-hoc group-by tables over a bounded window of raw
// events. Nothing it computes is persisted.
package pivot

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid pivot query")

// DimensionID names one grouping dimension. The set is closed: every value
// has exactly one resolver.
type DimensionID string

const (
	DimProduct  DimensionID = "product"
	DimDevice   DimensionID = "device"
	DimLocation DimensionID = "location"
	DimPlatform DimensionID = "platform"
	DimPair     DimensionID = "pair"
	DimDay      DimensionID = "day"
	DimHour     DimensionID = "hour"
	DimWeekday  DimensionID = "weekday"
	DimGeoCell  DimensionID = "geo_cell"

	DimGender  DimensionID = "gender"
	DimCity    DimensionID = "city"
	DimCountry DimensionID = "country"
	DimActor   DimensionID = "actor"
)

// ParseDimension accepts the canonical id in any case, plus "geocell".
func ParseDimension(s string) (DimensionID, error) {
	id := DimensionID(strings.ToLower(strings.TrimSpace(s)))
	if id == "geocell" {
		id = DimGeoCell
	}
	if _, ok := resolvers[id]; !ok {
		return "", fmt.Errorf("%w: unknown dimension %q", ErrInvalidQuery, s)
	}
	return id, nil
}

// Metric selects what a row is ranked by.
type Metric string

const (
	MetricLogs         Metric = "logs"
	MetricUniqueActors Metric = "unique_actors"
)

// ParseMetric defaults an empty metric to MetricLogs.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "logs":
		return MetricLogs, nil
	case "unique_actors", "uniqueactors":
		return MetricUniqueActors, nil
	default:
		return "", fmt.Errorf("%w: unknown metric %q", ErrInvalidQuery, s)
	}
}

const (
	MinPageSize = 50
	MaxPageSize = 1000

	MaxMaxDocs = 20000

	MinTopN = 1
	MaxTopN = 500

	// Placeholder is the value of an actor dimension that could not be resolved.
	Placeholder = "—"

	// keySeparator joins the values of a group key. Resolvers never emit it.
	keySeparator = "\x1f"
)

// Row is one group of a pivot table.
type Row struct {
	Values         map[DimensionID]string `json:"values"`
	Count          int                    `json:"count"`
	DistinctActors *int                   `json:"distinct_actors,omitempty"`

	key string
}

// Query is one ad-hoc pivot request over [Start, End).
type Query struct {
	Dimensions []DimensionID `json:"dimensions"`
	Metric     Metric        `json:"metric"`
	TopN       int           `json:"top_n"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	MaxDocs    int           `json:"max_docs"`
}

// Result is a ranked pivot table plus how much of the window it covers.
type Result struct {
	Rows      []Row     `json:"rows"`
	Scanned   int       `json:"scanned"`
	Truncated bool      `json:"truncated"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}
