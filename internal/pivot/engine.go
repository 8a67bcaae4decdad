package pivot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	"github.com/aevon-lab/project-tally/internal/core/storage"
)

// Config bounds the engine's memory and fan-out.
type Config struct {
	PageSize          int
	MaxDocs           int // default cap when a query sets none
	LookupChunkSize   int
	LookupConcurrency int
	DefaultTopN       int
	Location          *time.Location
}

// Engine loads a window of raw events, enriches them with actor profiles and
// aggregates them in memory.
type Engine struct {
	events   storage.EventStore
	profiles storage.ProfileStore
	cfg      Config
}

// NewEngine creates a pivot engine. Zero config values fall back to sane
// defaults.
func NewEngine(events storage.EventStore, profiles storage.ProfileStore, cfg Config) *Engine {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 500
	}
	if cfg.MaxDocs <= 0 {
		cfg.MaxDocs = 5000
	}
	if cfg.MaxDocs > MaxMaxDocs {
		cfg.MaxDocs = MaxMaxDocs
	}
	if cfg.LookupChunkSize <= 0 {
		cfg.LookupChunkSize = 10
	}
	if cfg.LookupConcurrency <= 0 {
		cfg.LookupConcurrency = 4
	}
	if cfg.DefaultTopN <= 0 {
		cfg.DefaultTopN = 50
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Engine{events: events, profiles: profiles, cfg: cfg}
}

// Run executes q: load window, load profiles when an actor dimension is
// requested, aggregate.
func (e *Engine) Run(ctx context.Context, q Query) (*Result, error) {
	dims, metric, err := e.validate(q)
	if err != nil {
		return nil, err
	}

	window, err := e.LoadWindow(ctx, q.Start, q.End, e.cfg.PageSize, q.MaxDocs)
	if err != nil {
		return nil, fmt.Errorf("pivot: %w", err)
	}

	var profiles map[string]v1.ActorProfile
	if NeedsProfiles(dims) {
		ids := make([]string, 0, len(window.Events))
		for i := range window.Events {
			ids = append(ids, window.Events[i].ActorID)
		}
		profiles = e.LoadActorProfiles(ctx, ids)
	}

	topN := q.TopN
	if topN == 0 {
		topN = e.cfg.DefaultTopN
	}
	rows, err := Aggregate(window.Events, profiles, dims, metric, topN, e.cfg.Location)
	if err != nil {
		return nil, err
	}

	slog.Debug("[Pivot] Query complete",
		"dimensions", dims,
		"metric", metric,
		"scanned", len(window.Events),
		"truncated", window.Truncated,
		"rows", len(rows))

	return &Result{
		Rows:      rows,
		Scanned:   len(window.Events),
		Truncated: window.Truncated,
		Start:     q.Start,
		End:       q.End,
	}, nil
}

func (e *Engine) validate(q Query) ([]DimensionID, Metric, error) {
	if q.Start.IsZero() || q.End.IsZero() {
		return nil, "", fmt.Errorf("%w: start and end are required", ErrInvalidQuery)
	}
	if !q.End.After(q.Start) {
		return nil, "", fmt.Errorf("%w: end must be after start", ErrInvalidQuery)
	}

	dims := make([]DimensionID, len(q.Dimensions))
	seen := make(map[DimensionID]bool, len(q.Dimensions))
	for i, raw := range q.Dimensions {
		id, err := ParseDimension(string(raw))
		if err != nil {
			return nil, "", err
		}
		if seen[id] {
			return nil, "", fmt.Errorf("%w: dimension %q requested twice", ErrInvalidQuery, id)
		}
		seen[id] = true
		dims[i] = id
	}

	metric, err := ParseMetric(string(q.Metric))
	if err != nil {
		return nil, "", err
	}
	return dims, metric, nil
}
