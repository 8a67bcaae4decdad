package pivot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	"github.com/aevon-lab/project-tally/internal/core/storage"
)

// Window is the raw events of [start, end), capped at maxDocs.
type Window struct {
	Events    []v1.ConsumptionEvent
	Truncated bool // loading stopped at maxDocs before the window was exhausted
}

// LoadWindow pages through [start, end) in (occurred_at, id) order until the
// window is exhausted or maxDocs events are held. pageSize is clamped to
// [MinPageSize, MaxPageSize]. maxDocs <= 0 selects the configured cap and is
// never allowed above MaxMaxDocs.
func (e *Engine) LoadWindow(ctx context.Context, start, end time.Time, pageSize, maxDocs int) (Window, error) {
	pageSize = clampPageSize(pageSize)
	if maxDocs <= 0 {
		maxDocs = e.cfg.MaxDocs
	}
	if maxDocs > MaxMaxDocs {
		maxDocs = MaxMaxDocs
	}

	var (
		window Window
		after  *storage.Position
		pages  int
	)
	for len(window.Events) < maxDocs {
		limit := maxDocs - len(window.Events)
		if limit > pageSize {
			limit = pageSize
		}

		page, err := e.events.FetchRange(ctx, storage.RangeQuery{
			Start: start,
			End:   end,
			After: after,
			Limit: limit,
		})
		if err != nil {
			return Window{}, fmt.Errorf("load window page %d: %w", pages+1, err)
		}
		pages++

		window.Events = append(window.Events, page.Events...)
		if page.Next == nil {
			break
		}
		if len(window.Events) >= maxDocs {
			window.Truncated = true
			break
		}
		after = page.Next
	}

	if len(window.Events) > maxDocs {
		window.Events = window.Events[:maxDocs]
		window.Truncated = true
	}

	slog.Debug("[Pivot] Window loaded",
		"start", start,
		"end", end,
		"pages", pages,
		"events", len(window.Events),
		"truncated", window.Truncated)
	return window, nil
}

func clampPageSize(n int) int {
	switch {
	case n < MinPageSize:
		return MinPageSize
	case n > MaxPageSize:
		return MaxPageSize
	default:
		return n
	}
}
