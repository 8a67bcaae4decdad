package aggregation

import (
	"fmt"
	"time"
)

// WindowSpec is a parsed look-back window, e.g. the "7d" of a pivot preset.
type WindowSpec struct {
	Size time.Duration
}

// ParseWindowSize parses a duration string into a WindowSpec.
// Supports Go duration syntax (e.g., "90m", "36h") plus "Xd" for days.
func ParseWindowSize(s string) (WindowSpec, error) {
	if s == "" {
		return WindowSpec{}, fmt.Errorf("window must not be empty")
	}

	// time.ParseDuration has no day unit.
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err != nil {
			return WindowSpec{}, fmt.Errorf("invalid window %q: %w", s, err)
		}
		if days <= 0 {
			return WindowSpec{}, fmt.Errorf("window must be positive, got %q", s)
		}
		return WindowSpec{Size: time.Duration(days) * 24 * time.Hour}, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return WindowSpec{}, fmt.Errorf("invalid window %q: %w", s, err)
	}
	if d <= 0 {
		return WindowSpec{}, fmt.Errorf("window must be positive, got %q", s)
	}
	return WindowSpec{Size: d}, nil
}

// Ending returns the half-open range [end-Size, end).
func (w WindowSpec) Ending(end time.Time) (time.Time, time.Time) {
	return end.Add(-w.Size), end
}
