package v1

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ConsumptionEvent is the atomic unit of the system.
// Events are appended by the producing features and are never mutated or
// deleted afterwards. The aggregation engine treats them as read-only input.
type ConsumptionEvent struct {
	// ID is the store-assigned opaque identifier. It doubles as the tie-breaker
	// when several events share the same OccurredAt.
	ID string `json:"id"`

	// ActorID identifies the user that logged the consumption.
	ActorID string `json:"actor_id"`

	// Free-text labels as entered by the user. Keys are derived from them at
	// aggregation time, never stored on the event.
	Product  string `json:"product"`
	Device   string `json:"device"`
	Location string `json:"location"`
	Platform string `json:"platform"`

	// Geo is optional. Only used for coarse geo-cell bucketing.
	Geo *GeoPoint `json:"geo,omitempty"`

	// OccurredAt orders the log. A zero value means the producer stored a
	// missing or unparsable timestamp; such events are skipped by aggregation.
	OccurredAt time.Time `json:"occurred_at"`
}

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both coordinates are finite numbers.
func (p *GeoPoint) Valid() bool {
	if p == nil {
		return false
	}
	return !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) &&
		!math.IsNaN(p.Lng) && !math.IsInf(p.Lng, 0)
}

// HasTimestamp reports whether the event can be placed on the time axis.
func (e *ConsumptionEvent) HasTimestamp() bool {
	return !e.OccurredAt.IsZero()
}

// Validate ensures the event carries the attributes producers must supply.
func (e *ConsumptionEvent) Validate() error {
	if strings.TrimSpace(e.ActorID) == "" {
		return fmt.Errorf("actor_id is required")
	}

	if e.OccurredAt.IsZero() {
		return fmt.Errorf("occurred_at is required")
	}

	if e.Geo != nil && !e.Geo.Valid() {
		return fmt.Errorf("geo coordinates must be finite")
	}

	return nil
}

// ActorProfile is the lite projection of a user profile used to enrich pivot
// queries. It is scoped to one query and never persisted by the engine.
type ActorProfile struct {
	ActorID     string `json:"actor_id"`
	Gender      string `json:"gender"`
	City        string `json:"city"`
	Country     string `json:"country"`
	DisplayName string `json:"display_name"`
}
