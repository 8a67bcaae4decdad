package pivot

import (
	"strings"
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	"github.com/aevon-lab/project-tally/internal/core/bucket"
)

// resolveFunc derives one dimension value for an event. profile is nil when
// the actor has no known profile.
type resolveFunc func(evt *v1.ConsumptionEvent, profile *v1.ActorProfile, loc *time.Location) string

type dimension struct {
	resolve    resolveFunc
	actorLevel bool
}

var resolvers = map[DimensionID]dimension{
	DimProduct:  {resolve: func(e *v1.ConsumptionEvent, _ *v1.ActorProfile, _ *time.Location) string { return bucket.NormalizeToKey(e.Product) }},
	DimDevice:   {resolve: func(e *v1.ConsumptionEvent, _ *v1.ActorProfile, _ *time.Location) string { return bucket.NormalizeToKey(e.Device) }},
	DimLocation: {resolve: func(e *v1.ConsumptionEvent, _ *v1.ActorProfile, _ *time.Location) string { return bucket.NormalizeToKey(e.Location) }},
	DimPlatform: {resolve: func(e *v1.ConsumptionEvent, _ *v1.ActorProfile, _ *time.Location) string { return bucket.NormalizeToKey(e.Platform) }},
	DimPair:     {resolve: resolvePair},
	DimDay:      {resolve: func(e *v1.ConsumptionEvent, _ *v1.ActorProfile, loc *time.Location) string { return bucket.DayKey(e.OccurredAt, loc) }},
	DimHour:     {resolve: func(e *v1.ConsumptionEvent, _ *v1.ActorProfile, loc *time.Location) string { return bucket.HourKey(e.OccurredAt, loc) }},
	DimWeekday:  {resolve: func(e *v1.ConsumptionEvent, _ *v1.ActorProfile, loc *time.Location) string { return bucket.WeekdayKey(e.OccurredAt, loc) }},
	DimGeoCell:  {resolve: resolveGeoCell},

	DimGender:  {resolve: resolveGender, actorLevel: true},
	DimCity:    {resolve: profileField(func(p *v1.ActorProfile) string { return p.City }), actorLevel: true},
	DimCountry: {resolve: profileField(func(p *v1.ActorProfile) string { return p.Country }), actorLevel: true},
	DimActor:   {resolve: resolveActor, actorLevel: true},
}

// NeedsProfiles reports whether any of dims is resolved from actor profiles.
func NeedsProfiles(dims []DimensionID) bool {
	for _, id := range dims {
		if resolvers[id].actorLevel {
			return true
		}
	}
	return false
}

func resolvePair(e *v1.ConsumptionEvent, _ *v1.ActorProfile, _ *time.Location) string {
	return bucket.PairKey(bucket.NormalizeToKey(e.Product), bucket.NormalizeToKey(e.Device))
}

func resolveGeoCell(e *v1.ConsumptionEvent, _ *v1.ActorProfile, _ *time.Location) string {
	if e.Geo == nil {
		return Placeholder
	}
	cell, ok := bucket.GeoCell(e.Geo.Lat, e.Geo.Lng)
	if !ok {
		return Placeholder
	}
	return cell.ID
}

func resolveActor(e *v1.ConsumptionEvent, _ *v1.ActorProfile, _ *time.Location) string {
	if id := strings.TrimSpace(e.ActorID); id != "" {
		return strings.ReplaceAll(id, keySeparator, " ")
	}
	return Placeholder
}

// resolveGender buckets free-form profile values into male, female, other
// and unspecified.
func resolveGender(_ *v1.ConsumptionEvent, p *v1.ActorProfile, _ *time.Location) string {
	if p == nil {
		return "unspecified"
	}
	switch strings.ToLower(strings.TrimSpace(p.Gender)) {
	case "male", "m", "man":
		return "male"
	case "female", "f", "woman":
		return "female"
	case "", "unspecified", "unknown", "prefer_not_to_say":
		return "unspecified"
	default:
		return "other"
	}
}

func profileField(field func(p *v1.ActorProfile) string) resolveFunc {
	return func(_ *v1.ConsumptionEvent, p *v1.ActorProfile, _ *time.Location) string {
		if p == nil {
			return Placeholder
		}
		value := strings.TrimSpace(field(p))
		if value == "" {
			return Placeholder
		}
		return strings.ReplaceAll(value, keySeparator, " ")
	}
}
