package postgres

import (
	"database/sql"
	"fmt"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
)

// geoArgs flattens the optional geo point into two nullable columns.
func geoArgs(event *v1.ConsumptionEvent) (lat, lng interface{}) {
	if event.Geo == nil {
		return nil, nil
	}
	return event.Geo.Lat, event.Geo.Lng
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEventRow scans a database row into a ConsumptionEvent.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanEventRow(row scanner) (v1.ConsumptionEvent, error) {
	var (
		evt        v1.ConsumptionEvent
		lat, lng   sql.NullFloat64
		occurredAt sql.NullTime
	)

	err := row.Scan(
		&evt.ID,
		&evt.ActorID,
		&evt.Product,
		&evt.Device,
		&evt.Location,
		&evt.Platform,
		&lat,
		&lng,
		&occurredAt,
	)
	if err != nil {
		return v1.ConsumptionEvent{}, fmt.Errorf("failed to scan event row: %w", err)
	}

	if lat.Valid && lng.Valid {
		evt.Geo = &v1.GeoPoint{Lat: lat.Float64, Lng: lng.Float64}
	}
	if occurredAt.Valid {
		evt.OccurredAt = occurredAt.Time.UTC()
	}

	return evt, nil
}

func scanEvents(rows *sql.Rows) ([]v1.ConsumptionEvent, error) {
	defer rows.Close()

	var events []v1.ConsumptionEvent
	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}
