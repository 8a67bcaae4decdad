package postgres

// SQL queries for the consumption event log.
// Every read orders by (occurred_at, id) so equal timestamps have a stable
// total order. Rows with a NULL occurred_at are never returned.

const eventColumns = `
			id, actor_id, product, device, location, platform,
			geo_lat, geo_lng, occurred_at`

const (
	// queryAppendEvent inserts an event. ON CONFLICT DO NOTHING reports zero
	// affected rows for a duplicate id.
	queryAppendEvent = `
		INSERT INTO consumption_events (
			id, actor_id, product, device, location, platform,
			geo_lat, geo_lng, occurred_at, ingested_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`

	// queryFetchFromStart reads the head of the log for an empty cursor.
	queryFetchFromStart = `
		SELECT` + eventColumns + `
		FROM consumption_events
		WHERE occurred_at IS NOT NULL
		ORDER BY occurred_at ASC, id ASC
		LIMIT $1
	`

	// queryFetchAfterPosition resumes strictly after (occurred_at, id).
	queryFetchAfterPosition = `
		SELECT` + eventColumns + `
		FROM consumption_events
		WHERE (occurred_at, id) > ($1, $2)
		ORDER BY occurred_at ASC, id ASC
		LIMIT $3
	`

	// queryFetchAfterTime resumes from a cursor written without an event id.
	queryFetchAfterTime = `
		SELECT` + eventColumns + `
		FROM consumption_events
		WHERE occurred_at > $1
		ORDER BY occurred_at ASC, id ASC
		LIMIT $2
	`

	// queryFetchRangeFirst reads the first page of a [start, end) window.
	queryFetchRangeFirst = `
		SELECT` + eventColumns + `
		FROM consumption_events
		WHERE occurred_at >= $1
		  AND occurred_at < $2
		ORDER BY occurred_at ASC, id ASC
		LIMIT $3
	`

	// queryFetchRangeAfter reads the following pages, starting after the last
	// seen row.
	queryFetchRangeAfter = `
		SELECT` + eventColumns + `
		FROM consumption_events
		WHERE occurred_at >= $1
		  AND occurred_at < $2
		  AND (occurred_at, id) > ($3, $4)
		ORDER BY occurred_at ASC, id ASC
		LIMIT $5
	`
)
