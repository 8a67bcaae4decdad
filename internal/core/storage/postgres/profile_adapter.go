package postgres

import (
	"context"
	"database/sql"
	"fmt"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	"github.com/lib/pq"
)

// DefaultLookupKeys bounds the id set of one profile lookup.
const DefaultLookupKeys = 10

const queryProfilesByIDs = `
	SELECT actor_id, gender, city, country, display_name
	FROM actor_profiles
	WHERE actor_id = ANY($1)
`

// ProfileAdapter implements storage.ProfileStore using PostgreSQL.
type ProfileAdapter struct {
	db         *sql.DB
	lookupKeys int
}

// NewProfileAdapter creates a new ProfileAdapter sharing the given connection.
// A non-positive lookupKeys falls back to DefaultLookupKeys.
func NewProfileAdapter(db *sql.DB, lookupKeys int) *ProfileAdapter {
	if lookupKeys <= 0 {
		lookupKeys = DefaultLookupKeys
	}
	return &ProfileAdapter{db: db, lookupKeys: lookupKeys}
}

// GetByIDs resolves up to MaxLookupKeys profiles in one query. Ids without a
// profile row are absent from the result.
func (a *ProfileAdapter) GetByIDs(ctx context.Context, actorIDs []string) (map[string]v1.ActorProfile, error) {
	if len(actorIDs) == 0 {
		return map[string]v1.ActorProfile{}, nil
	}
	if len(actorIDs) > a.lookupKeys {
		return nil, fmt.Errorf("get profiles: %d ids exceeds lookup limit %d", len(actorIDs), a.lookupKeys)
	}

	rows, err := a.db.QueryContext(ctx, queryProfilesByIDs, pq.Array(actorIDs))
	if err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[string]v1.ActorProfile, len(actorIDs))
	for rows.Next() {
		var (
			p                              v1.ActorProfile
			gender, city, country, display sql.NullString
		)
		if err := rows.Scan(&p.ActorID, &gender, &city, &country, &display); err != nil {
			return nil, fmt.Errorf("get profiles: scan row: %w", err)
		}
		p.Gender = gender.String
		p.City = city.String
		p.Country = country.String
		p.DisplayName = display.String
		profiles[p.ActorID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get profiles: iterate rows: %w", err)
	}
	return profiles, nil
}

// MaxLookupKeys returns the configured lookup limit.
func (a *ProfileAdapter) MaxLookupKeys() int {
	return a.lookupKeys
}
