package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aevon-lab/project-tally/internal/core/aggregation"
	"github.com/aevon-lab/project-tally/internal/core/storage"
)

const (
	// queryUpsertBreakdown merges one breakdown increment. The label is
	// overwritten, the counter is added to, never replaced.
	queryUpsertBreakdown = `
		INSERT INTO rollup_breakdowns (kind, day, dim_key, label, count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (kind, day, dim_key)
		DO UPDATE SET
			label      = EXCLUDED.label,
			count      = rollup_breakdowns.count + EXCLUDED.count,
			updated_at = EXCLUDED.updated_at
	`

	queryUpsertDailyTotal = `
		INSERT INTO rollup_daily_totals (day, date, count, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (day)
		DO UPDATE SET
			date       = EXCLUDED.date,
			count      = rollup_daily_totals.count + EXCLUDED.count,
			updated_at = EXCLUDED.updated_at
	`

	queryScanGroup = `
		SELECT day, kind, dim_key, label, count
		FROM rollup_breakdowns
		WHERE kind = $1
		  AND day >= $2
		  AND day <= $3
		ORDER BY day ASC, dim_key ASC
	`

	queryLatestDailyTotals = `
		SELECT day, date, count
		FROM rollup_daily_totals
		ORDER BY day DESC
		LIMIT $1
	`

	queryDailyTotalsBetween = `
		SELECT day, date, count
		FROM rollup_daily_totals
		WHERE day >= $1
		  AND day <= $2
		ORDER BY day ASC
	`

	queryReadCursor = `
		SELECT last_processed_at, last_event_id, total_processed, updated_at
		FROM rollup_sync_cursor
		WHERE id = 1
	`

	// queryWriteCursor merge-writes the singleton cursor row. The WHERE
	// clause drops writes that would move the cursor backwards.
	queryWriteCursor = `
		INSERT INTO rollup_sync_cursor (id, last_processed_at, last_event_id, total_processed, updated_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET
			last_processed_at = EXCLUDED.last_processed_at,
			last_event_id     = EXCLUDED.last_event_id,
			total_processed   = EXCLUDED.total_processed,
			updated_at        = EXCLUDED.updated_at
		WHERE rollup_sync_cursor.last_processed_at <= EXCLUDED.last_processed_at
	`

	// queryAcquireLease inserts the lease or takes it over when it expired or
	// already belongs to the caller. Zero affected rows means someone else
	// holds it.
	queryAcquireLease = `
		INSERT INTO sync_leases (name, owner, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name)
		DO UPDATE SET
			owner      = EXCLUDED.owner,
			expires_at = EXCLUDED.expires_at
		WHERE sync_leases.expires_at < $4
		   OR sync_leases.owner = EXCLUDED.owner
	`

	queryReleaseLease = `DELETE FROM sync_leases WHERE name = $1 AND owner = $2`
)

// RollupAdapter implements storage.RollupStore, storage.CursorStore and
// storage.LeaseStore using PostgreSQL.
type RollupAdapter struct {
	db    *sql.DB
	nowFn func() time.Time
}

// NewRollupAdapter creates a new RollupAdapter sharing the given connection.
func NewRollupAdapter(db *sql.DB) *RollupAdapter {
	return &RollupAdapter{
		db:    db,
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

// ApplyIncrements merges all increments in one transaction. Either every
// counter moves or none does.
func (a *RollupAdapter) ApplyIncrements(ctx context.Context, incs []aggregation.Increment) error {
	if len(incs) == 0 {
		return nil
	}
	if len(incs) > aggregation.MaxWriteOps {
		return fmt.Errorf("rollup apply: %d ops: %w", len(incs), storage.ErrTooManyOps)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("rollup apply: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	breakdownStmt, err := tx.PrepareContext(ctx, queryUpsertBreakdown)
	if err != nil {
		return fmt.Errorf("rollup apply: prepare breakdown upsert: %w", err)
	}
	defer breakdownStmt.Close()

	totalStmt, err := tx.PrepareContext(ctx, queryUpsertDailyTotal)
	if err != nil {
		return fmt.Errorf("rollup apply: prepare daily total upsert: %w", err)
	}
	defer totalStmt.Close()

	now := a.nowFn()
	for _, inc := range incs {
		if inc.IsDailyTotal() {
			if _, err := totalStmt.ExecContext(ctx, inc.Day, inc.Date.UTC(), inc.Delta, now); err != nil {
				return fmt.Errorf("rollup apply: daily total %s: %w", inc.Day, err)
			}
			continue
		}

		if _, err := breakdownStmt.ExecContext(ctx,
			string(inc.Kind),
			inc.Day,
			inc.Key,
			inc.Label,
			inc.Delta,
			now,
		); err != nil {
			return fmt.Errorf("rollup apply: %s/%s/%s: %w", inc.Kind, inc.Day, inc.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("rollup apply: commit: %w", err)
	}

	slog.Debug("[RollupAdapter] Applied increments", "ops", len(incs))
	return nil
}

// MaxWriteOps returns the per-transaction operation limit.
func (a *RollupAdapter) MaxWriteOps() int {
	return aggregation.MaxWriteOps
}

// ScanGroup reads every breakdown entry of one kind across a day range.
func (a *RollupAdapter) ScanGroup(ctx context.Context, kind aggregation.DimensionKind, startDay, endDay string) ([]aggregation.BreakdownEntry, error) {
	rows, err := a.db.QueryContext(ctx, queryScanGroup, string(kind), startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("scan group %s: %w", kind, err)
	}
	defer rows.Close()

	var entries []aggregation.BreakdownEntry
	for rows.Next() {
		var (
			entry   aggregation.BreakdownEntry
			kindStr string
		)
		if err := rows.Scan(&entry.Day, &kindStr, &entry.Key, &entry.Label, &entry.Count); err != nil {
			return nil, fmt.Errorf("scan group %s: scan row: %w", kind, err)
		}
		entry.Kind = aggregation.DimensionKind(kindStr)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan group %s: iterate rows: %w", kind, err)
	}
	return entries, nil
}

// LatestDailyTotals returns the most recent limit day totals, day descending.
func (a *RollupAdapter) LatestDailyTotals(ctx context.Context, limit int) ([]aggregation.DailyTotal, error) {
	rows, err := a.db.QueryContext(ctx, queryLatestDailyTotals, limit)
	if err != nil {
		return nil, fmt.Errorf("latest daily totals: %w", err)
	}
	return scanDailyTotals(rows)
}

// DailyTotalsBetween returns day totals inside [startDay, endDay], ascending.
func (a *RollupAdapter) DailyTotalsBetween(ctx context.Context, startDay, endDay string) ([]aggregation.DailyTotal, error) {
	rows, err := a.db.QueryContext(ctx, queryDailyTotalsBetween, startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("daily totals between: %w", err)
	}
	return scanDailyTotals(rows)
}

func scanDailyTotals(rows *sql.Rows) ([]aggregation.DailyTotal, error) {
	defer rows.Close()

	var totals []aggregation.DailyTotal
	for rows.Next() {
		var total aggregation.DailyTotal
		if err := rows.Scan(&total.Day, &total.Date, &total.Count); err != nil {
			return nil, fmt.Errorf("daily totals: scan row: %w", err)
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily totals: iterate rows: %w", err)
	}
	return totals, nil
}

// GetCursor returns the synchronizer cursor or storage.ErrNotFound before
// the first successful sync.
func (a *RollupAdapter) GetCursor(ctx context.Context) (aggregation.SyncCursor, error) {
	var (
		cursor      aggregation.SyncCursor
		lastEventID sql.NullString
	)

	err := a.db.QueryRowContext(ctx, queryReadCursor).Scan(
		&cursor.LastProcessedAt,
		&lastEventID,
		&cursor.TotalProcessed,
		&cursor.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return aggregation.SyncCursor{}, storage.ErrNotFound
	}
	if err != nil {
		return aggregation.SyncCursor{}, fmt.Errorf("read sync cursor: %w", err)
	}

	cursor.LastEventID = lastEventID.String
	cursor.LastProcessedAt = cursor.LastProcessedAt.UTC()
	return cursor, nil
}

// SetCursor merge-writes the cursor. A write that would move it backwards
// is ignored and logged.
func (a *RollupAdapter) SetCursor(ctx context.Context, cursor aggregation.SyncCursor) error {
	updatedAt := cursor.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = a.nowFn()
	}

	var lastEventID interface{}
	if cursor.LastEventID != "" {
		lastEventID = cursor.LastEventID
	}

	result, err := a.db.ExecContext(ctx, queryWriteCursor,
		cursor.LastProcessedAt.UTC(),
		lastEventID,
		cursor.TotalProcessed,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("write sync cursor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("write sync cursor: check result: %w", err)
	}
	if affected == 0 {
		slog.Warn("[RollupAdapter] Skipping stale cursor write",
			"last_processed_at", cursor.LastProcessedAt)
	}
	return nil
}

// AcquireLease takes the named lease for ttl.
func (a *RollupAdapter) AcquireLease(ctx context.Context, name, owner string, ttl time.Duration) error {
	now := a.nowFn()

	result, err := a.db.ExecContext(ctx, queryAcquireLease, name, owner, now.Add(ttl), now)
	if err != nil {
		return fmt.Errorf("acquire lease %s: %w", name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("acquire lease %s: check result: %w", name, err)
	}
	if affected == 0 {
		return storage.ErrLeaseHeld
	}
	return nil
}

// ReleaseLease frees the lease when owner still holds it.
func (a *RollupAdapter) ReleaseLease(ctx context.Context, name, owner string) error {
	if _, err := a.db.ExecContext(ctx, queryReleaseLease, name, owner); err != nil {
		return fmt.Errorf("release lease %s: %w", name, err)
	}
	return nil
}
