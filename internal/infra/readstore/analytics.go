package readstore

import (
	"context"

	"restaurant-booking/internal/domain/analytics"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// One predicate for every metric: the aggregation itself happens in the domain.
const (
	listConfirmedForAnalytics = `
SELECT r.reservation_date, r.reservation_time, r.guest_count, r.table_id, s.name
FROM reservations r
JOIN tables t ON t.id = r.table_id
JOIN sections s ON s.id = t.section_id
WHERE r.status = 'confirmed'
  AND r.reservation_date BETWEEN $1 AND $2
  AND r.guest_count BETWEEN $3 AND $4
  AND ($5::text IS NULL OR s.name = $5::text)
ORDER BY r.reservation_date, r.reservation_time, r.id`

	countTables = `SELECT COUNT(*) FROM tables`
)

type AnalyticsReadStore struct{}

func NewAnalyticsReadStore() *AnalyticsReadStore {
	return &AnalyticsReadStore{}
}

func (r *AnalyticsReadStore) ListConfirmed(ctx context.Context, tx db.DBTX, f analytics.Filter) ([]analytics.Row, error) {
	rows, err := tx.Query(ctx, listConfirmedForAnalytics,
		pgconv.DateToPgtype(f.From),
		pgconv.DateToPgtype(f.To),
		f.MinGuests,
		f.MaxGuests,
		pgconv.StringPtrToPgtype(f.Section),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query analytics rows", err)
	}
	defer rows.Close()

	var result []analytics.Row
	for rows.Next() {
		var (
			date   pgtype.Date
			at     pgtype.Time
			guests int32
			row    analytics.Row
		)
		if err := rows.Scan(&date, &at, &guests, &row.TableID, &row.Section); err != nil {
			return nil, infra.WrapRepoErr("failed to scan analytics row", err)
		}
		row.Date = pgconv.DateFromPgtype(date)
		row.Time = pgconv.TimeOfDayFromPgtype(at)
		row.GuestCount = int(guests)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate analytics rows", err)
	}
	return result, nil
}

func (r *AnalyticsReadStore) CountTables(ctx context.Context, tx db.DBTX) (int, error) {
	var n int64
	if err := tx.QueryRow(ctx, countTables).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count tables", err)
	}
	return int(n), nil
}
