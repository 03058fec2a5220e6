package readstore

import (
	"context"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/pkg/pgconv"
	"restaurant-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findAvailableTables = `
SELECT t.id, t.number, t.capacity, t.section_id, s.name
FROM tables t
JOIN sections s ON s.id = t.section_id
WHERE t.capacity >= $1
  AND NOT EXISTS (
      SELECT 1
      FROM reservations r
      WHERE r.table_id = t.id
        AND r.reservation_date = $2
        AND r.status = 'confirmed'
        AND ABS(EXTRACT(EPOCH FROM (r.reservation_time - $3::time))) < $4::bigint
        AND r.id <> $5
  )
ORDER BY t.number`

	listSectionsWithTables = `
SELECT s.id, s.name, s.description, t.id, t.number, t.capacity
FROM sections s
LEFT JOIN tables t ON t.section_id = s.id
ORDER BY s.id, t.number`
)

type TableReadStore struct {
	db db.DBTX
}

func NewTableReadStore(db db.DBTX) *TableReadStore {
	return &TableReadStore{db: db}
}

func (r *TableReadStore) FindAvailable(ctx context.Context, date reservation.Date, at reservation.TimeOfDay, guests int, excludeID int64) ([]*queries.TableView, error) {
	spanSeconds := int64(reservation.ConflictSpan.Seconds())

	rows, err := r.db.Query(ctx, findAvailableTables,
		guests, pgconv.DateToPgtype(date), pgconv.TimeOfDayToPgtype(at), spanSeconds, excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available tables", err)
	}
	defer rows.Close()

	result := []*queries.TableView{}
	for rows.Next() {
		var (
			v                queries.TableView
			number, capacity int32
		)
		if err := rows.Scan(&v.ID, &number, &capacity, &v.SectionID, &v.SectionName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan available table", err)
		}
		v.Number = int(number)
		v.Capacity = int(capacity)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate available tables", err)
	}
	return result, nil
}

func (r *TableReadStore) ListSections(ctx context.Context) ([]*queries.SectionView, error) {
	rows, err := r.db.Query(ctx, listSectionsWithTables)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sections", err)
	}
	defer rows.Close()

	result := []*queries.SectionView{}
	var current *queries.SectionView
	for rows.Next() {
		var (
			sectionID         int64
			name, description string
			tableID           pgtype.Int8
			number, capacity  pgtype.Int4
		)
		if err := rows.Scan(&sectionID, &name, &description, &tableID, &number, &capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan section", err)
		}
		if current == nil || current.ID != sectionID {
			current = &queries.SectionView{ID: sectionID, Name: name, Description: description, Tables: []queries.TableView{}}
			result = append(result, current)
		}
		if tableID.Valid {
			current.Tables = append(current.Tables, queries.TableView{
				ID:          tableID.Int64,
				Number:      int(number.Int32),
				Capacity:    int(capacity.Int32),
				SectionID:   sectionID,
				SectionName: name,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sections", err)
	}
	return result, nil
}
