package readstore

import (
	"context"

	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/pkg/pgconv"
	"restaurant-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationViewSelect = `
SELECT r.id, r.reservation_date, r.reservation_time, r.duration_minutes,
       r.table_id, t.number, s.name,
       r.customer_id, c.name, c.email, c.phone,
       r.guest_count, r.status, r.created_at
FROM reservations r
JOIN tables t ON t.id = r.table_id
JOIN sections s ON s.id = t.section_id
JOIN customers c ON c.id = r.customer_id`

const (
	getReservationView   = reservationViewSelect + ` WHERE r.id = $1`
	listReservationViews = reservationViewSelect + ` ORDER BY r.id`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	view, err := scanReservationView(r.db.QueryRow(ctx, getReservationView, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) ListAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, listReservationViews)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	result := []*queries.ReservationView{}
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v                                 queries.ReservationView
		date                              pgtype.Date
		at                                pgtype.Time
		duration, tableNumber, guestCount int32
		createdAt                         pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &date, &at, &duration,
		&v.TableID, &tableNumber, &v.SectionName,
		&v.CustomerID, &v.CustomerName, &v.CustomerEmail, &v.CustomerPhone,
		&guestCount, &v.Status, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	v.Date = pgconv.DateFromPgtype(date)
	v.Time = pgconv.TimeOfDayFromPgtype(at)
	v.DurationMinutes = int(duration)
	v.TableNumber = int(tableNumber)
	v.GuestCount = int(guestCount)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &v, nil
}
