package repository

import (
	"context"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/infra/repository/converter"
	"restaurant-booking/internal/pkg/pgconv"
)

const reservationColumns = `id, reservation_date, reservation_time, duration_minutes, table_id, customer_id, guest_count, status, created_at`

const (
	lockReservationByID = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
FOR UPDATE`

	listConfirmedForTable = `
SELECT id, reservation_time
FROM reservations
WHERE table_id = $1 AND reservation_date = $2 AND status = 'confirmed'
ORDER BY reservation_time, id`

	insertReservation = `
INSERT INTO reservations (reservation_date, reservation_time, duration_minutes, table_id, customer_id, guest_count, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

	updateReservation = `
UPDATE reservations
SET reservation_date = $2, reservation_time = $3, table_id = $4, guest_count = $5, status = $6
WHERE id = $1`

	deleteReservation = `
DELETE FROM reservations WHERE id = $1`
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) LockByID(ctx context.Context, tx db.DBTX, id int64) (*reservation.Reservation, error) {
	var row converter.ReservationRow
	if err := tx.QueryRow(ctx, lockReservationByID, id).Scan(row.ScanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationToDomain(row), nil
}

func (r *ReservationRepository) ListConfirmedForTable(ctx context.Context, tx db.DBTX, tableID int64, date reservation.Date) ([]reservation.Booked, error) {
	rows, err := tx.Query(ctx, listConfirmedForTable, tableID, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list table reservations", err)
	}
	defer rows.Close()

	var booked []reservation.Booked
	for rows.Next() {
		var b converter.ReservationRow
		if err := rows.Scan(&b.ID, &b.Time); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table reservation", err)
		}
		booked = append(booked, reservation.Booked{
			ReservationID: b.ID,
			Time:          pgconv.TimeOfDayFromPgtype(b.Time),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate table reservations", err)
	}
	return booked, nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error) {
	p := converter.ReservationToInfra(res)

	var id int64
	err := tx.QueryRow(ctx, insertReservation,
		p.Date, p.Time, p.DurationMinutes, p.TableID, p.CustomerID, p.GuestCount, p.Status, p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	p := converter.ReservationToInfra(res)

	tag, err := tx.Exec(ctx, updateReservation, res.ID(), p.Date, p.Time, p.TableID, p.GuestCount, p.Status)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	tag, err := tx.Exec(ctx, deleteReservation, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
