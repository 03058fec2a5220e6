package converter

import (
	"time"

	"restaurant-booking/internal/domain/customer"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRow struct {
	ID              int64
	Date            pgtype.Date
	Time            pgtype.Time
	DurationMinutes int32
	TableID         int64
	CustomerID      int64
	GuestCount      int32
	Status          string
	CreatedAt       pgtype.Timestamptz
}

// ScanTargets lists the destinations in the column order of reservationColumns.
func (r *ReservationRow) ScanTargets() []any {
	return []any{&r.ID, &r.Date, &r.Time, &r.DurationMinutes, &r.TableID, &r.CustomerID, &r.GuestCount, &r.Status, &r.CreatedAt}
}

func ReservationToDomain(r ReservationRow) *reservation.Reservation {
	// stored rows passed validation on the way in
	guests, _ := reservation.NewGuestCount(int(r.GuestCount))
	return reservation.Reconstruct(
		r.ID,
		r.TableID,
		r.CustomerID,
		pgconv.DateFromPgtype(r.Date),
		pgconv.TimeOfDayFromPgtype(r.Time),
		time.Duration(r.DurationMinutes)*time.Minute,
		guests,
		reservation.Status(r.Status),
		pgconv.TimeFromPgtype(r.CreatedAt),
	)
}

type ReservationParams struct {
	Date            pgtype.Date
	Time            pgtype.Time
	DurationMinutes int32
	TableID         int64
	CustomerID      int64
	GuestCount      int32
	Status          string
	CreatedAt       pgtype.Timestamptz
}

func ReservationToInfra(res *reservation.Reservation) ReservationParams {
	return ReservationParams{
		Date:            pgconv.DateToPgtype(res.Date()),
		Time:            pgconv.TimeOfDayToPgtype(res.Time()),
		DurationMinutes: int32(res.Duration() / time.Minute),
		TableID:         res.TableID(),
		CustomerID:      res.CustomerID(),
		GuestCount:      int32(res.GuestCount().Int()),
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

type CustomerRow struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

func CustomerToDomain(r CustomerRow) *customer.Customer {
	return customer.Reconstruct(r.ID, r.Name, r.Email, r.Phone)
}

type TableRow struct {
	ID        int64
	Number    int32
	Capacity  int32
	SectionID int64
}

func TableToDomain(r TableRow) *table.Table {
	return table.Reconstruct(r.ID, int(r.Number), int(r.Capacity), r.SectionID)
}
