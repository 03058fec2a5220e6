package reservation

import (
	"time"

	"restaurant-booking/internal/pkg/errs"
)

const DefaultDuration = 120 * time.Minute

var (
	ErrTableUnavailable     = errs.Conflict("table is already reserved within the conflict window")
	ErrInsufficientCapacity = errs.Conflict("table capacity is smaller than the party size")
	ErrNotConfirmed         = errs.Conflict("only confirmed reservations can be changed")
	ErrMissingTable         = errs.Validation("table id is required")
	ErrMissingCustomer      = errs.Validation("customer id is required")
)

type Reservation struct {
	id         int64
	tableID    int64
	customerID int64
	date       Date
	time       TimeOfDay
	duration   time.Duration
	guestCount GuestCount
	status     Status
	createdAt  time.Time
}

func NewReservation(tableID, customerID int64, date Date, at TimeOfDay, guests GuestCount, now time.Time) (*Reservation, error) {
	if tableID <= 0 {
		return nil, ErrMissingTable
	}
	if customerID <= 0 {
		return nil, ErrMissingCustomer
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if guests.Int() == 0 {
		return nil, ErrInvalidGuestCount
	}

	return &Reservation{
		tableID:    tableID,
		customerID: customerID,
		date:       date,
		time:       at,
		duration:   DefaultDuration,
		guestCount: guests,
		status:     StatusConfirmed,
		createdAt:  now,
	}, nil
}

func Reconstruct(id, tableID, customerID int64, date Date, at TimeOfDay, duration time.Duration, guests GuestCount, status Status, createdAt time.Time) *Reservation {
	return &Reservation{
		id:         id,
		tableID:    tableID,
		customerID: customerID,
		date:       date,
		time:       at,
		duration:   duration,
		guestCount: guests,
		status:     status,
		createdAt:  createdAt,
	}
}

// AssignID records the identity allocated by the store on insert.
func (r *Reservation) AssignID(id int64) {
	r.id = id
}

// Reschedule moves the reservation to another slot. Availability of the new
// slot is checked by the caller inside the same transaction.
func (r *Reservation) Reschedule(tableID int64, date Date, at TimeOfDay, guests GuestCount) error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if tableID <= 0 {
		return ErrMissingTable
	}
	if date.IsZero() {
		return ErrInvalidDate
	}
	if guests.Int() == 0 {
		return ErrInvalidGuestCount
	}
	r.tableID = tableID
	r.date = date
	r.time = at
	r.guestCount = guests
	return nil
}

func (r *Reservation) ID() int64               { return r.id }
func (r *Reservation) TableID() int64          { return r.tableID }
func (r *Reservation) CustomerID() int64       { return r.customerID }
func (r *Reservation) Date() Date              { return r.date }
func (r *Reservation) Time() TimeOfDay         { return r.time }
func (r *Reservation) Duration() time.Duration { return r.duration }
func (r *Reservation) GuestCount() GuestCount  { return r.guestCount }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) IsConfirmed() bool       { return r.status == StatusConfirmed }
