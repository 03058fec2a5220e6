package queries

import (
	"time"

	"restaurant-booking/internal/domain/reservation"
)

type TableView struct {
	ID          int64
	Number      int
	Capacity    int
	SectionID   int64
	SectionName string
}

type SectionView struct {
	ID          int64
	Name        string
	Description string
	Tables      []TableView
}

// ReservationView is a reservation joined with its table, section and customer.
type ReservationView struct {
	ID              int64
	Date            reservation.Date
	Time            reservation.TimeOfDay
	DurationMinutes int
	TableID         int64
	TableNumber     int
	SectionName     string
	CustomerID      int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	GuestCount      int
	Status          string
	CreatedAt       time.Time
}
