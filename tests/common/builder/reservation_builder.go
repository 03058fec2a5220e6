//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-booking/internal/domain/reservation"
	reqdto "restaurant-booking/internal/handler/dto/request"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	CustomerID  int64
	TableID     int64
	TableNumber int
	Section     string
	Date        string
	Time        string
	GuestCount  int
	Status      reservation.Status
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          1,
		Name:        "Hanako Yamada",
		Email:       "hanako@example.com",
		Phone:       "090-1234-5678",
		CustomerID:  1,
		TableID:     1,
		TableNumber: 1,
		Section:     "Main Floor",
		Date:        "2030-06-15",
		Time:        "19:00",
		GuestCount:  4,
		Status:      reservation.StatusConfirmed,
		CreatedAt:   time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) date() reservation.Date {
	d, err := reservation.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	return d
}

func (b *ReservationBuilder) timeOfDay() reservation.TimeOfDay {
	t, err := reservation.ParseTimeOfDay(b.Time)
	if err != nil {
		panic(err)
	}
	return t
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	guests, err := reservation.NewGuestCount(b.GuestCount)
	if err != nil {
		panic(err)
	}
	return reservation.Reconstruct(b.ID, b.TableID, b.CustomerID, b.date(), b.timeOfDay(),
		reservation.DefaultDuration, guests, b.Status, b.CreatedAt)
}

func (b *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		Contact: commands.ContactInput{
			Name:  b.Name,
			Email: b.Email,
			Phone: b.Phone,
		},
		TableID:    b.TableID,
		Date:       b.date(),
		Time:       b.timeOfDay(),
		GuestCount: b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		TableID:    b.TableID,
		Date:       b.Date,
		Time:       b.Time,
		GuestCount: b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		Date:            b.date(),
		Time:            b.timeOfDay(),
		DurationMinutes: int(reservation.DefaultDuration / time.Minute),
		TableID:         b.TableID,
		TableNumber:     b.TableNumber,
		SectionName:     b.Section,
		CustomerID:      b.CustomerID,
		CustomerName:    b.Name,
		CustomerEmail:   b.Email,
		CustomerPhone:   b.Phone,
		GuestCount:      b.GuestCount,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithTable(id int64, number int) *ReservationBuilder {
	b.TableID = id
	b.TableNumber = number
	return b
}

func (b *ReservationBuilder) WithSlot(date, at string) *ReservationBuilder {
	b.Date = date
	b.Time = at
	return b
}

func (b *ReservationBuilder) WithGuests(n int) *ReservationBuilder {
	b.GuestCount = n
	return b
}

func (b *ReservationBuilder) WithContact(name, email, phone string) *ReservationBuilder {
	b.Name = name
	b.Email = email
	b.Phone = phone
	return b
}
