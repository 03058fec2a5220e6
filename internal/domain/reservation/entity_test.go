//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	date := reservation.NewDate(2030, time.June, 15)
	at := reservation.MustTimeOfDay(19, 0)
	guests, err := reservation.NewGuestCount(4)
	require.NoError(t, err)

	t.Run("new reservations are confirmed with the default duration", func(t *testing.T) {
		res, err := reservation.NewReservation(3, 7, date, at, guests, now)
		require.NoError(t, err)

		assert.Equal(t, int64(0), res.ID())
		assert.Equal(t, int64(3), res.TableID())
		assert.Equal(t, int64(7), res.CustomerID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, reservation.DefaultDuration, res.Duration())
		assert.Equal(t, now, res.CreatedAt())

		res.AssignID(42)
		assert.Equal(t, int64(42), res.ID())
	})

	tests := []struct {
		name       string
		tableID    int64
		customerID int64
		date       reservation.Date
		guests     reservation.GuestCount
		errIs      error
	}{
		{name: "missing table", tableID: 0, customerID: 7, date: date, guests: guests, errIs: reservation.ErrMissingTable},
		{name: "missing customer", tableID: 3, customerID: 0, date: date, guests: guests, errIs: reservation.ErrMissingCustomer},
		{name: "zero date", tableID: 3, customerID: 7, date: reservation.Date{}, guests: guests, errIs: reservation.ErrInvalidDate},
		{name: "zero guests", tableID: 3, customerID: 7, date: date, guests: reservation.GuestCount{}, errIs: reservation.ErrInvalidGuestCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reservation.NewReservation(tt.tableID, tt.customerID, tt.date, at, tt.guests, now)
			assert.True(t, errs.Is(err, tt.errIs))
		})
	}
}

func TestReschedule(t *testing.T) {
	guests, err := reservation.NewGuestCount(2)
	require.NoError(t, err)
	newDate := reservation.NewDate(2030, time.July, 1)
	newTime := reservation.MustTimeOfDay(12, 30)

	t.Run("moves a confirmed reservation", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildDomain()

		require.NoError(t, res.Reschedule(5, newDate, newTime, guests))
		assert.Equal(t, int64(5), res.TableID())
		assert.True(t, res.Date().Equal(newDate))
		assert.Equal(t, newTime, res.Time())
		assert.Equal(t, 2, res.GuestCount().Int())
	})

	t.Run("cancelled reservations cannot move", func(t *testing.T) {
		res := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusCancelled }).
			BuildDomain()

		err := res.Reschedule(5, newDate, newTime, guests)
		assert.True(t, errs.Is(err, reservation.ErrNotConfirmed))
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Equal(t, int64(1), res.TableID())
	})
}
