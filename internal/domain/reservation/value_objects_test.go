//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "iso date", input: "2030-06-15", want: "2030-06-15"},
		{name: "surrounding spaces", input: " 2030-06-15 ", want: "2030-06-15"},
		{name: "slashes rejected", input: "2030/06/15", errIs: reservation.ErrInvalidDate},
		{name: "impossible day rejected", input: "2030-02-30", errIs: reservation.ErrInvalidDate},
		{name: "empty rejected", input: "", errIs: reservation.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reservation.ParseDate(tt.input)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.errIs))
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDateMonthBounds(t *testing.T) {
	d := reservation.NewDate(2028, time.February, 17)

	assert.Equal(t, "2028-02-01", d.FirstOfMonth().String())
	assert.Equal(t, "2028-02-29", d.LastOfMonth().String())
	assert.Equal(t, "2030-12-31", reservation.NewDate(2030, time.December, 5).LastOfMonth().String())
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		fails bool
	}{
		{name: "hours and minutes", input: "19:30", want: "19:30"},
		{name: "seconds are dropped", input: "19:30:45", want: "19:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "hour out of range", input: "24:00", fails: true},
		{name: "not a time", input: "7pm", fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reservation.ParseTimeOfDay(tt.input)
			if tt.fails {
				assert.True(t, errs.Is(err, reservation.ErrInvalidTime))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeOfDayFromDuration(t *testing.T) {
	got := reservation.TimeOfDayFromDuration(18*time.Hour + 45*time.Minute + 30*time.Second)
	assert.Equal(t, "18:45", got.String())
	assert.Equal(t, 18*60+45, got.Minutes())
}

func TestTimeOfDayOn(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	at := reservation.MustTimeOfDay(19, 0).On(reservation.NewDate(2030, time.June, 15), loc)

	assert.Equal(t, time.Date(2030, time.June, 15, 19, 0, 0, 0, loc), at)
}

func TestNewGuestCount(t *testing.T) {
	for _, n := range []int{reservation.MinPartySize, 8, reservation.MaxPartySize} {
		g, err := reservation.NewGuestCount(n)
		require.NoError(t, err)
		assert.Equal(t, n, g.Int())
	}
	for _, n := range []int{-1, 0, reservation.MaxPartySize + 1} {
		_, err := reservation.NewGuestCount(n)
		assert.True(t, errs.Is(err, reservation.ErrInvalidGuestCount), "guest count %d", n)
	}
}
