//go:build unit

package analytics_test

import (
	"testing"
	"time"

	"restaurant-booking/internal/domain/analytics"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	from := reservation.NewDate(2030, time.June, 1)
	to := reservation.NewDate(2030, time.June, 30)
	patio := "Patio"
	blank := "  "

	t.Run("valid filter", func(t *testing.T) {
		f, err := analytics.NewFilter(from, to, &patio, 2, 6)
		require.NoError(t, err)

		assert.Equal(t, "2030-06-01|2030-06-30|Patio|2|6", f.Key())
	})

	t.Run("single day range is allowed", func(t *testing.T) {
		_, err := analytics.NewFilter(from, from, nil, 1, 1)
		assert.NoError(t, err)
	})

	t.Run("blank section means all sections", func(t *testing.T) {
		f, err := analytics.NewFilter(from, to, &blank, analytics.DefaultMinGuests, analytics.DefaultMaxGuests)
		require.NoError(t, err)

		assert.Nil(t, f.Section)
		assert.Equal(t, "2030-06-01|2030-06-30|*|1|20", f.Key())
	})

	tests := []struct {
		name     string
		from, to reservation.Date
		min, max int
		errIs    error
	}{
		{name: "from after to", from: to, to: from, min: 1, max: 20, errIs: analytics.ErrInvalidDateRange},
		{name: "min above max", from: from, to: to, min: 5, max: 4, errIs: analytics.ErrInvalidGuestRange},
		{name: "missing date", from: reservation.Date{}, to: to, min: 1, max: 20, errIs: reservation.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analytics.NewFilter(tt.from, tt.to, nil, tt.min, tt.max)
			assert.True(t, errs.Is(err, tt.errIs))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}
