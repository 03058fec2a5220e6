package request

import (
	"restaurant-booking/internal/domain/analytics"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/patch"
)

type AnalyticsQuery struct {
	From      string  `form:"from" example:"2025-12-01"`
	To        string  `form:"to" example:"2025-12-31"`
	Section   *string `form:"section" example:"Patio"`
	MinGuests *int    `form:"minGuests"`
	MaxGuests *int    `form:"maxGuests"`
}

// ToFilter fills omitted bounds: the month containing today for dates and
// the full party size range for guests.
func (q *AnalyticsQuery) ToFilter(today reservation.Date) (analytics.Filter, error) {
	from := today.FirstOfMonth()
	to := today.LastOfMonth()

	if q.From != "" {
		parsed, err := reservation.ParseDate(q.From)
		if err != nil {
			return analytics.Filter{}, err
		}
		from = parsed
	}
	if q.To != "" {
		parsed, err := reservation.ParseDate(q.To)
		if err != nil {
			return analytics.Filter{}, err
		}
		to = parsed
	}

	return analytics.NewFilter(
		from,
		to,
		q.Section,
		patch.Coalesce(q.MinGuests, analytics.DefaultMinGuests),
		patch.Coalesce(q.MaxGuests, analytics.DefaultMaxGuests),
	)
}
