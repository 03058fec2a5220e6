package analytics

import (
	"fmt"
	"strings"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/errs"
)

const (
	DefaultMinGuests = reservation.MinPartySize
	DefaultMaxGuests = reservation.MaxPartySize
)

var (
	ErrInvalidDateRange  = errs.Validation("start date must not be after end date")
	ErrInvalidGuestRange = errs.Validation("minimum guests must not exceed maximum guests")
)

// Filter is the single predicate every metric is computed over. Only
// confirmed reservations are ever considered.
type Filter struct {
	From      reservation.Date
	To        reservation.Date
	Section   *string
	MinGuests int
	MaxGuests int
}

func NewFilter(from, to reservation.Date, section *string, minGuests, maxGuests int) (Filter, error) {
	if from.IsZero() || to.IsZero() {
		return Filter{}, reservation.ErrInvalidDate
	}
	if from.After(to) {
		return Filter{}, ErrInvalidDateRange
	}
	if minGuests > maxGuests {
		return Filter{}, ErrInvalidGuestRange
	}

	if section != nil {
		trimmed := strings.TrimSpace(*section)
		if trimmed == "" {
			section = nil
		} else {
			section = &trimmed
		}
	}

	return Filter{
		From:      from,
		To:        to,
		Section:   section,
		MinGuests: minGuests,
		MaxGuests: maxGuests,
	}, nil
}

// Key is a canonical representation used for caching.
func (f Filter) Key() string {
	section := "*"
	if f.Section != nil {
		section = *f.Section
	}
	return fmt.Sprintf("%s|%s|%s|%d|%d", f.From, f.To, section, f.MinGuests, f.MaxGuests)
}
