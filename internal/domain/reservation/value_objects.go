package reservation

import (
	"fmt"
	"strings"
	"time"

	"restaurant-booking/internal/pkg/errs"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	MinPartySize = 1
	MaxPartySize = 20
)

var (
	ErrInvalidDate       = errs.Validation("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime       = errs.Validation("time must be formatted as HH:MM")
	ErrInvalidGuestCount = errs.Validation("guest count must be between 1 and 20")
	ErrInvalidStatus     = errs.Validation("invalid reservation status")
)

// Date is a calendar day with no time zone attached.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func (d Date) Time() time.Time    { return d.t }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) String() string     { return d.t.Format(DateLayout) }

func (d Date) FirstOfMonth() Date {
	return NewDate(d.t.Year(), d.t.Month(), 1)
}

func (d Date) LastOfMonth() Date {
	return d.FirstOfMonth().addMonths(1).AddDays(-1)
}

func (d Date) addMonths(n int) Date {
	return Date{t: d.t.AddDate(0, n, 0)}
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay is a wall-clock time with minute resolution.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// MustTimeOfDay panics on out-of-range input. Intended for constants and tests.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(fmt.Sprintf("invalid time of day %02d:%02d", hour, minute))
	}
	return t
}

// ParseTimeOfDay accepts HH:MM and HH:MM:SS; seconds are dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
		}
	}
	return TimeOfDay{}, ErrInvalidTime
}

// TimeOfDayFromDuration converts an offset from midnight, as stored by the database.
func TimeOfDayFromDuration(d time.Duration) TimeOfDay {
	m := int(d / time.Minute)
	if m < 0 {
		m = 0
	}
	return TimeOfDay{minutes: m % (24 * 60)}
}

func (t TimeOfDay) Minutes() int                  { return t.minutes }
func (t TimeOfDay) Hour() int                     { return t.minutes / 60 }
func (t TimeOfDay) Minute() int                   { return t.minutes % 60 }
func (t TimeOfDay) Duration() time.Duration       { return time.Duration(t.minutes) * time.Minute }
func (t TimeOfDay) Before(o TimeOfDay) bool       { return t.minutes < o.minutes }
func (t TimeOfDay) String() string                { return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()) }
func (t TimeOfDay) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *TimeOfDay) UnmarshalText(b []byte) error { return t.parseInto(string(b)) }

func (t *TimeOfDay) parseInto(s string) error {
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// On combines the calendar day and wall time in loc.
func (t TimeOfDay) On(d Date, loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, t.Hour(), t.Minute(), 0, 0, loc)
}

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n < MinPartySize || n > MaxPartySize {
		return GuestCount{}, ErrInvalidGuestCount
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Int() int {
	return g.value
}
