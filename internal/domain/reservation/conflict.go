package reservation

import "time"

// ConflictBuffer is the half-width of the window a confirmed reservation
// occupies on its table: [time-2h, time+2h).
const ConflictBuffer = 2 * time.Hour

// ConflictSpan is the minimum distance two reservations on the same table and
// date must keep. Two half-open windows of width 2*ConflictBuffer overlap
// exactly when their centres are closer than this.
const ConflictSpan = 2 * ConflictBuffer

// Booked is a confirmed reservation already holding a table on a given date.
type Booked struct {
	ReservationID int64
	Time          TimeOfDay
}

func Overlaps(a, b TimeOfDay) bool {
	diff := a.minutes - b.minutes
	if diff < 0 {
		diff = -diff
	}
	return time.Duration(diff)*time.Minute < ConflictSpan
}

// FindConflict reports the first booking that overlaps at. The reservation
// identified by exclude is ignored so an update never conflicts with itself;
// pass 0 when creating.
func FindConflict(at TimeOfDay, booked []Booked, exclude int64) (Booked, bool) {
	for _, b := range booked {
		if exclude != 0 && b.ReservationID == exclude {
			continue
		}
		if Overlaps(at, b.Time) {
			return b, true
		}
	}
	return Booked{}, false
}
