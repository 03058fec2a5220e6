package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

import (
	"context"

	"restaurant-booking/internal/domain/reservation"
)

type TableReadStore interface {
	// FindAvailable returns tables seating guests with no confirmed reservation
	// inside the conflict window, ordered by table number. The reservation
	// excludeID never blocks; 0 excludes nothing.
	FindAvailable(ctx context.Context, date reservation.Date, at reservation.TimeOfDay, guests int, excludeID int64) ([]*TableView, error)
	ListSections(ctx context.Context) ([]*SectionView, error)
}

type AvailabilityQueries interface {
	FindAvailableTables(ctx context.Context, date reservation.Date, at reservation.TimeOfDay, guestCount int) ([]*TableView, error)
	// FindTablesForMove answers the same question for an existing reservation,
	// whose own slot does not count against it.
	FindTablesForMove(ctx context.Context, reservationID int64, date reservation.Date, at reservation.TimeOfDay, guestCount int) ([]*TableView, error)
}

type availabilityQueriesImpl struct {
	store TableReadStore
}

func NewAvailabilityQueries(store TableReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

// A non-positive party size, or one larger than every table, is not an
// error: nothing can seat it, so the result is empty.
func (q *availabilityQueriesImpl) FindAvailableTables(ctx context.Context, date reservation.Date, at reservation.TimeOfDay, guestCount int) ([]*TableView, error) {
	return q.find(ctx, date, at, guestCount, 0)
}

func (q *availabilityQueriesImpl) FindTablesForMove(ctx context.Context, reservationID int64, date reservation.Date, at reservation.TimeOfDay, guestCount int) ([]*TableView, error) {
	return q.find(ctx, date, at, guestCount, reservationID)
}

func (q *availabilityQueriesImpl) find(ctx context.Context, date reservation.Date, at reservation.TimeOfDay, guestCount int, excludeID int64) ([]*TableView, error) {
	if guestCount <= 0 {
		return []*TableView{}, nil
	}
	if date.IsZero() {
		return nil, reservation.ErrInvalidDate
	}

	tables, err := q.store.FindAvailable(ctx, date, at, guestCount, excludeID)
	if err != nil {
		return nil, err
	}
	if tables == nil {
		tables = []*TableView{}
	}
	return tables, nil
}
