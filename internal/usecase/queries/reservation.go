package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

import "context"

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	ListCurrent(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	return q.store.FindByID(ctx, id)
}

// ListCurrent returns every stored reservation ordered by id.
func (q *reservationQueriesImpl) ListCurrent(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*ReservationView{}
	}
	return views, nil
}
