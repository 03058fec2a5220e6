package queries

//go:generate mockgen -source=analytics.go -destination=../../../tests/mock/queries/analytics_mock.go -package=queriesmock

import (
	"context"

	"restaurant-booking/internal/domain/analytics"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/usecase/shared"
)

type AnalyticsReadStore interface {
	ListConfirmed(ctx context.Context, tx db.DBTX, f analytics.Filter) ([]analytics.Row, error)
	CountTables(ctx context.Context, tx db.DBTX) (int, error)
}

// MetricsCache is best effort; a miss or a failure just means recomputing.
// Get reports the cache generation it looked in; Set must be given that same
// generation so results read before an invalidation are never served after it.
type MetricsCache interface {
	Get(ctx context.Context, key string) (b *analytics.MetricsBundle, gen int64, ok bool)
	Set(ctx context.Context, gen int64, key string, b *analytics.MetricsBundle)
}

type AnalyticsQueries interface {
	GetAnalytics(ctx context.Context, f analytics.Filter) (*analytics.MetricsBundle, error)
}

type analyticsQueriesImpl struct {
	uow   shared.UnitOfWork
	store AnalyticsReadStore
	cache MetricsCache
}

func NewAnalyticsQueries(uow shared.UnitOfWork, store AnalyticsReadStore, cache MetricsCache) AnalyticsQueries {
	return &analyticsQueriesImpl{uow: uow, store: store, cache: cache}
}

func (q *analyticsQueriesImpl) GetAnalytics(ctx context.Context, f analytics.Filter) (*analytics.MetricsBundle, error) {
	key := f.Key()
	cached, gen, ok := q.cache.Get(ctx, key)
	if ok {
		return cached, nil
	}

	var (
		rows        []analytics.Row
		totalTables int
	)
	// rows and table count must come from the same snapshot
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		if rows, err = q.store.ListConfirmed(ctx, tx, f); err != nil {
			return err
		}
		totalTables, err = q.store.CountTables(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	bundle := analytics.Compute(rows, totalTables)
	q.cache.Set(ctx, gen, key, bundle)
	return bundle, nil
}
