//go:build unit

package cache

import (
	"context"
	"slices"
	"testing"
	"time"

	"restaurant-booking/internal/domain/analytics"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/usecase/queries"
	sharedmock "restaurant-booking/tests/mock/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// bookingStore hands out its rows and can commit one more booking while a
// read is in flight, the way a concurrent POST would.
type bookingStore struct {
	rows       []analytics.Row
	reads      int
	duringRead func()
}

func (s *bookingStore) ListConfirmed(_ context.Context, _ db.DBTX, _ analytics.Filter) ([]analytics.Row, error) {
	s.reads++
	snapshot := slices.Clone(s.rows)
	if s.duringRead != nil {
		s.duringRead()
		s.duringRead = nil
	}
	return snapshot, nil
}

func (s *bookingStore) CountTables(context.Context, db.DBTX) (int, error) {
	return 6, nil
}

type AnalyticsCacheRedisSuite struct {
	suite.Suite
	ctx    context.Context
	mr     *miniredis.Miniredis
	cache  *AnalyticsCache
	filter analytics.Filter
}

func (s *AnalyticsCacheRedisSuite) SetupTest() {
	s.ctx = context.Background()
	s.mr = miniredis.RunT(s.T())
	rdb := redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.T().Cleanup(func() { _ = rdb.Close() })
	s.cache = NewAnalyticsCache(rdb, time.Minute)

	f, err := analytics.NewFilter(reservation.NewDate(2030, 6, 1), reservation.NewDate(2030, 6, 30), nil,
		analytics.DefaultMinGuests, analytics.DefaultMaxGuests)
	s.Require().NoError(err)
	s.filter = f
}

func TestAnalyticsCacheRedisSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsCacheRedisSuite))
}

func bookingOn(day int, tableID int64) analytics.Row {
	return analytics.Row{
		Date:       reservation.NewDate(2030, 6, day),
		Time:       reservation.MustTimeOfDay(19, 0),
		GuestCount: 2,
		TableID:    tableID,
		Section:    "Main Floor",
	}
}

func (s *AnalyticsCacheRedisSuite) TestStoredEntryIsServed() {
	_, gen, ok := s.cache.Get(s.ctx, "k")
	s.False(ok)
	s.Equal(int64(0), gen)

	s.cache.Set(s.ctx, gen, "k", &analytics.MetricsBundle{TotalReservations: 3})

	got, gen, ok := s.cache.Get(s.ctx, "k")
	s.Require().True(ok)
	s.Equal(int64(0), gen)
	s.Equal(3, got.TotalReservations)
	s.Equal(time.Minute, s.mr.TTL(entryKey(0, "k")))
}

func (s *AnalyticsCacheRedisSuite) TestEntryReadBeforeInvalidateIsOrphaned() {
	_, gen, ok := s.cache.Get(s.ctx, "k")
	s.Require().False(ok)

	s.cache.Invalidate(s.ctx)
	s.cache.Set(s.ctx, gen, "k", &analytics.MetricsBundle{TotalReservations: 1})

	got, current, ok := s.cache.Get(s.ctx, "k")
	s.False(ok, "a bundle read before the write must not be served after it")
	s.Nil(got)
	s.Equal(gen+1, current)
}

func (s *AnalyticsCacheRedisSuite) TestNegativeGenerationIsNotStored() {
	s.cache.Set(s.ctx, NoGeneration, "k", &analytics.MetricsBundle{TotalReservations: 1})
	s.Empty(s.mr.Keys())
}

func (s *AnalyticsCacheRedisSuite) TestBookingDuringReadIsVisibleNextTime() {
	ctrl := gomock.NewController(s.T())
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()

	store := &bookingStore{rows: []analytics.Row{bookingOn(3, 1)}}
	store.duringRead = func() {
		store.rows = append(store.rows, bookingOn(4, 2))
		s.cache.Invalidate(s.ctx)
	}
	q := queries.NewAnalyticsQueries(uow, store, s.cache)

	first, err := q.GetAnalytics(s.ctx, s.filter)
	s.Require().NoError(err)
	s.Equal(1, first.TotalReservations)

	second, err := q.GetAnalytics(s.ctx, s.filter)
	s.Require().NoError(err)
	s.Equal(2, second.TotalReservations)

	third, err := q.GetAnalytics(s.ctx, s.filter)
	s.Require().NoError(err)
	s.Equal(2, third.TotalReservations)
	s.Equal(2, store.reads, "the third call is served from the cache")
}

func TestAnalyticsCacheUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewAnalyticsCache(rdb, time.Minute)
	mr.Close()

	got, gen, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
	assert.Nil(t, got)
	require.Equal(t, NoGeneration, gen)
}
