//go:build unit

package queries_test

import (
	"context"
	"testing"

	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/tests/common/builder"
	queriesmock "restaurant-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries(t *testing.T) {
	tests := []struct {
		name  string
		setup func(store *queriesmock.MockReservationReadStore)
		run   func(t *testing.T, q queries.ReservationQueries)
	}{
		{
			name: "GetByID returns the joined view",
			setup: func(store *queriesmock.MockReservationReadStore) {
				store.EXPECT().FindByID(gomock.Any(), int64(3)).Return(builder.NewReservationBuilder().WithID(3).BuildView(), nil)
			},
			run: func(t *testing.T, q queries.ReservationQueries) {
				got, err := q.GetByID(context.Background(), 3)
				require.NoError(t, err)
				assert.Equal(t, builder.NewReservationBuilder().WithID(3).BuildView(), got)
			},
		},
		{
			name: "GetByID of a missing id is not found",
			setup: func(store *queriesmock.MockReservationReadStore) {
				store.EXPECT().FindByID(gomock.Any(), int64(9)).
					Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))
			},
			run: func(t *testing.T, q queries.ReservationQueries) {
				_, err := q.GetByID(context.Background(), 9)
				assert.True(t, errs.Is(err, errs.ErrNotFound))
			},
		},
		{
			name: "ListCurrent on an empty store is an empty list",
			setup: func(store *queriesmock.MockReservationReadStore) {
				store.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
			},
			run: func(t *testing.T, q queries.ReservationQueries) {
				got, err := q.ListCurrent(context.Background())
				require.NoError(t, err)
				assert.NotNil(t, got)
				assert.Empty(t, got)
			},
		},
		{
			name: "ListCurrent keeps store order",
			setup: func(store *queriesmock.MockReservationReadStore) {
				store.EXPECT().ListAll(gomock.Any()).Return([]*queries.ReservationView{
					builder.NewReservationBuilder().WithID(1).BuildView(),
					builder.NewReservationBuilder().WithID(2).BuildView(),
				}, nil)
			},
			run: func(t *testing.T, q queries.ReservationQueries) {
				got, err := q.ListCurrent(context.Background())
				require.NoError(t, err)
				require.Len(t, got, 2)
				assert.Equal(t, int64(1), got[0].ID)
				assert.Equal(t, int64(2), got[1].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			tt.setup(store)
			tt.run(t, queries.NewReservationQueries(store))
		})
	}
}
