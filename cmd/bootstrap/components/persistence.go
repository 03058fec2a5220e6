package components

import (
	"restaurant-booking/internal/infra/cache"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/infra/readstore"
	"restaurant-booking/internal/infra/uow"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Tables and sections
		fx.Annotate(
			readstore.NewTableReadStore,
			fx.As(new(queries.TableReadStore)),
		),
		// Reservation view
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Analytics
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
		// Analytics cache, also dropped after every booking write
		fx.Annotate(
			func(c *cache.AnalyticsCache) *cache.AnalyticsCache { return c },
			fx.As(new(queries.MetricsCache)),
			fx.As(new(shared.CacheInvalidator)),
		),
	),
)

// Repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		func(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
			return uow.NewPostgresUoW(pool, uow.WithRetry(cfg.DB.TxMaxRetries, cfg.DB.TxRetryBase))
		},
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
