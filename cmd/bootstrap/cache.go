package bootstrap

import (
	"context"

	"restaurant-booking/internal/infra/cache"
	"restaurant-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		NewAnalyticsCache,
	),
)

// NewRedis may return a nil client; the caches built on it then do nothing.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client, cleanup := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return client
}

func NewAnalyticsCache(client *redis.Client, cfg config.Config) *cache.AnalyticsCache {
	return cache.NewAnalyticsCache(client, cfg.Analytics.CacheTTL)
}
