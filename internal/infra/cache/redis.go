package cache

import (
	"context"
	"log/slog"
	"time"

	"restaurant-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when caching is disabled or the server cannot be
// reached; every cache in this package treats a nil client as a no-op.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func()) {
	if cfg.Addr == "" {
		slog.Info("redis cache disabled")
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, continuing without cache", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil, func() {}
	}

	slog.Info("redis cache connected", "addr", cfg.Addr)
	return client, func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
}
