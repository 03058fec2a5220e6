package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"restaurant-booking/internal/domain/analytics"

	"github.com/redis/go-redis/v9"
)

const (
	analyticsPrefix = "analytics"

	// NoGeneration is returned by Get when the cache is off or unreachable.
	// Set ignores it.
	NoGeneration int64 = -1
)

// AnalyticsCache stores metric bundles under a generation number. Invalidate
// bumps the generation, which orphans every earlier entry until its TTL runs out.
// Callers hand the generation seen by Get back to Set, so a bundle computed
// while a write landed is stored in an already orphaned generation.
type AnalyticsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnalyticsCache(rdb *redis.Client, ttl time.Duration) *AnalyticsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &AnalyticsCache{rdb: rdb, ttl: ttl}
}

func (c *AnalyticsCache) enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *AnalyticsCache) Get(ctx context.Context, key string) (*analytics.MetricsBundle, int64, bool) {
	if !c.enabled() {
		return nil, NoGeneration, false
	}
	gen, err := c.generation(ctx)
	if err != nil {
		slog.Warn("analytics cache generation lookup failed", "error", err.Error())
		return nil, NoGeneration, false
	}

	bs, err := c.rdb.Get(ctx, entryKey(gen, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("analytics cache read failed", "error", err.Error())
		}
		return nil, gen, false
	}

	var bundle analytics.MetricsBundle
	if err := json.Unmarshal(bs, &bundle); err != nil {
		slog.Warn("analytics cache entry corrupt", "error", err.Error())
		return nil, gen, false
	}
	return &bundle, gen, true
}

// Set stores b under gen, the generation its read started in.
func (c *AnalyticsCache) Set(ctx context.Context, gen int64, key string, b *analytics.MetricsBundle) {
	if !c.enabled() || b == nil || gen < 0 {
		return
	}
	bs, err := json.Marshal(b)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, entryKey(gen, key), bs, c.ttl).Err(); err != nil {
		slog.Warn("analytics cache write failed", "error", err.Error())
	}
}

func (c *AnalyticsCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.rdb.Incr(ctx, generationKey()).Err(); err != nil {
		slog.Warn("analytics cache invalidation failed", "error", err.Error())
	}
}

func (c *AnalyticsCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func generationKey() string {
	return analyticsPrefix + ":gen"
}

func entryKey(gen int64, key string) string {
	sum := sha1.Sum([]byte(key))
	return analyticsPrefix + ":" + strconv.FormatInt(gen, 10) + ":" + hex.EncodeToString(sum[:])
}
