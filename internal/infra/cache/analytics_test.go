//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"restaurant-booking/internal/domain/analytics"
	"restaurant-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsCacheWithoutClient(t *testing.T) {
	ctx := context.Background()
	c := NewAnalyticsCache(nil, 0)

	assert.Equal(t, 5*time.Minute, c.ttl)
	assert.NotPanics(t, func() {
		c.Set(ctx, 0, "k", &analytics.MetricsBundle{TotalReservations: 1})
		c.Invalidate(ctx)
	})

	got, gen, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, NoGeneration, gen)

	var unset *AnalyticsCache
	_, _, ok = unset.Get(ctx, "k")
	assert.False(t, ok)
}

func TestEntryKey(t *testing.T) {
	first := entryKey(0, "from=2030-06-01")
	require.Equal(t, first, entryKey(0, "from=2030-06-01"))
	assert.NotEqual(t, first, entryKey(1, "from=2030-06-01"), "a new generation orphans old entries")
	assert.NotEqual(t, first, entryKey(0, "from=2030-06-02"))
	assert.Contains(t, first, "analytics:0:")
	assert.Equal(t, "analytics:gen", generationKey())
}

func TestNewRedisClientDisabled(t *testing.T) {
	client, cleanup := NewRedisClient(config.RedisConfig{})
	assert.Nil(t, client)
	assert.NotPanics(t, cleanup)
}
