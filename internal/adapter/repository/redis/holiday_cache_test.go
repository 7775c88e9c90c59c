package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

func TestHolidayCacheMissThenHit(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer client.Close()

	cache := NewHolidayCache(client, time.Hour)
	ctx := context.Background()

	_, ok, gen, err := cache.Get(ctx, "default", testDay)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, cache.Set(ctx, "default", testDay, true, gen))
	require.NoError(t, cache.Set(ctx, "default", testDay.AddDate(0, 0, 1), false, gen))

	holiday, ok, _, err := cache.Get(ctx, "default", testDay)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, holiday)

	holiday, ok, _, err = cache.Get(ctx, "default", testDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, holiday)

	assert.True(t, mr.Exists("holiday:0:default:2026-03-03"))
	assert.Equal(t, time.Hour, mr.TTL("holiday:0:default:2026-03-03"))
}

func TestHolidayCacheCategoriesAreSeparate(t *testing.T) {
	client, _ := newTestRedisClient(t)
	defer client.Close()

	cache := NewHolidayCache(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "default", testDay, true, 0))

	_, ok, _, err := cache.Get(ctx, "bank", testDay)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHolidayCacheInvalidate(t *testing.T) {
	client, _ := newTestRedisClient(t)
	defer client.Close()

	cache := NewHolidayCache(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "default", testDay, true, 0))
	require.NoError(t, cache.Invalidate(ctx))

	_, ok, gen, err := cache.Get(ctx, "default", testDay)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1), gen)

	require.NoError(t, cache.Set(ctx, "default", testDay, false, gen))
	holiday, ok, _, err := cache.Get(ctx, "default", testDay)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, holiday)
}

func TestHolidayCacheExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer client.Close()

	cache := NewHolidayCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "default", testDay, true, 0))
	mr.FastForward(2 * time.Minute)

	_, ok, _, err := cache.Get(ctx, "default", testDay)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHolidayCacheServerDown(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer client.Close()
	mr.Close()

	cache := NewHolidayCache(client, time.Minute)

	_, _, _, err := cache.Get(context.Background(), "default", testDay)
	assert.Error(t, err)
}

func TestHolidayCacheDropsSetFromOldGeneration(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer client.Close()

	cache := NewHolidayCache(client, time.Hour)
	ctx := context.Background()

	_, _, stale, err := cache.Get(ctx, "default", testDay)
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(ctx))

	require.NoError(t, cache.Set(ctx, "default", testDay, false, stale))

	_, ok, _, err := cache.Get(ctx, "default", testDay)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, mr.Exists("holiday:0:default:2026-03-03"))
}
