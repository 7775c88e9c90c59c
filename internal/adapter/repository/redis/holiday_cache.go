package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/cashledger/internal/domain"
)

// setIfGenerationScript stores an entry only while the generation counter
// still holds the value the caller read before its lookup.
var setIfGenerationScript = redis.NewScript(`
local gen = redis.call("GET", KEYS[1]) or "0"
if gen ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`)

// HolidayCache implements usecase.HolidayCache using Redis.
//
// Keys embed a generation number; Invalidate bumps the generation so every
// older entry becomes unreachable and expires on its TTL.
type HolidayCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewHolidayCache creates a new HolidayCache.
func NewHolidayCache(client *redis.Client, ttl time.Duration) *HolidayCache {
	return &HolidayCache{
		client: client,
		prefix: "holiday:",
		ttl:    ttl,
	}
}

// Get returns the cached answer for day and the generation it was looked up
// in; ok is false on a miss.
func (c *HolidayCache) Get(ctx context.Context, category string, day time.Time) (bool, bool, int64, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return false, false, 0, err
	}

	val, err := c.client.Get(ctx, c.key(gen, category, day)).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, gen, nil
	}
	if err != nil {
		return false, false, 0, err
	}

	return val == "1", true, gen, nil
}

// Set caches the answer for day. The write is dropped when the cache was
// invalidated after gen was read.
func (c *HolidayCache) Set(ctx context.Context, category string, day time.Time, holiday bool, gen int64) error {
	val := "0"
	if holiday {
		val = "1"
	}

	keys := []string{c.genKey(), c.key(gen, category, day)}
	return setIfGenerationScript.Run(ctx, c.client, keys, strconv.FormatInt(gen, 10), val, c.ttl.Milliseconds()).Err()
}

// Invalidate drops every cached entry.
func (c *HolidayCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, c.genKey()).Err()
}

func (c *HolidayCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *HolidayCache) genKey() string {
	return c.prefix + "gen"
}

func (c *HolidayCache) key(gen int64, category string, day time.Time) string {
	return c.prefix + strconv.FormatInt(gen, 10) + ":" + category + ":" + domain.FormatDay(day)
}
