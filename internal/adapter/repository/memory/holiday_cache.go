package memory

import (
	"context"
	"sync"
	"time"

	"github.com/iho/cashledger/internal/domain"
)

// HolidayCache implements usecase.HolidayCache in process memory.
type HolidayCache struct {
	mu      sync.RWMutex
	gen     int64
	entries map[string]bool
}

// NewHolidayCache creates an empty HolidayCache.
func NewHolidayCache() *HolidayCache {
	return &HolidayCache{entries: make(map[string]bool)}
}

func holidayKey(category string, day time.Time) string {
	return category + ":" + domain.FormatDay(day)
}

// Get returns the cached answer for day and the current generation.
func (c *HolidayCache) Get(ctx context.Context, category string, day time.Time) (bool, bool, int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	holiday, ok := c.entries[holidayKey(category, day)]
	return holiday, ok, c.gen, nil
}

// Set caches the answer for day unless the cache was invalidated after gen
// was read.
func (c *HolidayCache) Set(ctx context.Context, category string, day time.Time, holiday bool, gen int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return nil
	}
	c.entries[holidayKey(category, day)] = holiday
	return nil
}

// Invalidate drops every entry and starts a new generation.
func (c *HolidayCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	clear(c.entries)
	return nil
}
