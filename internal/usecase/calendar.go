package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/infrastructure/metrics"
)

// BusinessCalendar resolves the current business day and walks business days
// skipping weekends and holidays of one holiday category.
type BusinessCalendar struct {
	clock       Clock
	txManager   TransactionManager
	settingRepo SettingRepository
	holidayRepo HolidayRepository
	cache       HolidayCache
	idGen       IDGenerator
	category    string
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewBusinessCalendar creates a BusinessCalendar. cache may be nil.
func NewBusinessCalendar(
	clock Clock,
	txManager TransactionManager,
	settingRepo SettingRepository,
	holidayRepo HolidayRepository,
	cache HolidayCache,
	idGen IDGenerator,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *BusinessCalendar {
	return &BusinessCalendar{
		clock:       clock,
		txManager:   txManager,
		settingRepo: settingRepo,
		holidayRepo: holidayRepo,
		cache:       cache,
		idGen:       idGen,
		category:    domain.DefaultHolidayCategory,
		logger:      logger,
		metrics:     metrics,
	}
}

// Today returns the business day: the persisted override if one is set,
// otherwise the clock's date.
func (c *BusinessCalendar) Today(ctx context.Context) (time.Time, error) {
	setting, err := c.settingRepo.Get(ctx, domain.KeyBusinessDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("load business day: %w", err)
	}
	if setting == nil || setting.Value == "" {
		return domain.TruncateDay(c.clock.Now()), nil
	}

	day, err := domain.ParseDay(setting.Value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse business day %q: %w", setting.Value, err)
	}
	return day, nil
}

// Now returns the business day together with the wall-clock time.
func (c *BusinessCalendar) Now(ctx context.Context) (domain.TimePoint, error) {
	day, err := c.Today(ctx)
	if err != nil {
		return domain.TimePoint{}, err
	}
	return domain.TimePoint{Day: day, Time: c.clock.Now()}, nil
}

// Shift returns the business day n business days away from today.
func (c *BusinessCalendar) Shift(ctx context.Context, n int) (time.Time, error) {
	today, err := c.Today(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return c.Day(ctx, today, n)
}

// Day walks |n| business days from base, forward for positive n and backward
// for negative n. base itself is returned for n == 0 even if it is not a
// business day.
func (c *BusinessCalendar) Day(ctx context.Context, base time.Time, n int) (time.Time, error) {
	day := domain.TruncateDay(base)
	step := 1
	if n < 0 {
		step, n = -1, -n
	}

	for range n {
		for {
			day = day.AddDate(0, 0, step)
			business, err := c.IsBusinessDay(ctx, day)
			if err != nil {
				return time.Time{}, err
			}
			if business {
				break
			}
		}
	}
	return day, nil
}

// IsBusinessDay reports whether day is neither a weekend nor a holiday.
func (c *BusinessCalendar) IsBusinessDay(ctx context.Context, day time.Time) (bool, error) {
	if domain.IsWeekend(day) {
		return false, nil
	}
	holiday, err := c.IsHoliday(ctx, day)
	if err != nil {
		return false, err
	}
	return !holiday, nil
}

// IsHoliday reports whether day is registered as a holiday, consulting the
// cache first.
func (c *BusinessCalendar) IsHoliday(ctx context.Context, day time.Time) (bool, error) {
	day = domain.TruncateDay(day)

	// gen is read before the repository so a concurrent RegisterHolidays
	// invalidation makes the Set below a no-op.
	var gen int64
	cacheable := false
	if c.cache != nil {
		holiday, ok, g, err := c.cache.Get(ctx, c.category, day)
		if err != nil {
			c.logger.Warn().Err(err).Str("day", domain.FormatDay(day)).Msg("holiday cache lookup failed")
		} else if ok {
			c.observeCache("hit")
			return holiday, nil
		} else {
			gen, cacheable = g, true
		}
		c.observeCache("miss")
	}

	h, err := c.holidayRepo.GetByDay(ctx, c.category, day)
	if err != nil {
		return false, fmt.Errorf("load holiday %s: %w", domain.FormatDay(day), err)
	}
	holiday := h != nil

	if cacheable {
		if err := c.cache.Set(ctx, c.category, day, holiday, gen); err != nil {
			c.logger.Warn().Err(err).Str("day", domain.FormatDay(day)).Msg("holiday cache store failed")
		}
	}
	return holiday, nil
}

// RegisterHolidays replaces the holidays of one year and clears the cache.
func (c *BusinessCalendar) RegisterHolidays(ctx context.Context, reg domain.RegHolidays) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	category := reg.CategoryOrDefault()

	items := make([]*domain.Holiday, 0, len(reg.Items))
	for _, item := range reg.Items {
		items = append(items, &domain.Holiday{
			ID:       c.idGen.Generate(),
			Category: category,
			Day:      domain.TruncateDay(item.Day),
			Name:     item.Name,
		})
	}

	err := inTx(ctx, c.txManager, nil, func(ctx context.Context, tx Transaction) error {
		return c.holidayRepo.ReplaceYear(ctx, tx, category, reg.Year, items)
	})
	if err != nil {
		return err
	}

	if c.cache != nil {
		if err := c.cache.Invalidate(ctx); err != nil {
			return fmt.Errorf("invalidate holiday cache: %w", err)
		}
	}
	return nil
}

// AdvanceDay moves the persisted business day forward by one business day and
// returns the new day.
func (c *BusinessCalendar) AdvanceDay(ctx context.Context) (time.Time, error) {
	next, err := c.Shift(ctx, 1)
	if err != nil {
		return time.Time{}, err
	}

	err = inTx(ctx, c.txManager, nil, func(ctx context.Context, tx Transaction) error {
		return c.settingRepo.Save(ctx, tx, &domain.AppSetting{
			ID:       domain.KeyBusinessDay,
			Category: "system",
			Outline:  "business day",
			Value:    domain.FormatDay(next),
		})
	})
	if err != nil {
		return time.Time{}, err
	}

	if c.metrics != nil {
		c.metrics.BusinessDayAdvanced.Inc()
	}
	c.logger.Info().Str("day", domain.FormatDay(next)).Msg("business day advanced")
	return next, nil
}

func (c *BusinessCalendar) observeCache(result string) {
	if c.metrics != nil {
		c.metrics.HolidayCacheLookups.WithLabelValues(result).Inc()
	}
}
