package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/iho/cashledger/internal/adapter/repository/memory"
	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
	"github.com/iho/cashledger/internal/usecase/mocks"
)

func TestBusinessCalendar_Today(t *testing.T) {
	ctx := context.Background()

	t.Run("uses persisted override", func(t *testing.T) {
		e := newTestEnv(t, monday)
		e.clock.now = domain.NewDay(2030, 1, 1)

		got, err := e.calendar.Today(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(monday) {
			t.Errorf("expected %s, got %s", monday, got)
		}
	})

	t.Run("falls back to clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		settings := mocks.NewMockSettingRepository(ctrl)
		settings.EXPECT().Get(gomock.Any(), domain.KeyBusinessDay).Return(nil, nil)

		clock := &fixedClock{now: time.Date(2026, 7, 15, 23, 30, 0, 0, time.UTC)}
		cal := usecase.NewBusinessCalendar(clock, nil, settings, nil, nil, nil, zerolog.Nop(), nil)

		got, err := cal.Today(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := domain.NewDay(2026, 7, 15); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

func TestBusinessCalendar_Shift(t *testing.T) {
	ctx := context.Background()
	friday := domain.NewDay(2026, 3, 6)

	tests := []struct {
		name     string
		today    time.Time
		holidays []time.Time
		n        int
		want     time.Time
	}{
		{"zero is today", monday, nil, 0, monday},
		{"plain weekdays", monday, nil, 3, domain.NewDay(2026, 3, 5)},
		{"skips weekend", friday, nil, 1, domain.NewDay(2026, 3, 9)},
		{"skips weekend and holiday", friday, []time.Time{domain.NewDay(2026, 3, 9)}, 1, domain.NewDay(2026, 3, 10)},
		{"three days over a holiday", monday, []time.Time{domain.NewDay(2026, 3, 4)}, 3, friday},
		{"backward over weekend", monday, nil, -1, domain.NewDay(2026, 2, 27)},
		{"backward over holiday", monday, []time.Time{domain.NewDay(2026, 2, 27)}, -1, domain.NewDay(2026, 2, 26)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t, tt.today)
			if len(tt.holidays) > 0 {
				reg := domain.RegHolidays{Year: 2026}
				for _, h := range tt.holidays {
					reg.Items = append(reg.Items, domain.RegHoliday{Day: h, Name: "holiday"})
				}
				if err := e.calendar.RegisterHolidays(ctx, reg); err != nil {
					t.Fatalf("register holidays: %v", err)
				}
			}

			got, err := e.calendar.Shift(ctx, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", domain.FormatDay(tt.want), domain.FormatDay(got))
			}
		})
	}
}

func TestBusinessCalendar_RegisterHolidaysInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, monday)
	tuesday := monday.AddDate(0, 0, 1)

	got, err := e.calendar.Shift(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(tuesday) {
		t.Fatalf("expected %s, got %s", tuesday, got)
	}

	err = e.calendar.RegisterHolidays(ctx, domain.RegHolidays{Year: 2026, Items: []domain.RegHoliday{{Day: tuesday, Name: "new"}}})
	if err != nil {
		t.Fatalf("register holidays: %v", err)
	}

	got, err = e.calendar.Shift(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := monday.AddDate(0, 0, 2); !got.Equal(want) {
		t.Errorf("cached lookup survived registration: expected %s, got %s", want, got)
	}
}

func TestBusinessCalendar_RegisterHolidaysRejectsOtherYear(t *testing.T) {
	e := newTestEnv(t, monday)

	err := e.calendar.RegisterHolidays(context.Background(), domain.RegHolidays{
		Year:  2026,
		Items: []domain.RegHoliday{{Day: domain.NewDay(2027, 1, 1)}},
	})
	if !domain.IsRejection(err) {
		t.Fatalf("expected rejection, got %v", err)
	}
}

func TestBusinessCalendar_UsesCacheBeforeRepository(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	settings := mocks.NewMockSettingRepository(ctrl)
	settings.EXPECT().Get(gomock.Any(), domain.KeyBusinessDay).
		Return(&domain.AppSetting{ID: domain.KeyBusinessDay, Value: "2026-03-02"}, nil)

	tuesday := monday.AddDate(0, 0, 1)
	cache := mocks.NewMockHolidayCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), domain.DefaultHolidayCategory, tuesday).Return(true, true, int64(0), nil)
	cache.EXPECT().Get(gomock.Any(), domain.DefaultHolidayCategory, tuesday.AddDate(0, 0, 1)).Return(false, true, int64(0), nil)

	holidays := mocks.NewMockHolidayRepository(ctrl)

	cal := usecase.NewBusinessCalendar(&fixedClock{now: monday}, nil, settings, holidays, cache, nil, zerolog.Nop(), nil)

	got, err := cal.Shift(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := tuesday.AddDate(0, 0, 1); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestBusinessCalendar_InvalidationDuringLookupIsNotCached(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cache := memory.NewHolidayCache()
	tuesday := monday.AddDate(0, 0, 1)

	holidays := mocks.NewMockHolidayRepository(ctrl)
	gomock.InOrder(
		// the read sees the old table, then a registration commits and
		// invalidates before the answer is cached
		holidays.EXPECT().GetByDay(gomock.Any(), domain.DefaultHolidayCategory, tuesday).
			DoAndReturn(func(ctx context.Context, _ string, _ time.Time) (*domain.Holiday, error) {
				if err := cache.Invalidate(ctx); err != nil {
					t.Fatalf("invalidate: %v", err)
				}
				return nil, nil
			}),
		holidays.EXPECT().GetByDay(gomock.Any(), domain.DefaultHolidayCategory, tuesday).
			Return(&domain.Holiday{Category: domain.DefaultHolidayCategory, Day: tuesday}, nil),
	)

	cal := usecase.NewBusinessCalendar(&fixedClock{now: monday}, nil, nil, holidays, cache, nil, zerolog.Nop(), nil)

	first, err := cal.IsHoliday(ctx, tuesday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first {
		t.Fatal("expected first lookup to see no holiday")
	}
	if _, ok, _, _ := cache.Get(ctx, domain.DefaultHolidayCategory, tuesday); ok {
		t.Fatal("expected stale answer to be dropped")
	}

	second, err := cal.IsHoliday(ctx, tuesday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second {
		t.Error("expected registered holiday after invalidation")
	}
	if holiday, ok, _, _ := cache.Get(ctx, domain.DefaultHolidayCategory, tuesday); !ok || !holiday {
		t.Error("expected fresh answer to be cached")
	}
}

func TestBusinessCalendar_AdvanceDay(t *testing.T) {
	ctx := context.Background()
	friday := domain.NewDay(2026, 3, 6)
	e := newTestEnv(t, friday)

	next, err := e.calendar.AdvanceDay(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.NewDay(2026, 3, 9)
	if !next.Equal(want) {
		t.Errorf("expected %s, got %s", want, next)
	}

	today, err := e.calendar.Today(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !today.Equal(want) {
		t.Errorf("override not persisted: %s", today)
	}
}
