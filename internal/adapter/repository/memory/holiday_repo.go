package memory

import (
	"context"
	"time"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// HolidayRepository implements usecase.HolidayRepository.
type HolidayRepository struct {
	store *Store
}

// NewHolidayRepository creates a new HolidayRepository.
func NewHolidayRepository(store *Store) *HolidayRepository {
	return &HolidayRepository{store: store}
}

// GetByDay returns the holiday on day, or nil.
func (r *HolidayRepository) GetByDay(ctx context.Context, category string, day time.Time) (*domain.Holiday, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	day = domain.TruncateDay(day)
	for _, h := range r.store.holidays {
		if h.Category == category && h.Day.Equal(day) {
			return clone(h), nil
		}
	}
	return nil, nil
}

// FindByYear returns a year's holidays ordered by day.
func (r *HolidayRepository) FindByYear(ctx context.Context, category string, year int) ([]*domain.Holiday, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := collect(r.store.holidays, func(h *domain.Holiday) bool {
		return h.Category == category && h.Day.Year() == year
	})
	sortByID(items, func(h *domain.Holiday) string { return domain.FormatDay(h.Day) })
	return items, nil
}

// ReplaceYear swaps a year's holidays.
func (r *HolidayRepository) ReplaceYear(ctx context.Context, tx usecase.Transaction, category string, year int, items []*domain.Holiday) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, h := range r.store.holidays {
		if h.Category == category && h.Day.Year() == year {
			write[domain.Holiday](t, r.store.holidays, id, nil)
		}
	}
	for _, h := range items {
		write(t, r.store.holidays, h.ID, h)
	}
	return nil
}
