package memory

import (
	"context"
	"sort"
	"time"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// WithdrawalRepository implements usecase.WithdrawalRepository.
type WithdrawalRepository struct {
	store *Store
}

// NewWithdrawalRepository creates a new WithdrawalRepository.
func NewWithdrawalRepository(store *Store) *WithdrawalRepository {
	return &WithdrawalRepository{store: store}
}

// Create inserts a withdrawal request.
func (r *WithdrawalRepository) Create(ctx context.Context, tx usecase.Transaction, w *domain.Withdrawal) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.withdrawals[w.ID]; ok {
		return domain.ErrDuplicateID
	}
	write(t, r.store.withdrawals, w.ID, w)
	return nil
}

// Update replaces a withdrawal request.
func (r *WithdrawalRepository) Update(ctx context.Context, tx usecase.Transaction, w *domain.Withdrawal) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.withdrawals[w.ID]; !ok {
		return domain.ErrWithdrawalNotFound
	}
	write(t, r.store.withdrawals, w.ID, w)
	return nil
}

// GetByID returns a withdrawal request.
func (r *WithdrawalRepository) GetByID(ctx context.Context, id string) (*domain.Withdrawal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	w, ok := r.store.withdrawals[id]
	if !ok {
		return nil, domain.ErrWithdrawalNotFound
	}
	return clone(w), nil
}

// GetByIDForUpdate returns a withdrawal request inside tx.
func (r *WithdrawalRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Withdrawal, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Find returns requests matching filter, newest update first.
func (r *WithdrawalRepository) Find(ctx context.Context, filter domain.WithdrawalFilter, page domain.Pagination) (*domain.PagingList[*domain.Withdrawal], error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := collect(r.store.withdrawals, func(w *domain.Withdrawal) bool {
		if filter.Currency != "" && w.Currency != filter.Currency {
			return false
		}
		if len(filter.Statuses) > 0 && !hasStatus(filter.Statuses, w.Status) {
			return false
		}
		if !filter.UpdatedFrom.IsZero() && w.UpdatedAt.Before(domain.TruncateDay(filter.UpdatedFrom)) {
			return false
		}
		if !filter.UpdatedTo.IsZero() && w.UpdatedAt.After(domain.DayTo(filter.UpdatedTo)) {
			return false
		}
		return true
	})
	sortByUpdatedDesc(items)
	return paginate(items, page), nil
}

// FindByEventDay returns unfinished requests with eventDay, ordered by id.
func (r *WithdrawalRepository) FindByEventDay(ctx context.Context, eventDay time.Time) ([]*domain.Withdrawal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	eventDay = domain.TruncateDay(eventDay)
	items := collect(r.store.withdrawals, func(w *domain.Withdrawal) bool {
		return w.EventDay.Equal(eventDay) && w.Status.IsUnprocessed()
	})
	sortByID(items, func(w *domain.Withdrawal) string { return w.ID })
	return items, nil
}

// FindPendingByAccount returns an account's unfinished requests, newest
// update first.
func (r *WithdrawalRepository) FindPendingByAccount(ctx context.Context, tx usecase.Transaction, accountID, currency string) ([]*domain.Withdrawal, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := collect(r.store.withdrawals, func(w *domain.Withdrawal) bool {
		return w.AccountID == accountID &&
			(currency == "" || w.Currency == currency) &&
			w.Status.IsUnprocessed()
	})
	sortByUpdatedDesc(items)
	return items, nil
}

func sortByUpdatedDesc(items []*domain.Withdrawal) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
}
