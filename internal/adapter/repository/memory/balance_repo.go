package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// CashBalanceRepository implements usecase.CashBalanceRepository.
type CashBalanceRepository struct {
	store *Store
}

// NewCashBalanceRepository creates a new CashBalanceRepository.
func NewCashBalanceRepository(store *Store) *CashBalanceRepository {
	return &CashBalanceRepository{store: store}
}

// GetByDay returns the row for an exact base day.
func (r *CashBalanceRepository) GetByDay(ctx context.Context, tx usecase.Transaction, accountID, currency string, day time.Time) (*domain.CashBalance, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	day = domain.TruncateDay(day)
	for _, b := range r.store.balances {
		if b.AccountID == accountID && b.Currency == currency && b.BaseDay.Equal(day) {
			return clone(b), nil
		}
	}
	return nil, domain.ErrCashBalanceNotFound
}

// GetLatestBefore returns the most recent row before day.
func (r *CashBalanceRepository) GetLatestBefore(ctx context.Context, tx usecase.Transaction, accountID, currency string, day time.Time) (*domain.CashBalance, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	day = domain.TruncateDay(day)
	var latest *domain.CashBalance
	for _, b := range r.store.balances {
		if b.AccountID != accountID || b.Currency != currency || !b.BaseDay.Before(day) {
			continue
		}
		if latest == nil || b.BaseDay.After(latest.BaseDay) {
			latest = b
		}
	}
	if latest == nil {
		return nil, domain.ErrCashBalanceNotFound
	}
	return clone(latest), nil
}

// Create inserts a row, enforcing one row per account, currency and day.
func (r *CashBalanceRepository) Create(ctx context.Context, tx usecase.Transaction, balance *domain.CashBalance) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, b := range r.store.balances {
		if b.ID == balance.ID || (b.AccountID == balance.AccountID && b.Currency == balance.Currency && b.BaseDay.Equal(balance.BaseDay)) {
			return fmt.Errorf("cash balance %s/%s/%s: %w", balance.AccountID, balance.Currency, domain.FormatDay(balance.BaseDay), domain.ErrDuplicateID)
		}
	}
	write(t, r.store.balances, balance.ID, balance)
	return nil
}

// Update replaces an existing row.
func (r *CashBalanceRepository) Update(ctx context.Context, tx usecase.Transaction, balance *domain.CashBalance) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.balances[balance.ID]; !ok {
		return domain.ErrCashBalanceNotFound
	}
	write(t, r.store.balances, balance.ID, balance)
	return nil
}
