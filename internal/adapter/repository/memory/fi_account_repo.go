package memory

import (
	"context"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// FiAccountRepository implements usecase.FiAccountRepository.
type FiAccountRepository struct {
	store *Store
}

// NewFiAccountRepository creates a new FiAccountRepository.
func NewFiAccountRepository(store *Store) *FiAccountRepository {
	return &FiAccountRepository{store: store}
}

// GetFiAccount returns a customer's bank account for a category.
func (r *FiAccountRepository) GetFiAccount(ctx context.Context, tx usecase.Transaction, accountID, category, currency string) (*domain.FiAccount, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, a := range r.store.fiAccounts {
		if a.AccountID == accountID && a.Category == category && a.Currency == currency {
			return clone(a), nil
		}
	}
	return nil, domain.ErrFiAccountNotFound
}

// GetSelfFiAccount returns our own bank account for a category.
func (r *FiAccountRepository) GetSelfFiAccount(ctx context.Context, tx usecase.Transaction, category, currency string) (*domain.SelfFiAccount, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, a := range r.store.selfFiAccounts {
		if a.Category == category && a.Currency == currency {
			return clone(a), nil
		}
	}
	return nil, domain.ErrFiAccountNotFound
}

// SaveFiAccount inserts or replaces a customer bank account. An existing
// entry for the same account, category and currency is replaced.
func (r *FiAccountRepository) SaveFiAccount(ctx context.Context, tx usecase.Transaction, account *domain.FiAccount) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, a := range r.store.fiAccounts {
		if id != account.ID && a.AccountID == account.AccountID && a.Category == account.Category && a.Currency == account.Currency {
			write[domain.FiAccount](t, r.store.fiAccounts, id, nil)
		}
	}
	write(t, r.store.fiAccounts, account.ID, account)
	return nil
}

// SaveSelfFiAccount inserts or replaces one of our bank accounts.
func (r *FiAccountRepository) SaveSelfFiAccount(ctx context.Context, tx usecase.Transaction, account *domain.SelfFiAccount) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, a := range r.store.selfFiAccounts {
		if id != account.ID && a.Category == account.Category && a.Currency == account.Currency {
			write[domain.SelfFiAccount](t, r.store.selfFiAccounts, id, nil)
		}
	}
	write(t, r.store.selfFiAccounts, account.ID, account)
	return nil
}
