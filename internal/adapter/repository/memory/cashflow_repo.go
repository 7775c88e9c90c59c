package memory

import (
	"context"
	"time"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// CashflowRepository implements usecase.CashflowRepository.
type CashflowRepository struct {
	store *Store
}

// NewCashflowRepository creates a new CashflowRepository.
func NewCashflowRepository(store *Store) *CashflowRepository {
	return &CashflowRepository{store: store}
}

// Create inserts a cashflow.
func (r *CashflowRepository) Create(ctx context.Context, tx usecase.Transaction, cf *domain.Cashflow) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cashflows[cf.ID]; ok {
		return domain.ErrDuplicateID
	}
	write(t, r.store.cashflows, cf.ID, cf)
	return nil
}

// Update replaces a cashflow.
func (r *CashflowRepository) Update(ctx context.Context, tx usecase.Transaction, cf *domain.Cashflow) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cashflows[cf.ID]; !ok {
		return domain.ErrCashflowNotFound
	}
	write(t, r.store.cashflows, cf.ID, cf)
	return nil
}

// GetByID returns a cashflow.
func (r *CashflowRepository) GetByID(ctx context.Context, id string) (*domain.Cashflow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cf, ok := r.store.cashflows[id]
	if !ok {
		return nil, domain.ErrCashflowNotFound
	}
	return clone(cf), nil
}

// GetByIDForUpdate returns a cashflow inside tx.
func (r *CashflowRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Cashflow, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// FindUnrealized returns Unprocessed or Error cashflows valued on or before
// valueDay, ordered by id.
func (r *CashflowRepository) FindUnrealized(ctx context.Context, tx usecase.Transaction, accountID, currency string, valueDay time.Time) ([]*domain.Cashflow, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	valueDay = domain.TruncateDay(valueDay)
	items := collect(r.store.cashflows, func(cf *domain.Cashflow) bool {
		return cf.AccountID == accountID &&
			cf.Currency == currency &&
			!cf.ValueDay.After(valueDay) &&
			cf.Status.IsUnprocessing()
	})
	sortByID(items, func(cf *domain.Cashflow) string { return cf.ID })
	return items, nil
}

// FindByValueDay returns unfinished cashflows valued on valueDay, ordered by id.
func (r *CashflowRepository) FindByValueDay(ctx context.Context, valueDay time.Time) ([]*domain.Cashflow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	valueDay = domain.TruncateDay(valueDay)
	items := collect(r.store.cashflows, func(cf *domain.Cashflow) bool {
		return cf.ValueDay.Equal(valueDay) && cf.Status.IsUnprocessed()
	})
	sortByID(items, func(cf *domain.Cashflow) string { return cf.ID })
	return items, nil
}
