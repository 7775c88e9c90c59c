package memory

import (
	"context"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// SettingRepository implements usecase.SettingRepository.
type SettingRepository struct {
	store *Store
}

// NewSettingRepository creates a new SettingRepository.
func NewSettingRepository(store *Store) *SettingRepository {
	return &SettingRepository{store: store}
}

// Get returns a setting, or nil.
func (r *SettingRepository) Get(ctx context.Context, id string) (*domain.AppSetting, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return clone(r.store.settings[id]), nil
}

// Save inserts or replaces a setting.
func (r *SettingRepository) Save(ctx context.Context, tx usecase.Transaction, setting *domain.AppSetting) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	write(t, r.store.settings, setting.ID, setting)
	return nil
}
