package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// SettingRepository implements usecase.SettingRepository.
type SettingRepository struct {
	db DBTX
}

// NewSettingRepository creates a new SettingRepository.
func NewSettingRepository(db DBTX) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns a setting, or nil when it does not exist.
func (r *SettingRepository) Get(ctx context.Context, id string) (*domain.AppSetting, error) {
	query := `SELECT id, category, outline, value FROM app_settings WHERE id = $1`

	var s domain.AppSetting
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Category, &s.Outline, &s.Value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Save inserts or replaces a setting.
func (r *SettingRepository) Save(ctx context.Context, tx usecase.Transaction, s *domain.AppSetting) error {
	q, err := pgxTx(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO app_settings (id, category, outline, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET category = EXCLUDED.category, outline = EXCLUDED.outline, value = EXCLUDED.value
	`

	_, err = q.Exec(ctx, query, s.ID, s.Category, s.Outline, s.Value)
	return err
}
