package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// FiAccountRepository implements usecase.FiAccountRepository.
type FiAccountRepository struct{}

// NewFiAccountRepository creates a new FiAccountRepository.
func NewFiAccountRepository() *FiAccountRepository {
	return &FiAccountRepository{}
}

// GetFiAccount returns a customer's bank account for a category.
func (r *FiAccountRepository) GetFiAccount(ctx context.Context, tx usecase.Transaction, accountID, category, currency string) (*domain.FiAccount, error) {
	q, err := pgxTx(tx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, account_id, category, currency, fi_code, fi_account_id
		FROM fi_accounts
		WHERE account_id = $1 AND category = $2 AND currency = $3
	`

	var a domain.FiAccount
	err = q.QueryRow(ctx, query, accountID, category, currency).Scan(
		&a.ID,
		&a.AccountID,
		&a.Category,
		&a.Currency,
		&a.FiCode,
		&a.FiAccountID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFiAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// GetSelfFiAccount returns our own bank account for a category.
func (r *FiAccountRepository) GetSelfFiAccount(ctx context.Context, tx usecase.Transaction, category, currency string) (*domain.SelfFiAccount, error) {
	q, err := pgxTx(tx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, category, currency, fi_code, fi_account_id
		FROM self_fi_accounts
		WHERE category = $1 AND currency = $2
	`

	var a domain.SelfFiAccount
	err = q.QueryRow(ctx, query, category, currency).Scan(
		&a.ID,
		&a.Category,
		&a.Currency,
		&a.FiCode,
		&a.FiAccountID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFiAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// SaveFiAccount inserts or replaces the account for its
// (account, category, currency) key.
func (r *FiAccountRepository) SaveFiAccount(ctx context.Context, tx usecase.Transaction, a *domain.FiAccount) error {
	q, err := pgxTx(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO fi_accounts (id, account_id, category, currency, fi_code, fi_account_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id, category, currency)
		DO UPDATE SET fi_code = EXCLUDED.fi_code, fi_account_id = EXCLUDED.fi_account_id
	`

	_, err = q.Exec(ctx, query, a.ID, a.AccountID, a.Category, a.Currency, a.FiCode, a.FiAccountID)
	return mapWriteError(err)
}

// SaveSelfFiAccount inserts or replaces the account for its
// (category, currency) key.
func (r *FiAccountRepository) SaveSelfFiAccount(ctx context.Context, tx usecase.Transaction, a *domain.SelfFiAccount) error {
	q, err := pgxTx(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO self_fi_accounts (id, category, currency, fi_code, fi_account_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (category, currency)
		DO UPDATE SET fi_code = EXCLUDED.fi_code, fi_account_id = EXCLUDED.fi_account_id
	`

	_, err = q.Exec(ctx, query, a.ID, a.Category, a.Currency, a.FiCode, a.FiAccountID)
	return mapWriteError(err)
}
