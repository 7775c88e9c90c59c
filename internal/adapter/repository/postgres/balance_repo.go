package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

const cashBalanceColumns = `id, account_id, currency, base_day, amount, updated_at`

// CashBalanceRepository implements usecase.CashBalanceRepository. Balances
// are only touched inside a transaction.
type CashBalanceRepository struct{}

// NewCashBalanceRepository creates a new CashBalanceRepository.
func NewCashBalanceRepository() *CashBalanceRepository {
	return &CashBalanceRepository{}
}

// GetByDay returns the row for one base day, locked for update.
func (r *CashBalanceRepository) GetByDay(ctx context.Context, tx usecase.Transaction, accountID, currency string, day time.Time) (*domain.CashBalance, error) {
	q, err := pgxTx(tx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + cashBalanceColumns + `
		FROM cash_balances
		WHERE account_id = $1 AND currency = $2 AND base_day = $3
		FOR UPDATE
	`

	return scanCashBalance(q.QueryRow(ctx, query, accountID, currency, dayToDate(day)))
}

// GetLatestBefore returns the most recent row strictly before day.
func (r *CashBalanceRepository) GetLatestBefore(ctx context.Context, tx usecase.Transaction, accountID, currency string, day time.Time) (*domain.CashBalance, error) {
	q, err := pgxTx(tx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + cashBalanceColumns + `
		FROM cash_balances
		WHERE account_id = $1 AND currency = $2 AND base_day < $3
		ORDER BY base_day DESC
		LIMIT 1
	`

	return scanCashBalance(q.QueryRow(ctx, query, accountID, currency, dayToDate(day)))
}

// Create inserts a new row. A second row for the same base day is rejected
// with domain.ErrDuplicateID.
func (r *CashBalanceRepository) Create(ctx context.Context, tx usecase.Transaction, b *domain.CashBalance) error {
	q, err := pgxTx(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cash_balances (` + cashBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = q.Exec(ctx, query,
		b.ID,
		b.AccountID,
		b.Currency,
		dayToDate(b.BaseDay),
		decimalToNumeric(b.Amount),
		timeToPgTimestamptz(b.UpdatedAt),
	)

	return mapWriteError(err)
}

// Update stores a new amount.
func (r *CashBalanceRepository) Update(ctx context.Context, tx usecase.Transaction, b *domain.CashBalance) error {
	q, err := pgxTx(tx)
	if err != nil {
		return err
	}

	query := `UPDATE cash_balances SET amount = $2, updated_at = $3 WHERE id = $1`

	tag, err := q.Exec(ctx, query, b.ID, decimalToNumeric(b.Amount), timeToPgTimestamptz(b.UpdatedAt))
	return expectOne(tag, err, domain.ErrCashBalanceNotFound)
}

func scanCashBalance(row pgx.Row) (*domain.CashBalance, error) {
	var (
		b         domain.CashBalance
		baseDay   pgtype.Date
		amount    pgtype.Numeric
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&b.ID, &b.AccountID, &b.Currency, &baseDay, &amount, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCashBalanceNotFound
	}
	if err != nil {
		return nil, err
	}

	b.BaseDay = dateToDay(baseDay)
	b.Amount = numericToDecimal(amount)
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}
