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

const cashflowColumns = `id, account_id, currency, amount, cashflow_type, remark,
	event_day, event_date, value_day, status,
	created_at, created_by, updated_at, updated_by`

// CashflowRepository implements usecase.CashflowRepository.
type CashflowRepository struct {
	db DBTX
}

// NewCashflowRepository creates a new CashflowRepository.
func NewCashflowRepository(db DBTX) *CashflowRepository {
	return &CashflowRepository{db: db}
}

// Create inserts a new cashflow.
func (r *CashflowRepository) Create(ctx context.Context, tx usecase.Transaction, cf *domain.Cashflow) error {
	q, err := pgxTx(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cashflows (` + cashflowColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = q.Exec(ctx, query,
		cf.ID,
		cf.AccountID,
		cf.Currency,
		decimalToNumeric(cf.Amount),
		cf.Type,
		cf.Remark,
		dayToDate(cf.EventDay),
		timeToPgTimestamptz(cf.EventDate),
		dayToDate(cf.ValueDay),
		cf.Status,
		timeToPgTimestamptz(cf.CreatedAt),
		cf.CreatedBy,
		timeToPgTimestamptz(cf.UpdatedAt),
		cf.UpdatedBy,
	)

	return mapWriteError(err)
}

// Update stores the status and audit columns of a cashflow.
func (r *CashflowRepository) Update(ctx context.Context, tx usecase.Transaction, cf *domain.Cashflow) error {
	q, err := pgxTx(tx)
	if err != nil {
		return err
	}

	query := `
		UPDATE cashflows
		SET status = $2, updated_at = $3, updated_by = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, cf.ID, cf.Status, timeToPgTimestamptz(cf.UpdatedAt), cf.UpdatedBy)
	return expectOne(tag, err, domain.ErrCashflowNotFound)
}

// GetByID retrieves a cashflow by ID.
func (r *CashflowRepository) GetByID(ctx context.Context, id string) (*domain.Cashflow, error) {
	query := `SELECT ` + cashflowColumns + ` FROM cashflows WHERE id = $1`

	return scanCashflow(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a cashflow by ID with a FOR UPDATE lock.
func (r *CashflowRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Cashflow, error) {
	q, err := pgxTx(tx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + cashflowColumns + ` FROM cashflows WHERE id = $1 FOR UPDATE`

	return scanCashflow(q.QueryRow(ctx, query, id))
}

// FindUnrealized returns Unprocessed or Error cashflows valued on or before
// valueDay.
func (r *CashflowRepository) FindUnrealized(ctx context.Context, tx usecase.Transaction, accountID, currency string, valueDay time.Time) ([]*domain.Cashflow, error) {
	q, err := pgxTx(tx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + cashflowColumns + `
		FROM cashflows
		WHERE account_id = $1 AND currency = $2 AND value_day <= $3 AND status = ANY($4)
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, accountID, currency, dayToDate(valueDay), statusStrings(domain.UnprocessingStatuses))
	if err != nil {
		return nil, err
	}

	return collectCashflows(rows)
}

// FindByValueDay returns unfinished cashflows valued on valueDay.
func (r *CashflowRepository) FindByValueDay(ctx context.Context, valueDay time.Time) ([]*domain.Cashflow, error) {
	query := `
		SELECT ` + cashflowColumns + `
		FROM cashflows
		WHERE value_day = $1 AND status = ANY($2)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, dayToDate(valueDay), statusStrings(domain.UnprocessedStatuses))
	if err != nil {
		return nil, err
	}

	return collectCashflows(rows)
}

func collectCashflows(rows pgx.Rows) ([]*domain.Cashflow, error) {
	defer rows.Close()

	var items []*domain.Cashflow
	for rows.Next() {
		cf, err := scanCashflow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, cf)
	}

	return items, rows.Err()
}

func scanCashflow(row pgx.Row) (*domain.Cashflow, error) {
	var (
		cf                   domain.Cashflow
		amount               pgtype.Numeric
		eventDay, valueDay   pgtype.Date
		eventDate            pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&cf.ID,
		&cf.AccountID,
		&cf.Currency,
		&amount,
		&cf.Type,
		&cf.Remark,
		&eventDay,
		&eventDate,
		&valueDay,
		&cf.Status,
		&createdAt,
		&cf.CreatedBy,
		&updatedAt,
		&cf.UpdatedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCashflowNotFound
	}
	if err != nil {
		return nil, err
	}

	cf.Amount = numericToDecimal(amount)
	cf.EventDay = dateToDay(eventDay)
	cf.EventDate = eventDate.Time
	cf.ValueDay = dateToDay(valueDay)
	cf.CreatedAt = createdAt.Time
	cf.UpdatedAt = updatedAt.Time
	return &cf, nil
}
