package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

const withdrawalColumns = `id, account_id, currency, abs_amount, withdrawal,
	request_day, request_date, event_day, value_day,
	target_fi_code, target_fi_account, self_fi_code, self_fi_account,
	status, cashflow_id, created_at, created_by, updated_at, updated_by`

// WithdrawalRepository implements usecase.WithdrawalRepository.
type WithdrawalRepository struct {
	db DBTX
}

// NewWithdrawalRepository creates a new WithdrawalRepository.
func NewWithdrawalRepository(db DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create inserts a new request.
func (r *WithdrawalRepository) Create(ctx context.Context, tx usecase.Transaction, w *domain.Withdrawal) error {
	q, err := pgxTx(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO withdrawals (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err = q.Exec(ctx, query,
		w.ID,
		w.AccountID,
		w.Currency,
		decimalToNumeric(w.AbsAmount),
		w.Withdrawal,
		dayToDate(w.RequestDay),
		timeToPgTimestamptz(w.RequestDate),
		dayToDate(w.EventDay),
		dayToDate(w.ValueDay),
		w.TargetFiCode,
		w.TargetFiAccount,
		w.SelfFiCode,
		w.SelfFiAccount,
		w.Status,
		w.CashflowID,
		timeToPgTimestamptz(w.CreatedAt),
		w.CreatedBy,
		timeToPgTimestamptz(w.UpdatedAt),
		w.UpdatedBy,
	)

	return mapWriteError(err)
}

// Update stores the status, cashflow link and audit columns of a request.
func (r *WithdrawalRepository) Update(ctx context.Context, tx usecase.Transaction, w *domain.Withdrawal) error {
	q, err := pgxTx(tx)
	if err != nil {
		return err
	}

	query := `
		UPDATE withdrawals
		SET status = $2, cashflow_id = $3, withdrawal = $4, updated_at = $5, updated_by = $6
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		w.ID,
		w.Status,
		w.CashflowID,
		w.Withdrawal,
		timeToPgTimestamptz(w.UpdatedAt),
		w.UpdatedBy,
	)
	return expectOne(tag, err, domain.ErrWithdrawalNotFound)
}

// GetByID retrieves a request by ID.
func (r *WithdrawalRepository) GetByID(ctx context.Context, id string) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1`

	return scanWithdrawal(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a request by ID with a FOR UPDATE lock.
func (r *WithdrawalRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Withdrawal, error) {
	q, err := pgxTx(tx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`

	return scanWithdrawal(q.QueryRow(ctx, query, id))
}

// Find lists requests matching filter, most recently updated first.
func (r *WithdrawalRepository) Find(ctx context.Context, filter domain.WithdrawalFilter, page domain.Pagination) (*domain.PagingList[*domain.Withdrawal], error) {
	page = page.Normalize()

	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Currency != "" {
		where = append(where, "currency = "+arg(filter.Currency))
	}
	if len(filter.Statuses) > 0 {
		where = append(where, "status = ANY("+arg(statusStrings(filter.Statuses))+")")
	}
	if !filter.UpdatedFrom.IsZero() {
		where = append(where, "updated_at >= "+arg(timeToPgTimestamptz(domain.TruncateDay(filter.UpdatedFrom))))
	}
	if !filter.UpdatedTo.IsZero() {
		where = append(where, "updated_at <= "+arg(timeToPgTimestamptz(domain.DayTo(filter.UpdatedTo))))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM withdrawals`+clause, args...).Scan(&page.Total); err != nil {
		return nil, err
	}

	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals` + clause +
		` ORDER BY updated_at DESC, id DESC LIMIT ` + arg(page.Size) + ` OFFSET ` + arg(page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	items, err := collectWithdrawals(rows)
	if err != nil {
		return nil, err
	}

	return &domain.PagingList[*domain.Withdrawal]{Items: items, Page: page}, nil
}

// FindByEventDay returns unfinished requests whose event day is eventDay.
func (r *WithdrawalRepository) FindByEventDay(ctx context.Context, eventDay time.Time) ([]*domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE event_day = $1 AND status = ANY($2)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, dayToDate(eventDay), statusStrings(domain.UnprocessedStatuses))
	if err != nil {
		return nil, err
	}

	return collectWithdrawals(rows)
}

// FindPendingByAccount returns an account's unfinished requests, newest
// update first. An empty currency matches every currency.
func (r *WithdrawalRepository) FindPendingByAccount(ctx context.Context, tx usecase.Transaction, accountID, currency string) ([]*domain.Withdrawal, error) {
	q, err := pgxTx(tx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE account_id = $1 AND ($2 = '' OR currency = $2) AND status = ANY($3)
		ORDER BY updated_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, accountID, currency, statusStrings(domain.UnprocessedStatuses))
	if err != nil {
		return nil, err
	}

	return collectWithdrawals(rows)
}

func collectWithdrawals(rows pgx.Rows) ([]*domain.Withdrawal, error) {
	defer rows.Close()

	var items []*domain.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}

	return items, rows.Err()
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var (
		w                            domain.Withdrawal
		absAmount                    pgtype.Numeric
		requestDay, eventDay, valDay pgtype.Date
		requestDate                  pgtype.Timestamptz
		createdAt, updatedAt         pgtype.Timestamptz
	)

	err := row.Scan(
		&w.ID,
		&w.AccountID,
		&w.Currency,
		&absAmount,
		&w.Withdrawal,
		&requestDay,
		&requestDate,
		&eventDay,
		&valDay,
		&w.TargetFiCode,
		&w.TargetFiAccount,
		&w.SelfFiCode,
		&w.SelfFiAccount,
		&w.Status,
		&w.CashflowID,
		&createdAt,
		&w.CreatedBy,
		&updatedAt,
		&w.UpdatedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}

	w.AbsAmount = numericToDecimal(absAmount)
	w.RequestDay = dateToDay(requestDay)
	w.RequestDate = requestDate.Time
	w.EventDay = dateToDay(eventDay)
	w.ValueDay = dateToDay(valDay)
	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time
	return &w, nil
}
