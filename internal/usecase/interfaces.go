package usecase

import (
	"context"
	"time"

	"github.com/iho/cashledger/internal/domain"
)

// CashBalanceRepository defines data access for daily cash balances.
type CashBalanceRepository interface {
	// GetByDay returns domain.ErrCashBalanceNotFound when no row exists for day.
	GetByDay(ctx context.Context, tx Transaction, accountID, currency string, day time.Time) (*domain.CashBalance, error)
	// GetLatestBefore returns the most recent row strictly before day.
	GetLatestBefore(ctx context.Context, tx Transaction, accountID, currency string, day time.Time) (*domain.CashBalance, error)
	Create(ctx context.Context, tx Transaction, balance *domain.CashBalance) error
	Update(ctx context.Context, tx Transaction, balance *domain.CashBalance) error
}

// CashflowRepository defines data access for cashflows.
type CashflowRepository interface {
	Create(ctx context.Context, tx Transaction, cf *domain.Cashflow) error
	Update(ctx context.Context, tx Transaction, cf *domain.Cashflow) error
	GetByID(ctx context.Context, id string) (*domain.Cashflow, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Cashflow, error)
	// FindUnrealized returns Unprocessed or Error cashflows with value day on or
	// before valueDay, ordered by id.
	FindUnrealized(ctx context.Context, tx Transaction, accountID, currency string, valueDay time.Time) ([]*domain.Cashflow, error)
	// FindByValueDay returns not yet finished cashflows with exactly valueDay,
	// ordered by id.
	FindByValueDay(ctx context.Context, valueDay time.Time) ([]*domain.Cashflow, error)
}

// WithdrawalRepository defines data access for withdrawal requests.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx Transaction, w *domain.Withdrawal) error
	Update(ctx context.Context, tx Transaction, w *domain.Withdrawal) error
	GetByID(ctx context.Context, id string) (*domain.Withdrawal, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Withdrawal, error)
	// Find returns withdrawals matching filter, newest update first.
	Find(ctx context.Context, filter domain.WithdrawalFilter, page domain.Pagination) (*domain.PagingList[*domain.Withdrawal], error)
	// FindByEventDay returns not yet finished requests with exactly eventDay,
	// ordered by id.
	FindByEventDay(ctx context.Context, eventDay time.Time) ([]*domain.Withdrawal, error)
	// FindPendingByAccount returns not yet finished requests for an account,
	// newest update first. An empty currency matches all currencies.
	FindPendingByAccount(ctx context.Context, tx Transaction, accountID, currency string) ([]*domain.Withdrawal, error)
}

// FiAccountRepository defines data access for financial institution accounts.
type FiAccountRepository interface {
	GetFiAccount(ctx context.Context, tx Transaction, accountID, category, currency string) (*domain.FiAccount, error)
	GetSelfFiAccount(ctx context.Context, tx Transaction, category, currency string) (*domain.SelfFiAccount, error)
	SaveFiAccount(ctx context.Context, tx Transaction, account *domain.FiAccount) error
	SaveSelfFiAccount(ctx context.Context, tx Transaction, account *domain.SelfFiAccount) error
}

// HolidayRepository defines data access for the holiday master.
type HolidayRepository interface {
	// GetByDay returns nil, nil when day is not a holiday.
	GetByDay(ctx context.Context, category string, day time.Time) (*domain.Holiday, error)
	FindByYear(ctx context.Context, category string, year int) ([]*domain.Holiday, error)
	// ReplaceYear deletes every holiday of year in category and stores items.
	ReplaceYear(ctx context.Context, tx Transaction, category string, year int, items []*domain.Holiday) error
}

// SettingRepository defines data access for application settings.
type SettingRepository interface {
	// Get returns nil, nil when the setting does not exist.
	Get(ctx context.Context, id string) (*domain.AppSetting, error)
	Save(ctx context.Context, tx Transaction, setting *domain.AppSetting) error
}

// AuditRepository defines data access for audit records. Records are written
// outside business transactions so they survive rollbacks.
type AuditRepository interface {
	Create(ctx context.Context, record *domain.AuditRecord) error
	Update(ctx context.Context, record *domain.AuditRecord) error
	GetByID(ctx context.Context, id string) (*domain.AuditRecord, error)
	Find(ctx context.Context, filter domain.AuditFilter, page domain.Pagination) (*domain.PagingList[*domain.AuditRecord], error)
}

// HolidayCache memoizes per-day holiday lookups.
type HolidayCache interface {
	// Get reports whether day is a holiday; ok is false on a cache miss.
	// gen identifies the cache generation the lookup ran in.
	Get(ctx context.Context, category string, day time.Time) (holiday, ok bool, gen int64, err error)
	// Set stores the answer only if no Invalidate happened since gen was read.
	Set(ctx context.Context, category string, day time.Time, holiday bool, gen int64) error
	// Invalidate drops every cached entry.
	Invalidate(ctx context.Context) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
