package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/cashledger/internal/domain"
)

// BalanceLedger maintains one cash balance row per account, currency and
// business day.
type BalanceLedger struct {
	balanceRepo CashBalanceRepository
	calendar    *BusinessCalendar
	idGen       IDGenerator
	clock       Clock
}

// NewBalanceLedger creates a new BalanceLedger.
func NewBalanceLedger(balanceRepo CashBalanceRepository, calendar *BusinessCalendar, idGen IDGenerator, clock Clock) *BalanceLedger {
	return &BalanceLedger{
		balanceRepo: balanceRepo,
		calendar:    calendar,
		idGen:       idGen,
		clock:       clock,
	}
}

// GetOrCreate returns today's balance row, creating it from the latest prior
// row (or zero) when missing.
func (l *BalanceLedger) GetOrCreate(ctx context.Context, tx Transaction, accountID, currency string) (*domain.CashBalance, error) {
	balance, found, err := l.current(ctx, tx, accountID, currency)
	if err != nil {
		return nil, err
	}
	if found {
		return balance, nil
	}

	if err := l.balanceRepo.Create(ctx, tx, balance); err != nil {
		return nil, fmt.Errorf("create cash balance: %w", err)
	}
	return balance, nil
}

// Current returns the balance as of today without persisting anything.
func (l *BalanceLedger) Current(ctx context.Context, tx Transaction, accountID, currency string) (decimal.Decimal, error) {
	balance, _, err := l.current(ctx, tx, accountID, currency)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Amount, nil
}

// Add applies delta to balance and persists it. The caller must hold the
// account's write lock.
func (l *BalanceLedger) Add(ctx context.Context, tx Transaction, balance *domain.CashBalance, delta decimal.Decimal) error {
	if err := balance.Add(delta, l.clock.Now()); err != nil {
		return err
	}
	if err := l.balanceRepo.Update(ctx, tx, balance); err != nil {
		return fmt.Errorf("update cash balance: %w", err)
	}
	return nil
}

// current returns today's row, or an unsaved carry-forward row with found set
// to false.
func (l *BalanceLedger) current(ctx context.Context, tx Transaction, accountID, currency string) (*domain.CashBalance, bool, error) {
	today, err := l.calendar.Today(ctx)
	if err != nil {
		return nil, false, err
	}

	balance, err := l.balanceRepo.GetByDay(ctx, tx, accountID, currency, today)
	if err == nil {
		return balance, true, nil
	}
	if !errors.Is(err, domain.ErrEntityNotFound) {
		return nil, false, fmt.Errorf("load cash balance: %w", err)
	}

	prev, err := l.balanceRepo.GetLatestBefore(ctx, tx, accountID, currency, today)
	if err != nil && !errors.Is(err, domain.ErrEntityNotFound) {
		return nil, false, fmt.Errorf("load previous cash balance: %w", err)
	}
	if err != nil {
		prev = nil
	}

	return domain.CarryForward(l.idGen.Generate(), accountID, currency, today, prev, l.clock.Now()), false, nil
}
