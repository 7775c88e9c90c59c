package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AssetPositionCalculator answers whether an account can fund a withdrawal.
type AssetPositionCalculator struct {
	ledger         *BalanceLedger
	cashflowRepo   CashflowRepository
	withdrawalRepo WithdrawalRepository
}

// NewAssetPositionCalculator creates a new AssetPositionCalculator.
func NewAssetPositionCalculator(ledger *BalanceLedger, cashflowRepo CashflowRepository, withdrawalRepo WithdrawalRepository) *AssetPositionCalculator {
	return &AssetPositionCalculator{
		ledger:         ledger,
		cashflowRepo:   cashflowRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// Available returns balance + unrealized cashflows up to valueDay - pending
// withdrawals. It reads only; hold at least the account's read lock for a
// consistent view.
func (c *AssetPositionCalculator) Available(ctx context.Context, tx Transaction, accountID, currency string, valueDay time.Time) (decimal.Decimal, error) {
	balance, err := c.ledger.Current(ctx, tx, accountID, currency)
	if err != nil {
		return decimal.Zero, err
	}

	unrealized, err := c.cashflowRepo.FindUnrealized(ctx, tx, accountID, currency, valueDay)
	if err != nil {
		return decimal.Zero, err
	}
	for _, cf := range unrealized {
		balance = balance.Add(cf.Amount)
	}

	pending, err := c.withdrawalRepo.FindPendingByAccount(ctx, tx, accountID, currency)
	if err != nil {
		return decimal.Zero, err
	}
	for _, w := range pending {
		if w.Withdrawal {
			balance = balance.Sub(w.AbsAmount)
		}
	}

	return balance, nil
}

// CanWithdraw reports whether amount fits in the available position.
func (c *AssetPositionCalculator) CanWithdraw(ctx context.Context, tx Transaction, accountID, currency string, amount decimal.Decimal, valueDay time.Time) (bool, error) {
	available, err := c.Available(ctx, tx, accountID, currency, valueDay)
	if err != nil {
		return false, err
	}
	return !available.Sub(amount).IsNegative(), nil
}
