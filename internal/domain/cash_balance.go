package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashBalance is an account's cash position in one currency as of a base day.
// At most one row exists per (account, currency, base day).
type CashBalance struct {
	ID        string
	AccountID string
	Currency  string
	BaseDay   time.Time
	Amount    decimal.Decimal
	UpdatedAt time.Time
}

// CarryForward creates the row for baseDay from the latest prior row.
// prev may be nil, in which case the balance starts at zero.
func CarryForward(id, accountID, currency string, baseDay time.Time, prev *CashBalance, now time.Time) *CashBalance {
	amount := decimal.Zero
	if prev != nil {
		amount = prev.Amount
	}
	return &CashBalance{
		ID:        id,
		AccountID: accountID,
		Currency:  currency,
		BaseDay:   TruncateDay(baseDay),
		Amount:    amount,
		UpdatedAt: now,
	}
}

// Add rounds the current amount down to the currency's scale and applies
// delta in full.
func (b *CashBalance) Add(delta decimal.Decimal, now time.Time) error {
	scale, err := CurrencyScale(b.Currency)
	if err != nil {
		return err
	}
	b.Amount = b.Amount.Truncate(scale).Add(delta)
	b.UpdatedAt = now
	return nil
}
