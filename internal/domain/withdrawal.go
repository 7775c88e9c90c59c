package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal is a cash in/out request against an account. Withdrawal set to
// false denotes a deposit.
type Withdrawal struct {
	ID              string
	AccountID       string
	Currency        string
	AbsAmount       decimal.Decimal
	Withdrawal      bool
	RequestDay      time.Time
	RequestDate     time.Time
	EventDay        time.Time
	ValueDay        time.Time
	TargetFiCode    string
	TargetFiAccount string
	SelfFiCode      string
	SelfFiAccount   string
	Status          ActionStatus
	CashflowID      *string
	CreatedAt       time.Time
	CreatedBy       string
	UpdatedAt       time.Time
	UpdatedBy       string
}

// RegWithdrawal carries the parameters of a withdrawal request.
type RegWithdrawal struct {
	AccountID string
	Currency  string
	AbsAmount decimal.Decimal
}

// Validate checks the static parts of the request.
func (r RegWithdrawal) Validate() error {
	if err := ValidateCurrency(r.Currency); err != nil {
		return err
	}
	if !r.AbsAmount.IsPositive() {
		return RejectField("absAmount", KeyAbsAmountZero)
	}
	return nil
}

// NewWithdrawal builds an unprocessed withdrawal request. eventDay is the day
// it will be closed, valueDay the day its cashflow settles.
func NewWithdrawal(id string, r RegWithdrawal, now TimePoint, eventDay, valueDay time.Time,
	target *FiAccount, self *SelfFiAccount, actor string) *Withdrawal {
	return &Withdrawal{
		ID:              id,
		AccountID:       r.AccountID,
		Currency:        r.Currency,
		AbsAmount:       r.AbsAmount,
		Withdrawal:      true,
		RequestDay:      now.Day,
		RequestDate:     now.Time,
		EventDay:        TruncateDay(eventDay),
		ValueDay:        TruncateDay(valueDay),
		TargetFiCode:    target.FiCode,
		TargetFiAccount: target.FiAccountID,
		SelfFiCode:      self.FiCode,
		SelfFiAccount:   self.FiAccountID,
		Status:          StatusUnprocessed,
		CreatedAt:       now.Time,
		CreatedBy:       actor,
		UpdatedAt:       now.Time,
		UpdatedBy:       actor,
	}
}

// Process closes the request and returns the cashflow registration to book.
// Only Unprocessed requests qualify; Error requests need operator attention.
func (w *Withdrawal) Process(now TimePoint, actor string) (RegCashflow, error) {
	if w.Status != StatusUnprocessed {
		return RegCashflow{}, Reject(KeyActionUnprocessing)
	}
	if now.BeforeDay(w.EventDay) {
		return RegCashflow{}, RejectField("eventDay", KeyCashInOutAfterEquals)
	}
	w.Status = StatusProcessed
	w.touch(now, actor)
	return w.cashflow(), nil
}

// Cancel withdraws the request before its event day.
func (w *Withdrawal) Cancel(now TimePoint, actor string) error {
	if !w.Status.IsUnprocessing() {
		return Reject(KeyActionUnprocessing)
	}
	if now.AfterEqualsDay(w.EventDay) {
		return RejectField("eventDay", KeyCashInOutBeforeEqual)
	}
	w.Status = StatusCancelled
	w.touch(now, actor)
	return nil
}

// MarkError moves a not yet finished request to Error.
func (w *Withdrawal) MarkError(now TimePoint, actor string) error {
	if !w.Status.IsUnprocessed() {
		return Reject(KeyActionUnprocessing)
	}
	w.Status = StatusError
	w.touch(now, actor)
	return nil
}

// SignedAmount is the balance effect of the request.
func (w *Withdrawal) SignedAmount() decimal.Decimal {
	if w.Withdrawal {
		return w.AbsAmount.Neg()
	}
	return w.AbsAmount
}

func (w *Withdrawal) cashflow() RegCashflow {
	reg := RegCashflow{
		AccountID: w.AccountID,
		Currency:  w.Currency,
		Amount:    w.SignedAmount(),
		Type:      CashflowCashIn,
		Remark:    RemarkCashIn,
		EventDay:  &w.EventDay,
		ValueDay:  w.ValueDay,
	}
	if w.Withdrawal {
		reg.Type = CashflowCashOut
		reg.Remark = RemarkCashOut
	}
	return reg
}

func (w *Withdrawal) touch(now TimePoint, actor string) {
	w.UpdatedAt = now.Time
	w.UpdatedBy = actor
}

// WithdrawalFilter selects withdrawals updated within a day range.
type WithdrawalFilter struct {
	Currency    string
	Statuses    []ActionStatus
	UpdatedFrom time.Time
	UpdatedTo   time.Time
}
