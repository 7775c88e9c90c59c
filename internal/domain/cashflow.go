package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashflowType is the direction of a cash movement.
type CashflowType string

const (
	CashflowCashIn          CashflowType = "cash_in"
	CashflowCashOut         CashflowType = "cash_out"
	CashflowCashTransferIn  CashflowType = "cash_transfer_in"
	CashflowCashTransferOut CashflowType = "cash_transfer_out"
)

// Remarks attached to cashflows.
const (
	RemarkCashIn        = "cashIn"
	RemarkCashInAdjust  = "cashInAdjust"
	RemarkCashInCancel  = "cashInCancel"
	RemarkCashOut       = "cashOut"
	RemarkCashOutAdjust = "cashOutAdjust"
	RemarkCashOutCancel = "cashOutCancel"
)

// Cashflow is a booked cash movement that becomes part of the balance once
// realized on its value day. Amount is signed; its sign is not checked
// against Type.
type Cashflow struct {
	ID        string
	AccountID string
	Currency  string
	Amount    decimal.Decimal
	Type      CashflowType
	Remark    string
	EventDay  time.Time
	EventDate time.Time
	ValueDay  time.Time
	Status    ActionStatus
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}

// RegCashflow carries the parameters of a new cashflow.
type RegCashflow struct {
	AccountID string
	Currency  string
	Amount    decimal.Decimal
	Type      CashflowType
	Remark    string
	EventDay  *time.Time
	ValueDay  time.Time
}

// Validate checks registration input against the current business time.
func (r RegCashflow) Validate(now TimePoint) error {
	if err := ValidateCurrency(r.Currency); err != nil {
		return err
	}
	if now.Day.After(TruncateDay(r.ValueDay)) {
		return RejectField("valueDay", KeyCashflowBeforeEquals)
	}
	return nil
}

// NewCashflow builds an unprocessed cashflow from a registration.
func NewCashflow(id string, r RegCashflow, now TimePoint, actor string) *Cashflow {
	eventDay := now.Day
	if r.EventDay != nil {
		eventDay = TruncateDay(*r.EventDay)
	}
	return &Cashflow{
		ID:        id,
		AccountID: r.AccountID,
		Currency:  r.Currency,
		Amount:    r.Amount,
		Type:      r.Type,
		Remark:    r.Remark,
		EventDay:  eventDay,
		EventDate: now.Time,
		ValueDay:  TruncateDay(r.ValueDay),
		Status:    StatusUnprocessed,
		CreatedAt: now.Time,
		CreatedBy: actor,
		UpdatedAt: now.Time,
		UpdatedBy: actor,
	}
}

// CanRealize reports whether the value day has been reached.
func (c *Cashflow) CanRealize(now TimePoint) bool {
	return now.AfterEqualsDay(c.ValueDay)
}

// Realize marks the cashflow processed. The caller applies Amount to the
// balance in the same transaction.
func (c *Cashflow) Realize(now TimePoint, actor string) error {
	if !c.CanRealize(now) {
		return RejectField("valueDay", KeyCashflowRealizeDay)
	}
	if !c.Status.IsUnprocessing() {
		return Reject(KeyActionUnprocessing)
	}
	c.Status = StatusProcessed
	c.touch(now, actor)
	return nil
}

// MarkError moves a not yet finished cashflow to Error.
func (c *Cashflow) MarkError(now TimePoint, actor string) error {
	if !c.Status.IsUnprocessed() {
		return Reject(KeyActionUnprocessing)
	}
	c.Status = StatusError
	c.touch(now, actor)
	return nil
}

func (c *Cashflow) touch(now TimePoint, actor string) {
	c.UpdatedAt = now.Time
	c.UpdatedBy = actor
}
