package domain

import (
	"errors"
	"fmt"
)

// Message keys carried by rejections.
const (
	KeyException            = "error.Exception"
	KeyEntityNotFound       = "error.EntityNotFoundException"
	KeyDuplicateID          = "error.duplicateId"
	KeyActionUnprocessing   = "error.ActionStatusType.unprocessing"
	KeyAbsAmountZero        = "error.domain.AbsAmount.zero"
	KeyCurrencyInvalid      = "error.domain.Currency.invalid"
	KeyCashflowRealizeDay   = "error.Cashflow.realizeDay"
	KeyCashflowBeforeEquals = "error.Cashflow.beforeEqualsDay"
	KeyCashInOutAfterEquals = "error.CashInOut.afterEqualsDay"
	KeyCashInOutBeforeEqual = "error.CashInOut.beforeEqualsDay"
	KeyCashInOutWithdraw    = "error.CashInOut.withdrawAmount"
)

// Rejection is an expected, recoverable failure: a validation or state
// transition check that did not pass. It is logged at warn level and never
// counts as a system error.
type Rejection struct {
	Key   string
	Field string
	Args  []string
}

func (r *Rejection) Error() string {
	if r.Field == "" {
		return r.Key
	}
	return r.Field + ": " + r.Key
}

// Is matches rejections by message key so sentinel values work with errors.Is.
func (r *Rejection) Is(target error) bool {
	var t *Rejection
	if !errors.As(target, &t) {
		return false
	}
	return t.Key == r.Key
}

// Global reports whether the rejection is not bound to an input field.
func (r *Rejection) Global() bool {
	return r.Field == ""
}

// Reject creates a global rejection.
func Reject(key string, args ...string) *Rejection {
	return &Rejection{Key: key, Args: args}
}

// RejectField creates a rejection bound to an input field.
func RejectField(field, key string, args ...string) *Rejection {
	return &Rejection{Key: key, Field: field, Args: args}
}

// Sentinel rejections.
var (
	ErrEntityNotFound      = Reject(KeyEntityNotFound)
	ErrDuplicateID         = Reject(KeyDuplicateID)
	ErrAlreadyProcessed    = Reject(KeyActionUnprocessing)
	ErrInvalidAmount       = Reject(KeyAbsAmountZero)
	ErrInvalidCurrency     = Reject(KeyCurrencyInvalid)
	ErrCashflowNotDue      = Reject(KeyCashflowRealizeDay)
	ErrCashflowPastValue   = Reject(KeyCashflowBeforeEquals)
	ErrWithdrawalNotDue    = Reject(KeyCashInOutAfterEquals)
	ErrWithdrawalEventDay  = Reject(KeyCashInOutBeforeEqual)
	ErrInsufficientFunds   = Reject(KeyCashInOutWithdraw)
	ErrCashBalanceNotFound = Reject(KeyEntityNotFound, "CashBalance")
	ErrCashflowNotFound    = Reject(KeyEntityNotFound, "Cashflow")
	ErrWithdrawalNotFound  = Reject(KeyEntityNotFound, "Withdrawal")
	ErrFiAccountNotFound   = Reject(KeyEntityNotFound, "FiAccount")
	ErrAuditRecordNotFound = Reject(KeyEntityNotFound, "AuditRecord")
)

// IsRejection reports whether err carries a Rejection anywhere in its chain.
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}

// InvocationError wraps an unexpected failure: storage errors, programming
// defects, recovered panics.
type InvocationError struct {
	Err error
}

func (e *InvocationError) Error() string {
	if e.Err == nil {
		return KeyException
	}
	return KeyException + ": " + e.Err.Error()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Invocation wraps err as an InvocationError unless it already is one.
func Invocation(err error) error {
	if err == nil {
		return nil
	}
	var ie *InvocationError
	if errors.As(err, &ie) {
		return err
	}
	return &InvocationError{Err: err}
}

// Recovered converts a value obtained from recover() into an InvocationError.
func Recovered(v any) error {
	if err, ok := v.(error); ok {
		return &InvocationError{Err: err}
	}
	return &InvocationError{Err: fmt.Errorf("panic: %v", v)}
}

// Abbreviate shortens s to at most n runes, marking the cut with "...".
func Abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// Left returns the first n runes of s.
func Left(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
