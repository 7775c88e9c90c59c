package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// WithdrawalSettlementDays is the number of business days between a
	// withdrawal request and its value day.
	WithdrawalSettlementDays = 3
)

// Audit categories.
const (
	CategoryAsset  = "asset"
	CategorySystem = "system"
	CategoryBatch  = "batch"
)

// Settlement job names, used as metric labels and audit messages.
const (
	JobCloseWithdrawals   = "close-withdrawals"
	JobRealizeCashflows   = "realize-cashflows"
	JobAdvanceBusinessDay = "advance-business-day"
)
