package usecase

import (
	"context"
	"fmt"
	"time"
)

// timeoutSource is implemented by transaction managers configured with their
// own transaction timeout.
type timeoutSource interface {
	TxTimeout() time.Duration
}

func txTimeout(m TransactionManager) time.Duration {
	if s, ok := m.(timeoutSource); ok && s.TxTimeout() > 0 {
		return s.TxTimeout()
	}
	return DefaultTransactionTimeout
}

// inTx runs fn in a transaction bounded by the manager's timeout and
// commits when fn succeeds. With a retrier the whole attempt, including
// Begin and Commit, is repeated on transient storage failures.
func inTx(ctx context.Context, txManager TransactionManager, retrier Retrier, fn func(ctx context.Context, tx Transaction) error) error {
	timeout := txTimeout(txManager)
	attempt := func() error {
		txCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		tx, err := txManager.Begin(txCtx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback(txCtx) }()

		if err := fn(txCtx, tx); err != nil {
			return err
		}

		return tx.Commit(txCtx)
	}

	if retrier == nil {
		return attempt()
	}
	return retrier.Retry(ctx, attempt)
}
