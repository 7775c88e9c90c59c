package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/infrastructure/idlock"
	"github.com/iho/cashledger/internal/infrastructure/metrics"
)

// Settlement item outcomes, used as metric labels.
const (
	outcomeProcessed = "processed"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
	outcomeSkipped   = "skipped"
)

// SettlementUseCase runs the daily settlement jobs. Each job is audited once
// as a system event; items are settled one by one, each under its account's
// write lock and in its own transaction.
type SettlementUseCase struct {
	txManager   TransactionManager
	retrier     Retrier
	locker      *idlock.Locker
	withdrawals *WithdrawalBook
	cashflows   *CashflowBook
	calendar    *BusinessCalendar
	audit       *AuditTrail
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewSettlementUseCase creates a new SettlementUseCase.
func NewSettlementUseCase(
	txManager TransactionManager,
	retrier Retrier,
	locker *idlock.Locker,
	withdrawals *WithdrawalBook,
	cashflows *CashflowBook,
	calendar *BusinessCalendar,
	audit *AuditTrail,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *SettlementUseCase {
	return &SettlementUseCase{
		txManager:   txManager,
		retrier:     retrier,
		locker:      locker,
		withdrawals: withdrawals,
		cashflows:   cashflows,
		calendar:    calendar,
		audit:       audit,
		logger:      logger,
		metrics:     metrics,
	}
}

// CloseWithdrawals processes every withdrawal request whose event day is
// today. A failing item is marked Error and the run continues.
func (uc *SettlementUseCase) CloseWithdrawals(ctx context.Context) error {
	ctx = domain.WithActor(ctx, domain.SystemActor)

	return uc.audit.AuditEvent(ctx, CategoryBatch, JobCloseWithdrawals, func(ctx context.Context) error {
		defer uc.observeRun(JobCloseWithdrawals, time.Now())

		items, err := uc.withdrawals.FindDueToday(ctx)
		if err != nil {
			return err
		}

		for _, w := range items {
			if w.Status != domain.StatusUnprocessed {
				uc.count(JobCloseWithdrawals, outcomeSkipped)
				continue
			}
			id := w.ID
			uc.settle(ctx, JobCloseWithdrawals, w.AccountID, id,
				func(ctx context.Context, tx Transaction) error {
					_, err := uc.withdrawals.Process(ctx, tx, id)
					return err
				},
				func(ctx context.Context, tx Transaction) error {
					return uc.withdrawals.MarkError(ctx, tx, id)
				},
			)
		}
		return nil
	})
}

// RealizeCashflows realizes every cashflow valued today. A failing item is
// marked Error and the run continues.
func (uc *SettlementUseCase) RealizeCashflows(ctx context.Context) error {
	ctx = domain.WithActor(ctx, domain.SystemActor)

	return uc.audit.AuditEvent(ctx, CategoryBatch, JobRealizeCashflows, func(ctx context.Context) error {
		defer uc.observeRun(JobRealizeCashflows, time.Now())

		today, err := uc.calendar.Today(ctx)
		if err != nil {
			return err
		}
		items, err := uc.cashflows.FindDueForRealization(ctx, today)
		if err != nil {
			return err
		}

		for _, cf := range items {
			if cf.Status != domain.StatusUnprocessed {
				uc.count(JobRealizeCashflows, outcomeSkipped)
				continue
			}
			id := cf.ID
			uc.settle(ctx, JobRealizeCashflows, cf.AccountID, id,
				func(ctx context.Context, tx Transaction) error {
					_, err := uc.cashflows.Realize(ctx, tx, id)
					return err
				},
				func(ctx context.Context, tx Transaction) error {
					return uc.cashflows.MarkError(ctx, tx, id)
				},
			)
		}
		return nil
	})
}

// AdvanceBusinessDay moves the business day forward by one business day.
func (uc *SettlementUseCase) AdvanceBusinessDay(ctx context.Context) error {
	ctx = domain.WithActor(ctx, domain.SystemActor)

	return uc.audit.AuditEvent(ctx, CategoryBatch, JobAdvanceBusinessDay, func(ctx context.Context) error {
		_, err := uc.calendar.AdvanceDay(ctx)
		return err
	})
}

// FindWithdrawals lists withdrawal requests for operators, most recently
// updated first.
func (uc *SettlementUseCase) FindWithdrawals(ctx context.Context, filter domain.WithdrawalFilter, page domain.Pagination) (*domain.PagingList[*domain.Withdrawal], error) {
	return uc.withdrawals.Find(ctx, filter, page)
}

// settle runs one item under its account's write lock. On failure the item is
// marked Error in a fresh transaction; a failure there is only logged.
func (uc *SettlementUseCase) settle(ctx context.Context, job, accountID, id string, run, markError func(ctx context.Context, tx Transaction) error) {
	log := uc.logger.With().Str("job", job).Str("account_id", accountID).Str("item_id", id).Logger()

	err := uc.locker.Call(accountID, idlock.Write, func() error {
		err := inTx(ctx, uc.txManager, uc.retrier, func(ctx context.Context, tx Transaction) error {
			return runRecovered(ctx, func(ctx context.Context) error { return run(ctx, tx) })
		})
		if err == nil {
			return nil
		}

		if domain.IsRejection(err) {
			log.Warn().Err(err).Msg("settlement item rejected")
		} else {
			log.Error().Err(err).Msg("settlement item failed")
		}

		if markErr := inTx(ctx, uc.txManager, nil, markError); markErr != nil {
			log.Warn().Err(markErr).Msg("failed to mark settlement item as error")
		}
		return err
	})

	switch {
	case err == nil:
		uc.count(job, outcomeProcessed)
	case domain.IsRejection(err):
		uc.count(job, outcomeRejected)
	default:
		uc.count(job, outcomeFailed)
	}
}

func (uc *SettlementUseCase) count(job, outcome string) {
	if uc.metrics != nil {
		uc.metrics.SettlementItems.WithLabelValues(job, outcome).Inc()
	}
}

func (uc *SettlementUseCase) observeRun(job string, start time.Time) {
	if uc.metrics != nil {
		uc.metrics.SettlementDuration.WithLabelValues(job).Observe(time.Since(start).Seconds())
	}
}
