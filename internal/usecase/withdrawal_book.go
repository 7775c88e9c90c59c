package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/infrastructure/metrics"
)

// WithdrawalBook manages withdrawal requests from acceptance to settlement.
type WithdrawalBook struct {
	withdrawalRepo WithdrawalRepository
	fiAccountRepo  FiAccountRepository
	cashflows      *CashflowBook
	position       *AssetPositionCalculator
	calendar       *BusinessCalendar
	idGen          IDGenerator
	logger         zerolog.Logger
	metrics        *metrics.Metrics
}

// NewWithdrawalBook creates a new WithdrawalBook.
func NewWithdrawalBook(
	withdrawalRepo WithdrawalRepository,
	fiAccountRepo FiAccountRepository,
	cashflows *CashflowBook,
	position *AssetPositionCalculator,
	calendar *BusinessCalendar,
	idGen IDGenerator,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *WithdrawalBook {
	return &WithdrawalBook{
		withdrawalRepo: withdrawalRepo,
		fiAccountRepo:  fiAccountRepo,
		cashflows:      cashflows,
		position:       position,
		calendar:       calendar,
		idGen:          idGen,
		logger:         logger,
		metrics:        metrics,
	}
}

// Withdraw accepts a withdrawal request. It is closed today and settles
// WithdrawalSettlementDays business days later.
func (b *WithdrawalBook) Withdraw(ctx context.Context, tx Transaction, reg domain.RegWithdrawal) (*domain.Withdrawal, error) {
	if err := reg.Validate(); err != nil {
		b.rejected("invalid")
		return nil, err
	}

	now, err := b.calendar.Now(ctx)
	if err != nil {
		return nil, err
	}
	valueDay, err := b.calendar.Day(ctx, now.Day, WithdrawalSettlementDays)
	if err != nil {
		return nil, err
	}

	ok, err := b.position.CanWithdraw(ctx, tx, reg.AccountID, reg.Currency, reg.AbsAmount, valueDay)
	if err != nil {
		return nil, err
	}
	if !ok {
		b.rejected("insufficient_funds")
		return nil, domain.RejectField("absAmount", domain.KeyCashInOutWithdraw)
	}

	target, err := b.fiAccountRepo.GetFiAccount(ctx, tx, reg.AccountID, domain.FiAccountCategoryCashOut, reg.Currency)
	if err != nil {
		return nil, err
	}
	self, err := b.fiAccountRepo.GetSelfFiAccount(ctx, tx, domain.FiAccountCategoryCashOut, reg.Currency)
	if err != nil {
		return nil, err
	}

	w := domain.NewWithdrawal(b.idGen.Generate(), reg, now, now.Day, valueDay, target, self, domain.ActorFrom(ctx).ID)
	if err := b.withdrawalRepo.Create(ctx, tx, w); err != nil {
		return nil, fmt.Errorf("create withdrawal: %w", err)
	}

	if b.metrics != nil {
		b.metrics.WithdrawalsRequested.Inc()
	}
	return w, nil
}

// Process closes a due request and books its cashflow. The caller must hold
// the account's write lock.
func (b *WithdrawalBook) Process(ctx context.Context, tx Transaction, id string) (*domain.Withdrawal, error) {
	now, err := b.calendar.Now(ctx)
	if err != nil {
		return nil, err
	}

	w, err := b.withdrawalRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	reg, err := w.Process(now, domain.ActorFrom(ctx).ID)
	if err != nil {
		return nil, err
	}

	cf, err := b.cashflows.Register(ctx, tx, reg)
	if err != nil {
		return nil, err
	}
	w.CashflowID = &cf.ID

	if err := b.withdrawalRepo.Update(ctx, tx, w); err != nil {
		return nil, fmt.Errorf("update withdrawal: %w", err)
	}
	return w, nil
}

// Cancel cancels a request before its event day.
func (b *WithdrawalBook) Cancel(ctx context.Context, tx Transaction, id string) (*domain.Withdrawal, error) {
	now, err := b.calendar.Now(ctx)
	if err != nil {
		return nil, err
	}

	w, err := b.withdrawalRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := w.Cancel(now, domain.ActorFrom(ctx).ID); err != nil {
		return nil, err
	}
	if err := b.withdrawalRepo.Update(ctx, tx, w); err != nil {
		return nil, fmt.Errorf("update withdrawal: %w", err)
	}

	if b.metrics != nil {
		b.metrics.WithdrawalsCancelled.Inc()
	}
	return w, nil
}

// MarkError moves a request to Error.
func (b *WithdrawalBook) MarkError(ctx context.Context, tx Transaction, id string) error {
	now, err := b.calendar.Now(ctx)
	if err != nil {
		return err
	}

	w, err := b.withdrawalRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := w.MarkError(now, domain.ActorFrom(ctx).ID); err != nil {
		return err
	}
	return b.withdrawalRepo.Update(ctx, tx, w)
}

// Find lists requests by currency, status and update date range.
func (b *WithdrawalBook) Find(ctx context.Context, filter domain.WithdrawalFilter, page domain.Pagination) (*domain.PagingList[*domain.Withdrawal], error) {
	return b.withdrawalRepo.Find(ctx, filter, page.Normalize())
}

// FindDueToday returns unfinished requests whose event day is today,
// ordered by id.
func (b *WithdrawalBook) FindDueToday(ctx context.Context) ([]*domain.Withdrawal, error) {
	today, err := b.calendar.Today(ctx)
	if err != nil {
		return nil, err
	}
	return b.withdrawalRepo.FindByEventDay(ctx, today)
}

// FindPendingByAccount returns an account's unfinished requests.
func (b *WithdrawalBook) FindPendingByAccount(ctx context.Context, tx Transaction, accountID string) ([]*domain.Withdrawal, error) {
	return b.withdrawalRepo.FindPendingByAccount(ctx, tx, accountID, "")
}

// Get returns a request by id.
func (b *WithdrawalBook) Get(ctx context.Context, id string) (*domain.Withdrawal, error) {
	return b.withdrawalRepo.GetByID(ctx, id)
}

func (b *WithdrawalBook) rejected(reason string) {
	if b.metrics != nil {
		b.metrics.WithdrawalsRejected.WithLabelValues(reason).Inc()
	}
}
