package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/infrastructure/metrics"
)

// CashflowBook registers cashflows and realizes them into balances.
type CashflowBook struct {
	cashflowRepo CashflowRepository
	ledger       *BalanceLedger
	calendar     *BusinessCalendar
	idGen        IDGenerator
	logger       zerolog.Logger
	metrics      *metrics.Metrics
}

// NewCashflowBook creates a new CashflowBook.
func NewCashflowBook(
	cashflowRepo CashflowRepository,
	ledger *BalanceLedger,
	calendar *BusinessCalendar,
	idGen IDGenerator,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *CashflowBook {
	return &CashflowBook{
		cashflowRepo: cashflowRepo,
		ledger:       ledger,
		calendar:     calendar,
		idGen:        idGen,
		logger:       logger,
		metrics:      metrics,
	}
}

// Register books a new cashflow. A cashflow valued today is realized before
// Register returns.
func (b *CashflowBook) Register(ctx context.Context, tx Transaction, reg domain.RegCashflow) (*domain.Cashflow, error) {
	now, err := b.calendar.Now(ctx)
	if err != nil {
		return nil, err
	}
	if err := reg.Validate(now); err != nil {
		return nil, err
	}

	actor := domain.ActorFrom(ctx).ID
	cf := domain.NewCashflow(b.idGen.Generate(), reg, now, actor)
	if err := b.cashflowRepo.Create(ctx, tx, cf); err != nil {
		return nil, fmt.Errorf("create cashflow: %w", err)
	}
	if b.metrics != nil {
		b.metrics.CashflowsRegistered.Inc()
	}

	if cf.CanRealize(now) {
		if err := b.realize(ctx, tx, cf, now, actor); err != nil {
			return nil, err
		}
	}
	return cf, nil
}

// Realize applies a due cashflow to its account balance. The caller must hold
// the account's write lock.
func (b *CashflowBook) Realize(ctx context.Context, tx Transaction, id string) (*domain.Cashflow, error) {
	now, err := b.calendar.Now(ctx)
	if err != nil {
		return nil, err
	}

	cf, err := b.cashflowRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := b.realize(ctx, tx, cf, now, domain.ActorFrom(ctx).ID); err != nil {
		return nil, err
	}
	return cf, nil
}

func (b *CashflowBook) realize(ctx context.Context, tx Transaction, cf *domain.Cashflow, now domain.TimePoint, actor string) error {
	if err := cf.Realize(now, actor); err != nil {
		return err
	}
	if err := b.cashflowRepo.Update(ctx, tx, cf); err != nil {
		return fmt.Errorf("update cashflow: %w", err)
	}

	balance, err := b.ledger.GetOrCreate(ctx, tx, cf.AccountID, cf.Currency)
	if err != nil {
		return err
	}
	if err := b.ledger.Add(ctx, tx, balance, cf.Amount); err != nil {
		return err
	}

	if b.metrics != nil {
		b.metrics.CashflowsRealized.Inc()
	}
	b.logger.Debug().
		Str("cashflow_id", cf.ID).
		Str("account_id", cf.AccountID).
		Str("amount", cf.Amount.String()).
		Msg("cashflow realized")
	return nil
}

// MarkError moves a cashflow to Error.
func (b *CashflowBook) MarkError(ctx context.Context, tx Transaction, id string) error {
	now, err := b.calendar.Now(ctx)
	if err != nil {
		return err
	}

	cf, err := b.cashflowRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := cf.MarkError(now, domain.ActorFrom(ctx).ID); err != nil {
		return err
	}
	return b.cashflowRepo.Update(ctx, tx, cf)
}

// FindUnrealized returns cashflows still pending with value day on or before
// valueDay.
func (b *CashflowBook) FindUnrealized(ctx context.Context, tx Transaction, accountID, currency string, valueDay time.Time) ([]*domain.Cashflow, error) {
	return b.cashflowRepo.FindUnrealized(ctx, tx, accountID, currency, domain.TruncateDay(valueDay))
}

// FindDueForRealization returns every unfinished cashflow valued on valueDay.
func (b *CashflowBook) FindDueForRealization(ctx context.Context, valueDay time.Time) ([]*domain.Cashflow, error) {
	return b.cashflowRepo.FindByValueDay(ctx, domain.TruncateDay(valueDay))
}

// Get returns a cashflow by id.
func (b *CashflowBook) Get(ctx context.Context, id string) (*domain.Cashflow, error) {
	return b.cashflowRepo.GetByID(ctx, id)
}
