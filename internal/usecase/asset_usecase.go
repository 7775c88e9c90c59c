package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/infrastructure/idlock"
)

// AssetUseCase serves customer asset operations. Every operation holds the
// account lock for its whole transaction.
type AssetUseCase struct {
	txManager   TransactionManager
	retrier     Retrier
	locker      *idlock.Locker
	withdrawals *WithdrawalBook
	position    *AssetPositionCalculator
	audit       *AuditTrail
}

// NewAssetUseCase creates a new AssetUseCase.
func NewAssetUseCase(
	txManager TransactionManager,
	retrier Retrier,
	locker *idlock.Locker,
	withdrawals *WithdrawalBook,
	position *AssetPositionCalculator,
	audit *AuditTrail,
) *AssetUseCase {
	return &AssetUseCase{
		txManager:   txManager,
		retrier:     retrier,
		locker:      locker,
		withdrawals: withdrawals,
		position:    position,
		audit:       audit,
	}
}

// Withdraw accepts a withdrawal request for the account.
func (uc *AssetUseCase) Withdraw(ctx context.Context, reg domain.RegWithdrawal) (*domain.Withdrawal, error) {
	msg := fmt.Sprintf("withdraw account=%s currency=%s amount=%s", reg.AccountID, reg.Currency, reg.AbsAmount)

	return WrapValue(ctx, uc.audit, domain.AuditKindActor, CategoryAsset, msg, func(ctx context.Context) (*domain.Withdrawal, error) {
		return idlock.CallValue(uc.locker, reg.AccountID, idlock.Write, func() (*domain.Withdrawal, error) {
			var w *domain.Withdrawal
			err := inTx(ctx, uc.txManager, uc.retrier, func(ctx context.Context, tx Transaction) error {
				var err error
				w, err = uc.withdrawals.Withdraw(ctx, tx, reg)
				return err
			})
			return w, err
		})
	})
}

// CancelWithdrawal cancels a request before its event day. Customers only see
// their own requests.
func (uc *AssetUseCase) CancelWithdrawal(ctx context.Context, id string) (*domain.Withdrawal, error) {
	return WrapValue(ctx, uc.audit, domain.AuditKindActor, CategoryAsset, "cancel withdrawal "+id, func(ctx context.Context) (*domain.Withdrawal, error) {
		current, err := uc.withdrawals.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if actor := domain.ActorFrom(ctx); actor.Role == domain.RoleUser && actor.ID != current.AccountID {
			return nil, domain.ErrWithdrawalNotFound
		}

		return idlock.CallValue(uc.locker, current.AccountID, idlock.Write, func() (*domain.Withdrawal, error) {
			var w *domain.Withdrawal
			err := inTx(ctx, uc.txManager, uc.retrier, func(ctx context.Context, tx Transaction) error {
				var err error
				w, err = uc.withdrawals.Cancel(ctx, tx, id)
				return err
			})
			return w, err
		})
	})
}

// FindPendingWithdrawals lists the account's unfinished requests.
func (uc *AssetUseCase) FindPendingWithdrawals(ctx context.Context, accountID string) ([]*domain.Withdrawal, error) {
	return idlock.CallValue(uc.locker, accountID, idlock.Read, func() ([]*domain.Withdrawal, error) {
		var items []*domain.Withdrawal
		err := inTx(ctx, uc.txManager, nil, func(ctx context.Context, tx Transaction) error {
			var err error
			items, err = uc.withdrawals.FindPendingByAccount(ctx, tx, accountID)
			return err
		})
		return items, err
	})
}

// Available returns the amount the account could withdraw for settlement on
// valueDay.
func (uc *AssetUseCase) Available(ctx context.Context, accountID, currency string, valueDay time.Time) (decimal.Decimal, error) {
	return idlock.CallValue(uc.locker, accountID, idlock.Read, func() (decimal.Decimal, error) {
		var available decimal.Decimal
		err := inTx(ctx, uc.txManager, nil, func(ctx context.Context, tx Transaction) error {
			var err error
			available, err = uc.position.Available(ctx, tx, accountID, currency, valueDay)
			return err
		})
		return available, err
	})
}
