package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/cashledger/internal/domain"
)

// SystemUseCase serves administrative operations.
type SystemUseCase struct {
	txManager     TransactionManager
	settingRepo   SettingRepository
	fiAccountRepo FiAccountRepository
	calendar      *BusinessCalendar
	audit         *AuditTrail
	idGen         IDGenerator
}

// NewSystemUseCase creates a new SystemUseCase.
func NewSystemUseCase(
	txManager TransactionManager,
	settingRepo SettingRepository,
	fiAccountRepo FiAccountRepository,
	calendar *BusinessCalendar,
	audit *AuditTrail,
	idGen IDGenerator,
) *SystemUseCase {
	return &SystemUseCase{
		txManager:     txManager,
		settingRepo:   settingRepo,
		fiAccountRepo: fiAccountRepo,
		calendar:      calendar,
		audit:         audit,
		idGen:         idGen,
	}
}

// FindAuditRecords lists audit records.
func (uc *SystemUseCase) FindAuditRecords(ctx context.Context, filter domain.AuditFilter, page domain.Pagination) (*domain.PagingList[*domain.AuditRecord], error) {
	return uc.audit.Find(ctx, filter, page)
}

// BusinessDay returns the current business day.
func (uc *SystemUseCase) BusinessDay(ctx context.Context) (time.Time, error) {
	return uc.calendar.Today(ctx)
}

// FindSetting returns a setting, or domain.ErrEntityNotFound.
func (uc *SystemUseCase) FindSetting(ctx context.Context, id string) (*domain.AppSetting, error) {
	setting, err := uc.settingRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, domain.Reject(domain.KeyEntityNotFound, id)
	}
	return setting, nil
}

// ChangeSetting stores value under id, creating the setting if needed.
func (uc *SystemUseCase) ChangeSetting(ctx context.Context, id, value string) error {
	msg := fmt.Sprintf("change setting %s=%s", id, value)

	return uc.audit.Audit(ctx, CategorySystem, msg, func(ctx context.Context) error {
		setting, err := uc.settingRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if setting == nil {
			setting = &domain.AppSetting{ID: id}
		}
		setting.Value = value

		return inTx(ctx, uc.txManager, nil, func(ctx context.Context, tx Transaction) error {
			return uc.settingRepo.Save(ctx, tx, setting)
		})
	})
}

// RegisterHolidays replaces one year's holidays.
func (uc *SystemUseCase) RegisterHolidays(ctx context.Context, reg domain.RegHolidays) error {
	msg := fmt.Sprintf("register holidays %s/%d (%d)", reg.CategoryOrDefault(), reg.Year, len(reg.Items))

	return uc.audit.Audit(ctx, CategorySystem, msg, func(ctx context.Context) error {
		return uc.calendar.RegisterHolidays(ctx, reg)
	})
}

// RegisterFiAccount stores a customer's bank account for a category.
func (uc *SystemUseCase) RegisterFiAccount(ctx context.Context, account *domain.FiAccount) error {
	msg := fmt.Sprintf("register fi account %s/%s/%s", account.AccountID, account.Category, account.Currency)

	return uc.audit.Audit(ctx, CategorySystem, msg, func(ctx context.Context) error {
		if err := domain.ValidateAccountID(account.AccountID); err != nil {
			return err
		}
		if err := domain.ValidateCurrency(account.Currency); err != nil {
			return err
		}
		if account.ID == "" {
			account.ID = uc.idGen.Generate()
		}
		return inTx(ctx, uc.txManager, nil, func(ctx context.Context, tx Transaction) error {
			return uc.fiAccountRepo.SaveFiAccount(ctx, tx, account)
		})
	})
}

// RegisterSelfFiAccount stores one of our own bank accounts for a category.
func (uc *SystemUseCase) RegisterSelfFiAccount(ctx context.Context, account *domain.SelfFiAccount) error {
	msg := fmt.Sprintf("register self fi account %s/%s", account.Category, account.Currency)

	return uc.audit.Audit(ctx, CategorySystem, msg, func(ctx context.Context) error {
		if err := domain.ValidateCurrency(account.Currency); err != nil {
			return err
		}
		if account.ID == "" {
			account.ID = uc.idGen.Generate()
		}
		return inTx(ctx, uc.txManager, nil, func(ctx context.Context, tx Transaction) error {
			return uc.fiAccountRepo.SaveSelfFiAccount(ctx, tx, account)
		})
	})
}
