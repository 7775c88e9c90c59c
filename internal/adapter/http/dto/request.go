package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/cashledger/internal/domain"
)

// WithdrawRequest represents a request to withdraw cash from an account.
type WithdrawRequest struct {
	AccountID string          `json:"account_id"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
}

// ToDomain converts to the domain registration.
func (r *WithdrawRequest) ToDomain() domain.RegWithdrawal {
	return domain.RegWithdrawal{
		AccountID: r.AccountID,
		Currency:  r.Currency,
		AbsAmount: r.Amount,
	}
}

// ChangeSettingRequest sets the value of an application setting.
type ChangeSettingRequest struct {
	Value string `json:"value"`
}

// HolidayItem is one holiday of a yearly registration.
type HolidayItem struct {
	Day  string `json:"day"`
	Name string `json:"name"`
}

// RegisterHolidaysRequest replaces every holiday of one year in a category.
type RegisterHolidaysRequest struct {
	Category string        `json:"category"`
	Year     int           `json:"year"`
	Items    []HolidayItem `json:"items"`
}

// ToDomain converts to the domain registration. Days must be yyyy-MM-dd.
func (r *RegisterHolidaysRequest) ToDomain() (domain.RegHolidays, error) {
	reg := domain.RegHolidays{
		Category: r.Category,
		Year:     r.Year,
		Items:    make([]domain.RegHoliday, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		day, err := domain.ParseDay(item.Day)
		if err != nil {
			return domain.RegHolidays{}, fmt.Errorf("invalid holiday day %q: %w", item.Day, err)
		}
		reg.Items = append(reg.Items, domain.RegHoliday{Day: day, Name: item.Name})
	}
	return reg, nil
}

// FiAccountRequest registers a customer's bank account.
type FiAccountRequest struct {
	AccountID   string `json:"account_id"`
	Category    string `json:"category"`
	Currency    string `json:"currency"`
	FiCode      string `json:"fi_code"`
	FiAccountID string `json:"fi_account_id"`
}

// ToDomain converts to the domain account. Category defaults to cashOut.
func (r *FiAccountRequest) ToDomain() *domain.FiAccount {
	return &domain.FiAccount{
		AccountID:   r.AccountID,
		Category:    categoryOrCashOut(r.Category),
		Currency:    r.Currency,
		FiCode:      r.FiCode,
		FiAccountID: r.FiAccountID,
	}
}

// SelfFiAccountRequest registers one of our own bank accounts.
type SelfFiAccountRequest struct {
	Category    string `json:"category"`
	Currency    string `json:"currency"`
	FiCode      string `json:"fi_code"`
	FiAccountID string `json:"fi_account_id"`
}

// ToDomain converts to the domain account. Category defaults to cashOut.
func (r *SelfFiAccountRequest) ToDomain() *domain.SelfFiAccount {
	return &domain.SelfFiAccount{
		Category:    categoryOrCashOut(r.Category),
		Currency:    r.Currency,
		FiCode:      r.FiCode,
		FiAccountID: r.FiAccountID,
	}
}

func categoryOrCashOut(category string) string {
	if category == "" {
		return domain.FiAccountCategoryCashOut
	}
	return category
}
