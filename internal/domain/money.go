package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// CurrencyScale returns the canonical number of fractional digits for an
// ISO 4217 currency code (JPY: 0, USD: 2, ...).
func CurrencyScale(code string) (int32, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return 0, RejectField("currency", KeyCurrencyInvalid, code)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale), nil
}

// ValidateCurrency checks that code is a known ISO 4217 currency.
func ValidateCurrency(code string) error {
	_, err := CurrencyScale(code)
	return err
}

// RoundDown truncates amount to the currency's canonical scale.
func RoundDown(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	scale, err := CurrencyScale(code)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Truncate(scale), nil
}
