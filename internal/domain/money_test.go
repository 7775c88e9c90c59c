package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCurrencyScale(t *testing.T) {
	tests := []struct {
		code    string
		want    int32
		wantErr bool
	}{
		{"USD", 2, false},
		{"usd", 2, false},
		{"JPY", 0, false},
		{"EUR", 2, false},
		{"", 0, true},
		{"ZZZ1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := CurrencyScale(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCurrency) {
					t.Fatalf("expected ErrInvalidCurrency, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected scale %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRoundDown(t *testing.T) {
	got, err := RoundDown(decimal.RequireFromString("-8.479"), "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("-8.47")) {
		t.Errorf("expected -8.47, got %s", got)
	}
}
