package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

func TestBalanceLedger_CarriesForwardLatestBalance(t *testing.T) {
	e := newTestEnv(t, monday)
	e.seedBalance(t, "A", "JPY", monday.AddDate(0, 0, -10), 500)
	e.seedBalance(t, "A", "JPY", monday.AddDate(0, 0, -3), 1200)
	e.seedBalance(t, "A", "USD", monday.AddDate(0, 0, -1), 99)

	if got := e.balanceOn(t, "A", "JPY"); !got.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected 1200, got %s", got)
	}
}

func TestBalanceLedger_ZeroWithoutHistory(t *testing.T) {
	e := newTestEnv(t, monday)

	if got := e.balanceOn(t, "nobody", "JPY"); !got.IsZero() {
		t.Errorf("expected zero, got %s", got)
	}
}

func TestBalanceLedger_CurrentDoesNotPersist(t *testing.T) {
	e := newTestEnv(t, monday)
	e.seedBalance(t, "A", "JPY", monday.AddDate(0, 0, -3), 1200)

	_ = e.balanceOn(t, "A", "JPY")

	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		_, err := e.balanceRepo.GetByDay(ctx, tx, "A", "JPY", monday)
		if !errors.Is(err, domain.ErrEntityNotFound) {
			t.Errorf("expected no row for today, got %v", err)
		}
	})
}

func TestBalanceLedger_GetOrCreatePersistsOnce(t *testing.T) {
	e := newTestEnv(t, monday)
	e.seedBalance(t, "A", "JPY", monday.AddDate(0, 0, -3), 1200)

	var first *domain.CashBalance
	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		var err error
		first, err = e.ledger.GetOrCreate(ctx, tx, "A", "JPY")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if !first.BaseDay.Equal(monday) {
		t.Errorf("expected base day %s, got %s", monday, first.BaseDay)
	}
	if !first.Amount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected carried amount 1200, got %s", first.Amount)
	}

	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		second, err := e.ledger.GetOrCreate(ctx, tx, "A", "JPY")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.ID != first.ID {
			t.Errorf("expected existing row %s, got %s", first.ID, second.ID)
		}
	})
}

func TestBalanceLedger_AddRoundsStoredAmountDown(t *testing.T) {
	e := newTestEnv(t, monday)

	steps := []struct {
		delta string
		want  string
	}{
		{"10.02", "10.02"},
		{"11.51", "21.53"},
		{"11.516", "33.046"},
		{"-41.51", "-8.47"},
	}

	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		balance, err := e.ledger.GetOrCreate(ctx, tx, "A", "USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, s := range steps {
			if err := e.ledger.Add(ctx, tx, balance, decimal.RequireFromString(s.delta)); err != nil {
				t.Fatalf("add %s: %v", s.delta, err)
			}
			if !balance.Amount.Equal(decimal.RequireFromString(s.want)) {
				t.Errorf("after %s: expected %s, got %s", s.delta, s.want, balance.Amount)
			}
		}
	})

	if got := e.balanceOn(t, "A", "USD"); !got.Equal(decimal.RequireFromString("-8.47")) {
		t.Errorf("expected persisted -8.47, got %s", got)
	}
}
