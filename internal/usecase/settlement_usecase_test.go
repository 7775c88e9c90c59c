package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// badCurrency fails validation when the item is booked.
const badCurrency = "ZZZ1"

func (e *testEnv) settled(job, outcome string) int {
	return int(testutil.ToFloat64(e.metrics.SettlementItems.WithLabelValues(job, outcome)))
}

func (e *testEnv) batchAudits(t *testing.T, job string) []*domain.AuditRecord {
	t.Helper()
	list, err := e.audit.Find(context.Background(), domain.AuditFilter{
		Kind:     domain.AuditKindEvent,
		Category: usecase.CategoryBatch,
		Keyword:  job,
	}, domain.Pagination{})
	if err != nil {
		t.Fatalf("find audits: %v", err)
	}
	return list.Items
}

func TestSettlementUseCase_CloseWithdrawals(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, monday)

	ok := e.seedWithdrawal(t, "A", "JPY", 100, monday)
	broken := e.seedWithdrawal(t, "B", badCurrency, 100, monday)
	later := e.seedWithdrawal(t, "C", "JPY", 100, monday.AddDate(0, 0, 1))
	stuck := e.seedWithdrawal(t, "D", "JPY", 100, monday)
	stuck.Status = domain.StatusError
	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		if err := e.withdrawalRepo.Update(ctx, tx, stuck); err != nil {
			t.Fatalf("update: %v", err)
		}
	})

	if err := e.settlement.CloseWithdrawals(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]domain.ActionStatus{
		ok.ID:     domain.StatusProcessed,
		broken.ID: domain.StatusError,
		later.ID:  domain.StatusUnprocessed,
		stuck.ID:  domain.StatusError,
	}
	for id, status := range want {
		if got := e.getWithdrawal(t, id).Status; got != status {
			t.Errorf("%s: expected %s, got %s", id, status, got)
		}
	}

	processed := e.getWithdrawal(t, ok.ID)
	if processed.CashflowID == nil {
		t.Fatal("expected cashflow link")
	}
	cf := e.getCashflow(t, *processed.CashflowID)
	if !cf.Amount.Equal(decimal.NewFromInt(-100)) || cf.CreatedBy != domain.SystemActor.ID {
		t.Errorf("unexpected cashflow %+v", cf)
	}
	if e.getWithdrawal(t, broken.ID).CashflowID != nil {
		t.Error("failed item must not link a cashflow")
	}

	if n := e.settled(usecase.JobCloseWithdrawals, "processed"); n != 1 {
		t.Errorf("expected 1 processed, got %d", n)
	}
	if n := e.settled(usecase.JobCloseWithdrawals, "rejected"); n != 1 {
		t.Errorf("expected 1 rejected, got %d", n)
	}
	if n := e.settled(usecase.JobCloseWithdrawals, "skipped"); n != 1 {
		t.Errorf("expected 1 skipped, got %d", n)
	}

	audits := e.batchAudits(t, usecase.JobCloseWithdrawals)
	if len(audits) != 1 || audits[0].Status != domain.StatusProcessed || audits[0].ActorID != domain.SystemActor.ID {
		t.Errorf("expected one processed batch audit, got %+v", audits)
	}
}

func TestSettlementUseCase_CloseWithdrawalsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, monday)
	w := e.seedWithdrawal(t, "A", "JPY", 100, monday)
	e.seedWithdrawal(t, "B", badCurrency, 100, monday)

	for range 3 {
		if err := e.settlement.CloseWithdrawals(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if n := e.cashflowsRegistered(); n != 1 {
		t.Errorf("expected a single cashflow, got %d", n)
	}
	if got := e.getWithdrawal(t, w.ID).Status; got != domain.StatusProcessed {
		t.Errorf("expected processed, got %s", got)
	}
	if n := e.settled(usecase.JobCloseWithdrawals, "rejected"); n != 1 {
		t.Errorf("error item retried: %d rejections", n)
	}
	if n := len(e.batchAudits(t, usecase.JobCloseWithdrawals)); n != 3 {
		t.Errorf("expected one audit per run, got %d", n)
	}
}

func TestSettlementUseCase_RealizeCashflows(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, monday)
	e.seedBalance(t, "A", "JPY", monday.AddDate(0, 0, -3), 1000)

	in := e.seedCashflow(t, "A", "JPY", 250, monday)
	out := e.seedCashflow(t, "A", "JPY", -50, monday)
	broken := e.seedCashflow(t, "B", badCurrency, 10, monday)
	later := e.seedCashflow(t, "A", "JPY", 999, monday.AddDate(0, 0, 1))

	if err := e.settlement.RealizeCashflows(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.settlement.RealizeCashflows(ctx); err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}

	want := map[string]domain.ActionStatus{
		in.ID:     domain.StatusProcessed,
		out.ID:    domain.StatusProcessed,
		broken.ID: domain.StatusError,
		later.ID:  domain.StatusUnprocessed,
	}
	for id, status := range want {
		if got := e.getCashflow(t, id).Status; got != status {
			t.Errorf("%s: expected %s, got %s", id, status, got)
		}
	}

	if got := e.balanceOn(t, "A", "JPY"); !got.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected 1200, got %s", got)
	}
	if n := e.settled(usecase.JobRealizeCashflows, "processed"); n != 2 {
		t.Errorf("expected 2 processed, got %d", n)
	}
}

func TestSettlementUseCase_WithdrawalSettlesThreeBusinessDaysLater(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, monday)
	e.seedFiAccounts(t, "A", "JPY")
	e.seedBalance(t, "A", "JPY", monday, 1000)

	w, err := e.asset.Withdraw(ctx, regWithdrawal(300))
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	for day := range 4 {
		if err := e.settlement.CloseWithdrawals(ctx); err != nil {
			t.Fatalf("day %d close: %v", day, err)
		}
		if err := e.settlement.RealizeCashflows(ctx); err != nil {
			t.Fatalf("day %d realize: %v", day, err)
		}

		balance := e.balanceOn(t, "A", "JPY")
		want := int64(1000)
		if day == 3 {
			want = 700
		}
		if !balance.Equal(decimal.NewFromInt(want)) {
			t.Errorf("day %d: expected %d, got %s", day, want, balance)
		}

		if err := e.settlement.AdvanceBusinessDay(ctx); err != nil {
			t.Fatalf("day %d advance: %v", day, err)
		}
	}

	stored := e.getWithdrawal(t, w.ID)
	if cf := e.getCashflow(t, *stored.CashflowID); cf.Status != domain.StatusProcessed {
		t.Errorf("expected realized cashflow, got %s", cf.Status)
	}
}

func TestSettlementUseCase_AdvanceBusinessDay(t *testing.T) {
	ctx := context.Background()
	friday := domain.NewDay(2026, 3, 6)
	e := newTestEnv(t, friday)

	if err := e.settlement.AdvanceBusinessDay(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	today, err := e.calendar.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if want := domain.NewDay(2026, 3, 9); !today.Equal(want) {
		t.Errorf("expected %s, got %s", want, today)
	}
	if n := len(e.batchAudits(t, usecase.JobAdvanceBusinessDay)); n != 1 {
		t.Errorf("expected one audit record, got %d", n)
	}
}

func TestSettlementUseCase_FindWithdrawals(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, monday)

	put := func(currency string, status domain.ActionStatus, updated time.Time) *domain.Withdrawal {
		w := e.seedWithdrawal(t, "A", currency, 100, monday.AddDate(0, 0, 1))
		w.Status = status
		w.UpdatedAt = updated
		e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
			if err := e.withdrawalRepo.Update(ctx, tx, w); err != nil {
				t.Fatalf("update: %v", err)
			}
		})
		return w
	}

	at := func(day time.Time, hour int) time.Time { return day.Add(time.Duration(hour) * time.Hour) }
	put("JPY", domain.StatusUnprocessed, at(monday.AddDate(0, 0, -2), 9))
	put("JPY", domain.StatusProcessed, at(monday.AddDate(0, 0, -1), 9))
	put("USD", domain.StatusUnprocessed, at(monday, 9))
	errored := put("JPY", domain.StatusError, at(monday, 10))
	latest := put("JPY", domain.StatusUnprocessed, at(monday, 11))

	t.Run("filters by currency status and update range", func(t *testing.T) {
		list, err := e.settlement.FindWithdrawals(ctx, domain.WithdrawalFilter{
			Currency:    "JPY",
			Statuses:    []domain.ActionStatus{domain.StatusUnprocessed, domain.StatusError},
			UpdatedFrom: monday.AddDate(0, 0, -1),
			UpdatedTo:   monday,
		}, domain.Pagination{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Page.Total != 2 || len(list.Items) != 2 {
			t.Fatalf("expected 2 matches, got total %d items %d", list.Page.Total, len(list.Items))
		}
		if list.Items[0].ID != latest.ID || list.Items[1].ID != errored.ID {
			t.Errorf("expected newest first, got %s then %s", list.Items[0].ID, list.Items[1].ID)
		}
	})

	t.Run("pages over everything", func(t *testing.T) {
		list, err := e.settlement.FindWithdrawals(ctx, domain.WithdrawalFilter{}, domain.Pagination{Page: 1, Size: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Page.Total != 5 || len(list.Items) != 2 {
			t.Fatalf("expected total 5 with 2 on the page, got %d and %d", list.Page.Total, len(list.Items))
		}
		if list.Items[0].ID != latest.ID {
			t.Errorf("expected %s first, got %s", latest.ID, list.Items[0].ID)
		}
	})
}
