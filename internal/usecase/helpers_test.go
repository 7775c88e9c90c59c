package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/cashledger/internal/adapter/repository/memory"
	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/infrastructure/idlock"
	"github.com/iho/cashledger/internal/infrastructure/metrics"
	"github.com/iho/cashledger/internal/usecase"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// seqIDs yields ids that sort in creation order.
type seqIDs struct {
	n atomic.Int64
}

func (g *seqIDs) Generate() string {
	return fmt.Sprintf("id%012d", g.n.Add(1))
}

type testEnv struct {
	store   *memory.Store
	txm     *memory.TxManager
	clock   *fixedClock
	ids     *seqIDs
	locker  *idlock.Locker
	metrics *metrics.Metrics

	balanceRepo    *memory.CashBalanceRepository
	cashflowRepo   *memory.CashflowRepository
	withdrawalRepo *memory.WithdrawalRepository
	fiAccountRepo  *memory.FiAccountRepository
	holidayRepo    *memory.HolidayRepository
	settingRepo    *memory.SettingRepository
	auditRepo      *memory.AuditRepository

	calendar    *usecase.BusinessCalendar
	ledger      *usecase.BalanceLedger
	position    *usecase.AssetPositionCalculator
	cashflows   *usecase.CashflowBook
	withdrawals *usecase.WithdrawalBook
	audit       *usecase.AuditTrail
	settlement  *usecase.SettlementUseCase
	asset       *usecase.AssetUseCase
	system      *usecase.SystemUseCase
}

// newTestEnv wires every component on the in-memory store with the business
// day fixed to today.
func newTestEnv(t *testing.T, today time.Time) *testEnv {
	t.Helper()

	e := &testEnv{
		store:   memory.NewStore(),
		clock:   &fixedClock{now: today.Add(10 * time.Hour)},
		ids:     &seqIDs{},
		metrics: metrics.New(prometheus.NewRegistry()),
	}
	logger := zerolog.Nop()

	e.txm = memory.NewTxManager(e.store)
	e.locker = idlock.New(idlock.WithGauge(e.metrics.LockKeys), idlock.WithFailureCounter(e.metrics.LockFailures))
	e.balanceRepo = memory.NewCashBalanceRepository(e.store)
	e.cashflowRepo = memory.NewCashflowRepository(e.store)
	e.withdrawalRepo = memory.NewWithdrawalRepository(e.store)
	e.fiAccountRepo = memory.NewFiAccountRepository(e.store)
	e.holidayRepo = memory.NewHolidayRepository(e.store)
	e.settingRepo = memory.NewSettingRepository(e.store)
	e.auditRepo = memory.NewAuditRepository(e.store)

	e.calendar = usecase.NewBusinessCalendar(e.clock, e.txm, e.settingRepo, e.holidayRepo, memory.NewHolidayCache(), e.ids, logger, e.metrics)
	e.ledger = usecase.NewBalanceLedger(e.balanceRepo, e.calendar, e.ids, e.clock)
	e.position = usecase.NewAssetPositionCalculator(e.ledger, e.cashflowRepo, e.withdrawalRepo)
	e.cashflows = usecase.NewCashflowBook(e.cashflowRepo, e.ledger, e.calendar, e.ids, logger, e.metrics)
	e.withdrawals = usecase.NewWithdrawalBook(e.withdrawalRepo, e.fiAccountRepo, e.cashflows, e.position, e.calendar, e.ids, logger, e.metrics)
	e.audit = usecase.NewAuditTrail(e.auditRepo, e.ids, e.clock, logger, e.metrics)
	e.settlement = usecase.NewSettlementUseCase(e.txm, nil, e.locker, e.withdrawals, e.cashflows, e.calendar, e.audit, logger, e.metrics)
	e.asset = usecase.NewAssetUseCase(e.txm, nil, e.locker, e.withdrawals, e.position, e.audit)
	e.system = usecase.NewSystemUseCase(e.txm, e.settingRepo, e.fiAccountRepo, e.calendar, e.audit, e.ids)

	e.setBusinessDay(t, today)
	return e
}

func (e *testEnv) inTx(t *testing.T, fn func(ctx context.Context, tx usecase.Transaction)) {
	t.Helper()
	ctx := context.Background()

	tx, err := e.txm.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	fn(ctx, tx)
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func (e *testEnv) setBusinessDay(t *testing.T, day time.Time) {
	t.Helper()
	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		if err := e.settingRepo.Save(ctx, tx, &domain.AppSetting{ID: domain.KeyBusinessDay, Value: domain.FormatDay(day)}); err != nil {
			t.Fatalf("save business day: %v", err)
		}
	})
}

func (e *testEnv) seedBalance(t *testing.T, accountID, currency string, day time.Time, amount int64) {
	t.Helper()
	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		err := e.balanceRepo.Create(ctx, tx, &domain.CashBalance{
			ID: e.ids.Generate(), AccountID: accountID, Currency: currency,
			BaseDay: day, Amount: decimal.NewFromInt(amount), UpdatedAt: e.clock.Now(),
		})
		if err != nil {
			t.Fatalf("seed balance: %v", err)
		}
	})
}

func (e *testEnv) seedCashflow(t *testing.T, accountID, currency string, amount int64, valueDay time.Time) *domain.Cashflow {
	t.Helper()
	cf := &domain.Cashflow{
		ID: e.ids.Generate(), AccountID: accountID, Currency: currency,
		Amount: decimal.NewFromInt(amount), Type: domain.CashflowCashIn,
		EventDay: valueDay, ValueDay: valueDay, Status: domain.StatusUnprocessed,
		UpdatedAt: e.clock.Now(),
	}
	if amount < 0 {
		cf.Type = domain.CashflowCashOut
	}
	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		if err := e.cashflowRepo.Create(ctx, tx, cf); err != nil {
			t.Fatalf("seed cashflow: %v", err)
		}
	})
	return cf
}

func (e *testEnv) seedWithdrawal(t *testing.T, accountID, currency string, amount int64, eventDay time.Time) *domain.Withdrawal {
	t.Helper()
	w := &domain.Withdrawal{
		ID: e.ids.Generate(), AccountID: accountID, Currency: currency,
		AbsAmount: decimal.NewFromInt(amount), Withdrawal: true,
		RequestDay: eventDay, EventDay: eventDay, ValueDay: eventDay.AddDate(0, 0, 3),
		Status: domain.StatusUnprocessed, UpdatedAt: e.clock.Now(),
	}
	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		if err := e.withdrawalRepo.Create(ctx, tx, w); err != nil {
			t.Fatalf("seed withdrawal: %v", err)
		}
	})
	return w
}

func (e *testEnv) seedFiAccounts(t *testing.T, accountID, currency string) {
	t.Helper()
	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		if err := e.fiAccountRepo.SaveFiAccount(ctx, tx, &domain.FiAccount{
			ID: e.ids.Generate(), AccountID: accountID, Category: domain.FiAccountCategoryCashOut,
			Currency: currency, FiCode: "FI-" + accountID, FiAccountID: "ACC-" + accountID,
		}); err != nil {
			t.Fatalf("seed fi account: %v", err)
		}
		if err := e.fiAccountRepo.SaveSelfFiAccount(ctx, tx, &domain.SelfFiAccount{
			ID: e.ids.Generate(), Category: domain.FiAccountCategoryCashOut,
			Currency: currency, FiCode: "FI-SELF", FiAccountID: "ACC-SELF",
		}); err != nil {
			t.Fatalf("seed self fi account: %v", err)
		}
	})
}

func (e *testEnv) balanceOn(t *testing.T, accountID, currency string) decimal.Decimal {
	t.Helper()
	var amount decimal.Decimal
	e.inTx(t, func(ctx context.Context, tx usecase.Transaction) {
		var err error
		amount, err = e.ledger.Current(ctx, tx, accountID, currency)
		if err != nil {
			t.Fatalf("current balance: %v", err)
		}
	})
	return amount
}

func (e *testEnv) getCashflow(t *testing.T, id string) *domain.Cashflow {
	t.Helper()
	cf, err := e.cashflowRepo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get cashflow %s: %v", id, err)
	}
	return cf
}

func (e *testEnv) getWithdrawal(t *testing.T, id string) *domain.Withdrawal {
	t.Helper()
	w, err := e.withdrawalRepo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get withdrawal %s: %v", id, err)
	}
	return w
}

func (e *testEnv) cashflowsRegistered() int {
	return int(testutil.ToFloat64(e.metrics.CashflowsRegistered))
}

// monday is a Monday with no registered holidays.
var monday = domain.NewDay(2026, 3, 2)
