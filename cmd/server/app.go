package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/cashledger/internal/adapter/http"
	"github.com/iho/cashledger/internal/adapter/http/handler"
	apimiddleware "github.com/iho/cashledger/internal/adapter/http/middleware"
	memoryRepo "github.com/iho/cashledger/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/cashledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/cashledger/internal/adapter/repository/redis"
	"github.com/iho/cashledger/internal/infrastructure/config"
	"github.com/iho/cashledger/internal/infrastructure/idlock"
	"github.com/iho/cashledger/internal/infrastructure/metrics"
	"github.com/iho/cashledger/internal/infrastructure/postgres"
	"github.com/iho/cashledger/internal/infrastructure/redis"
	"github.com/iho/cashledger/internal/infrastructure/scheduler"
	"github.com/iho/cashledger/internal/usecase"
)

// stores is the Ledger Store selected by STORE_DRIVER.
type stores struct {
	txManager   usecase.TransactionManager
	retrier     usecase.Retrier
	balances    usecase.CashBalanceRepository
	cashflows   usecase.CashflowRepository
	withdrawals usecase.WithdrawalRepository
	fiAccounts  usecase.FiAccountRepository
	holidays    usecase.HolidayRepository
	settings    usecase.SettingRepository
	audits      usecase.AuditRepository
	checks      []handler.Check
	close       func()
}

// app is the fully wired service.
type app struct {
	Handler   http.Handler
	Scheduler *scheduler.Scheduler
	Registry  *prometheus.Registry
	closers   []func()
}

// Close releases connections in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	a := &app{Registry: prometheus.NewRegistry()}
	a.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(a.Registry)

	st, err := openStores(ctx, cfg, log, m)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, st.close)

	var redisClient *goredis.Client
	if cfg.UsesRedis() {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = redisClient.Close() })
		st.checks = append(st.checks, handler.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
		log.Info().Msg("connected to redis")
	}

	var holidayCache usecase.HolidayCache = memoryRepo.NewHolidayCache()
	if cfg.HolidayCache == config.HolidayCacheRedis {
		holidayCache = redisRepo.NewHolidayCache(redisClient, cfg.HolidayCacheTTL)
	}

	var guard *redisRepo.JobGuard
	if cfg.JobGuard == config.JobGuardRedis {
		guard = redisRepo.NewJobGuard(redisClient, cfg.JobLeaseTTL)
	}

	idGen := postgresRepo.NewULIDGenerator()
	clock := usecase.SystemClock{}
	locker := idlock.New(
		idlock.WithGauge(m.LockKeys),
		idlock.WithWaitHistogram(m.LockWait),
		idlock.WithFailureCounter(m.LockFailures),
	)

	// Initialize use cases
	calendar := usecase.NewBusinessCalendar(clock, st.txManager, st.settings, st.holidays, holidayCache, idGen, log, m)
	ledger := usecase.NewBalanceLedger(st.balances, calendar, idGen, clock)
	position := usecase.NewAssetPositionCalculator(ledger, st.cashflows, st.withdrawals)
	cashflows := usecase.NewCashflowBook(st.cashflows, ledger, calendar, idGen, log, m)
	withdrawals := usecase.NewWithdrawalBook(st.withdrawals, st.fiAccounts, cashflows, position, calendar, idGen, log, m)
	audit := usecase.NewAuditTrail(st.audits, idGen, clock, log, m)

	settlementUC := usecase.NewSettlementUseCase(st.txManager, st.retrier, locker, withdrawals, cashflows, calendar, audit, log, m)
	assetUC := usecase.NewAssetUseCase(st.txManager, st.retrier, locker, withdrawals, position, audit)
	systemUC := usecase.NewSystemUseCase(st.txManager, st.settings, st.fiAccounts, calendar, audit, idGen)

	// Initialize handlers
	var jobGuard handler.JobGuard
	if guard != nil {
		jobGuard = guard
	}

	a.Handler = httpAdapter.NewRouter(httpAdapter.RouterConfig{
		HealthHandler:     handler.NewHealthHandler(st.checks...),
		JobHandler:        handler.NewJobHandler(settlementUC, jobGuard),
		SystemHandler:     handler.NewSystemHandler(systemUC),
		AssetHandler:      handler.NewAssetHandler(assetUC),
		AssetAdminHandler: handler.NewAssetAdminHandler(settlementUC),
		Logger:            log,
		Metrics:           m,
		Gatherer:          a.Registry,
		RateLimiter:       newRateLimiter(ctx, cfg),
	})

	if cfg.SchedulerInterval > 0 {
		var schedGuard scheduler.Guard
		if guard != nil {
			schedGuard = guard
		}
		a.Scheduler = scheduler.New(scheduler.Config{
			Jobs: []scheduler.Job{
				{Name: usecase.JobCloseWithdrawals, Run: settlementUC.CloseWithdrawals},
				{Name: usecase.JobRealizeCashflows, Run: settlementUC.RealizeCashflows},
			},
			Guard:    schedGuard,
			Logger:   log.With().Str("component", "scheduler").Logger(),
			Interval: cfg.SchedulerInterval,
		})
	}

	return a, nil
}

// newRateLimiter returns nil when rate limiting is disabled. Idle clients are
// evicted until ctx ends.
func newRateLimiter(ctx context.Context, cfg *config.Config) *apimiddleware.RateLimiter {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}

	rl := apimiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Evict(10 * time.Minute)
			}
		}
	}()
	return rl
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger, m *metrics.Metrics) (*stores, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		store := memoryRepo.NewStore()
		log.Warn().Msg("using in-memory store; data is lost on restart")
		return &stores{
			txManager:   memoryRepo.NewTxManager(store),
			balances:    memoryRepo.NewCashBalanceRepository(store),
			cashflows:   memoryRepo.NewCashflowRepository(store),
			withdrawals: memoryRepo.NewWithdrawalRepository(store),
			fiAccounts:  memoryRepo.NewFiAccountRepository(store),
			holidays:    memoryRepo.NewHolidayRepository(store),
			settings:    memoryRepo.NewSettingRepository(store),
			audits:      memoryRepo.NewAuditRepository(store),
			close:       func() {},
		}, nil
	}

	if err := postgres.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, log).Up(); err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	log.Info().Msg("connected to postgres")

	return &stores{
		txManager:   postgresRepo.NewTxManager(pool).WithTimeout(cfg.TxTimeout),
		retrier:     postgresRepo.NewRetrier(log, m),
		balances:    postgresRepo.NewCashBalanceRepository(),
		cashflows:   postgresRepo.NewCashflowRepository(pool),
		withdrawals: postgresRepo.NewWithdrawalRepository(pool),
		fiAccounts:  postgresRepo.NewFiAccountRepository(),
		holidays:    postgresRepo.NewHolidayRepository(pool),
		settings:    postgresRepo.NewSettingRepository(pool),
		audits:      postgresRepo.NewAuditRepository(pool),
		checks:      []handler.Check{{Name: "postgres", Ping: pool.Ping}},
		close:       pool.Close,
	}, nil
}
