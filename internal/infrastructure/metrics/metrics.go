package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Account lock metrics
	LockKeys     prometheus.Gauge
	LockWait     *prometheus.HistogramVec
	LockFailures *prometheus.CounterVec

	// Withdrawal metrics
	WithdrawalsRequested prometheus.Counter
	WithdrawalsCancelled prometheus.Counter
	WithdrawalsRejected  *prometheus.CounterVec

	// Cashflow metrics
	CashflowsRegistered prometheus.Counter
	CashflowsRealized   prometheus.Counter

	// Settlement metrics
	SettlementItems    *prometheus.CounterVec
	SettlementDuration *prometheus.HistogramVec

	// Audit metrics
	AuditRecords       *prometheus.CounterVec
	AuditWriteFailures *prometheus.CounterVec

	// Calendar metrics
	HolidayCacheLookups *prometheus.CounterVec
	BusinessDayAdvanced prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBRetries *prometheus.CounterVec
}

// New creates all metrics and registers them with reg.
// A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		// Account lock metrics
		LockKeys: f.NewGauge(prometheus.GaugeOpts{
			Name: "cashledger_account_locks",
			Help: "Number of account keys held in the lock registry",
		}),
		LockWait: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashledger_account_lock_wait_seconds",
				Help:    "Time spent waiting for an account lock",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),
		LockFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashledger_account_lock_failures_total",
				Help: "Operations under an account lock that failed, by kind",
			},
			[]string{"kind"},
		),

		// Withdrawal metrics
		WithdrawalsRequested: f.NewCounter(prometheus.CounterOpts{
			Name: "cashledger_withdrawals_requested_total",
			Help: "Total number of accepted withdrawal requests",
		}),
		WithdrawalsCancelled: f.NewCounter(prometheus.CounterOpts{
			Name: "cashledger_withdrawals_cancelled_total",
			Help: "Total number of cancelled withdrawal requests",
		}),
		WithdrawalsRejected: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashledger_withdrawals_rejected_total",
				Help: "Total number of rejected withdrawal requests by reason",
			},
			[]string{"reason"},
		),

		// Cashflow metrics
		CashflowsRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "cashledger_cashflows_registered_total",
			Help: "Total number of registered cashflows",
		}),
		CashflowsRealized: f.NewCounter(prometheus.CounterOpts{
			Name: "cashledger_cashflows_realized_total",
			Help: "Total number of cashflows realized into balances",
		}),

		// Settlement metrics
		SettlementItems: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashledger_settlement_items_total",
				Help: "Settlement items handled by job and outcome",
			},
			[]string{"job", "outcome"},
		),
		SettlementDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashledger_settlement_duration_seconds",
				Help:    "Duration of settlement job runs",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"job"},
		),

		// Audit metrics
		AuditRecords: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashledger_audit_records_total",
				Help: "Audited operations by kind and final status",
			},
			[]string{"kind", "status"},
		),
		AuditWriteFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashledger_audit_write_failures_total",
				Help: "Audit records that could not be persisted",
			},
			[]string{"phase"},
		),

		// Calendar metrics
		HolidayCacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashledger_holiday_cache_lookups_total",
				Help: "Holiday cache lookups by result",
			},
			[]string{"result"},
		),
		BusinessDayAdvanced: f.NewCounter(prometheus.CounterOpts{
			Name: "cashledger_business_day_advanced_total",
			Help: "Number of times the business day was advanced",
		}),

		// API metrics
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBRetries: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashledger_db_retries_total",
				Help: "Transactions retried after serialization failures or deadlocks",
			},
			[]string{"code"},
		),
	}
}
