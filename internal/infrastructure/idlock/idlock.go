// Package idlock serializes work per account key inside one process.
//
// Each key gets a read/write mutex on first use. Entries are never removed,
// so the registry grows with the number of distinct keys seen during the
// process lifetime. Locks have no timeout: a holder that never returns blocks
// every later writer on the same key.
package idlock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/iho/cashledger/internal/domain"
)

// Mode selects shared or exclusive access.
type Mode int

const (
	// Read is shared with other readers of the same key.
	Read Mode = iota
	// Write excludes every other holder of the same key.
	Write
)

func (m Mode) String() string {
	if m == Write {
		return "write"
	}
	return "read"
}

// Locker is a registry of per-key read/write locks.
// The zero value is not usable; call New.
type Locker struct {
	locks sync.Map
	size  atomic.Int64

	keys     prometheus.Gauge
	wait     *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// Option configures a Locker.
type Option func(*Locker)

// WithGauge reports the registry size to g.
func WithGauge(g prometheus.Gauge) Option {
	return func(l *Locker) { l.keys = g }
}

// WithWaitHistogram observes lock acquisition latency, labelled by mode.
func WithWaitHistogram(h *prometheus.HistogramVec) Option {
	return func(l *Locker) { l.wait = h }
}

// WithFailureCounter counts failed calls by kind: panic, rejection or error.
func WithFailureCounter(c *prometheus.CounterVec) Option {
	return func(l *Locker) { l.failures = c }
}

// New creates an empty Locker.
func New(opts ...Option) *Locker {
	l := &Locker{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Size returns the number of keys seen so far.
func (l *Locker) Size() int {
	return int(l.size.Load())
}

func (l *Locker) lockFor(key string) *sync.RWMutex {
	if mu, ok := l.locks.Load(key); ok {
		return mu.(*sync.RWMutex)
	}
	mu, loaded := l.locks.LoadOrStore(key, &sync.RWMutex{})
	if !loaded {
		n := l.size.Add(1)
		if l.keys != nil {
			l.keys.Set(float64(n))
		}
	}
	return mu.(*sync.RWMutex)
}

// Call runs fn while holding the lock for key in the given mode.
// The lock is released when fn returns or panics. Errors returned by fn are
// passed through unchanged; a panic is returned as a domain.InvocationError.
// Locks are not reentrant: fn must not acquire the same key again.
func (l *Locker) Call(key string, mode Mode, fn func() error) (err error) {
	mu := l.lockFor(key)

	start := time.Now()
	if mode == Write {
		mu.Lock()
		defer mu.Unlock()
	} else {
		mu.RLock()
		defer mu.RUnlock()
	}
	if l.wait != nil {
		l.wait.WithLabelValues(mode.String()).Observe(time.Since(start).Seconds())
	}

	panicked := true
	defer func() {
		if panicked {
			err = domain.Recovered(recover())
			l.countFailure("panic")
			return
		}
		switch {
		case err == nil:
		case domain.IsRejection(err):
			l.countFailure("rejection")
		default:
			l.countFailure("error")
		}
	}()

	err = fn()
	panicked = false
	return err
}

func (l *Locker) countFailure(kind string) {
	if l.failures != nil {
		l.failures.WithLabelValues(kind).Inc()
	}
}

// CallValue is Call for functions that produce a value.
func CallValue[T any](l *Locker, key string, mode Mode, fn func() (T, error)) (T, error) {
	var v T
	err := l.Call(key, mode, func() error {
		var err error
		v, err = fn()
		return err
	})
	return v, err
}
