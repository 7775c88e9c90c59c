package idlock

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/cashledger/internal/domain"
)

func TestCall_WritersAreExclusive(t *testing.T) {
	l := New()

	var (
		active  atomic.Int32
		maxSeen atomic.Int32
		wg      sync.WaitGroup
	)

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Call("acc-1", Write, func() error {
				n := active.Add(1)
				if n > maxSeen.Load() {
					maxSeen.Store(n)
				}
				time.Sleep(time.Millisecond)
				active.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestCall_ReadersShare(t *testing.T) {
	l := New()

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = l.Call("acc-1", Read, func() error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	go func() {
		_ = l.Call("acc-1", Read, func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second reader blocked behind first reader")
	}
	close(release)
}

func TestCall_WriterWaitsForReader(t *testing.T) {
	l := New()

	entered := make(chan struct{})
	release := make(chan struct{})
	var writerRan atomic.Bool

	go func() {
		_ = l.Call("acc-1", Read, func() error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	writerDone := make(chan struct{})
	go func() {
		_ = l.Call("acc-1", Write, func() error {
			writerRan.Store(true)
			return nil
		})
		close(writerDone)
	}()

	time.Sleep(20 * time.Millisecond)
	assert.False(t, writerRan.Load(), "writer entered while reader held the key")

	close(release)
	<-writerDone
	assert.True(t, writerRan.Load())
}

func TestCall_KeysAreIndependent(t *testing.T) {
	l := New()

	entered := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = l.Call("acc-1", Write, func() error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered
	defer close(release)

	done := make(chan struct{})
	go func() {
		_ = l.Call("acc-2", Write, func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on acc-2 blocked by acc-1")
	}
}

func TestCall_ErrorPropagatesAndReleases(t *testing.T) {
	l := New()
	rej := domain.RejectField("absAmount", domain.KeyCashInOutWithdraw)

	err := l.Call("acc-1", Write, func() error { return rej })
	require.Error(t, err)
	assert.Same(t, rej, err)

	err = l.Call("acc-1", Write, func() error { return nil })
	assert.NoError(t, err)
}

func TestCall_PanicIsRecoveredAndReleases(t *testing.T) {
	l := New()

	err := l.Call("acc-1", Write, func() error { panic("boom") })

	var ie *domain.InvocationError
	require.True(t, errors.As(err, &ie), "expected InvocationError, got %v", err)
	assert.Contains(t, err.Error(), "boom")

	done := make(chan struct{})
	go func() {
		_ = l.Call("acc-1", Write, func() error { return nil })
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock not released after panic")
	}
}

func TestCallValue(t *testing.T) {
	l := New()

	v, err := CallValue(l, "acc-1", Read, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestRegistryGrowsAndIsReported(t *testing.T) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_locks"})
	l := New(WithGauge(g))

	for _, key := range []string{"a", "b", "a", "c", "b"} {
		_ = l.Call(key, Read, func() error { return nil })
	}

	assert.Equal(t, 3, l.Size())
	assert.Equal(t, float64(3), testutil.ToFloat64(g))
}

func TestFailuresAreCountedByKind(t *testing.T) {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_lock_failures_total"}, []string{"kind"})
	l := New(WithFailureCounter(c))

	_ = l.Call("a", Write, func() error { return nil })
	_ = l.Call("a", Write, func() error { return domain.ErrInsufficientFunds })
	_ = l.Call("a", Write, func() error { return errors.New("connection reset") })
	_ = l.Call("a", Write, func() error { panic("boom") })
	_ = l.Call("a", Write, func() error { panic("again") })

	assert.Equal(t, float64(1), testutil.ToFloat64(c.WithLabelValues("rejection")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.WithLabelValues("error")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.WithLabelValues("panic")))
}
