package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobGuardExcludesConcurrentRuns(t *testing.T) {
	client, _ := newTestRedisClient(t)
	defer client.Close()

	guard := NewJobGuard(client, time.Minute)
	ctx := context.Background()

	release, ok, err := guard.Acquire(ctx, "close-withdrawals")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = guard.Acquire(ctx, "close-withdrawals")
	require.NoError(t, err)
	assert.False(t, ok, "second run must not start")

	other, ok, err := guard.Acquire(ctx, "realize-cashflows")
	require.NoError(t, err)
	assert.True(t, ok, "jobs are guarded independently")
	other()

	release()

	again, ok, err := guard.Acquire(ctx, "close-withdrawals")
	require.NoError(t, err)
	assert.True(t, ok)
	again()
}

func TestJobGuardReleaseKeepsForeignLease(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer client.Close()

	guard := NewJobGuard(client, time.Minute)
	ctx := context.Background()

	release, ok, err := guard.Acquire(ctx, "close-withdrawals")
	require.NoError(t, err)
	require.True(t, ok)

	// The lease expired and another instance took it over.
	mr.FastForward(2 * time.Minute)
	_, ok, err = guard.Acquire(ctx, "close-withdrawals")
	require.NoError(t, err)
	require.True(t, ok)

	release()
	assert.True(t, mr.Exists("job:close-withdrawals"))
}
