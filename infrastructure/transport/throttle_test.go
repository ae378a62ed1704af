package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottleAllowsBurstWithoutWaiting(t *testing.T) {
	th := NewThrottle(3, time.Second)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, th.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestThrottleBlocksUntilRefill(t *testing.T) {
	th := NewThrottle(1, 50*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, th.Wait(ctx))

	start := time.Now()
	require.NoError(t, th.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestThrottleWaitHonorsCancellation(t *testing.T) {
	th := NewThrottle(1, time.Minute)
	require.NoError(t, th.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := th.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
