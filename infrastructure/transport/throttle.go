package transport

import (
	"context"
	"sync"
	"time"
)

// Throttle paces outbound requests with a token bucket. The bucket starts
// full; each request takes a token and tokens refill one per interval.
type Throttle struct {
	mu         sync.Mutex
	tokens     int
	maxTokens  int
	refillRate time.Duration
	lastRefill time.Time
}

// NewThrottle creates a throttle allowing bursts of maxBurst requests with
// one token refilled every refillRate.
func NewThrottle(maxBurst int, refillRate time.Duration) *Throttle {
	return &Throttle{
		tokens:     maxBurst,
		maxTokens:  maxBurst,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is done.
func (t *Throttle) Wait(ctx context.Context) error {
	for {
		t.mu.Lock()
		t.refill()
		if t.tokens > 0 {
			t.tokens--
			t.mu.Unlock()
			return nil
		}
		wait := t.refillRate - time.Since(t.lastRefill)
		t.mu.Unlock()

		if wait <= 0 {
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// refill credits tokens for the time elapsed since the last refill.
// Caller holds t.mu.
func (t *Throttle) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastRefill)
	if add := int(elapsed / t.refillRate); add > 0 {
		t.tokens = min(t.tokens+add, t.maxTokens)
		t.lastRefill = now
	}
}
