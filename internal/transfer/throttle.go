package transfer

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle paces destination requests with a token bucket. It exposes a
// single Acquire suspension point so the engine loop stays free of sleep
// calls and the pacing policy can change without touching it.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a throttle allowing perSecond requests per second with
// a burst of one. A non-positive rate disables pacing.
func NewThrottle(perSecond float64) *Throttle {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Throttle{limiter: rate.NewLimiter(limit, 1)}
}

// Acquire blocks until the next request is allowed or the context ends.
func (t *Throttle) Acquire(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
