package limiter

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles outgoing requests to one per interval with the given burst.
type Limiter struct {
	limiter *rate.Limiter
}

// New returns a limiter. A non-positive interval means no limit.
func New(interval time.Duration, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Limiter{limiter: rate.NewLimiter(limit, burst)}
}

// Wait blocks until a request may proceed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
