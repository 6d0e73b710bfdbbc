// Package pacing spaces successive calls to the same external source.
// Courtesy pacing only; correctness never depends on it.
package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer blocks until the next call to a source is allowed.
type Pacer interface {
	Wait(ctx context.Context) error
}

type limiterPacer struct {
	limiter *rate.Limiter
}

func (p limiterPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NewLimiter returns a token-bucket pacer allowing one call per
// interval. The first call passes immediately. A non-positive interval
// yields a pacer that never waits.
func NewLimiter(interval time.Duration) Pacer {
	if interval <= 0 {
		return Noop()
	}
	return limiterPacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

type noopPacer struct{}

func (noopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Noop returns a pacer that never delays. Used by tests and by sources
// with no courtesy interval configured.
func Noop() Pacer {
	return noopPacer{}
}
