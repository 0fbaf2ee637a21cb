// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"

	"go.uber.org/ratelimit"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Pacer spaces sequential requests at least interval apart. It does not allow
// bursts, so a caller issuing requests back to back sees one request per interval.
type Pacer struct {
	limiter ratelimit.Limiter
}

// NewPacer builds a Pacer. A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{limiter: ratelimit.NewUnlimited()}
	}
	return &Pacer{limiter: ratelimit.New(1, ratelimit.Per(interval), ratelimit.WithoutSlack)}
}

// Wait blocks until the next request may be issued.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.limiter.Take()
	return ctx.Err()
}
