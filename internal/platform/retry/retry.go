// Package retry provides the exponential-backoff policy wrapped around every
// remote fetch. Only transient failures are retried; rate limit rejections
// pass straight through to the stale-cache fallback path
package retry

import (
	"context"
	"time"

	"skypulse/internal/platform/clock"
	perr "skypulse/internal/platform/errors"
	"skypulse/internal/platform/logger"
	"skypulse/internal/platform/metrics"
)

const (
	// DefaultRetries is the number of additional attempts after the first failure
	DefaultRetries = 3

	// DefaultBase is the first backoff delay; each retry doubles it
	DefaultBase = 1 * time.Second
)

// Policy retries transient failures with exponential backoff
type Policy struct {
	retries int
	base    time.Duration
	clk     clock.Clock
	log     logger.Logger
}

// New builds a Policy; non-positive retries or base use the defaults
func New(retries int, base time.Duration, clk clock.Clock) *Policy {
	if retries <= 0 {
		retries = DefaultRetries
	}
	if base <= 0 {
		base = DefaultBase
	}
	if clk == nil {
		clk = clock.System()
	}
	return &Policy{retries: retries, base: base, clk: clk, log: *logger.Named("retry")}
}

// Do runs fn, retrying transient failures up to the configured count with
// delays base, 2*base, 4*base, ... The final failure is returned as-is.
// Context cancellation is checked before every attempt
func (p *Policy) Do(ctx context.Context, op string, fn func(context.Context) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !perr.Retryable(err) || attempt >= p.retries {
			return err
		}

		metrics.Retries.WithLabelValues(op).Inc()
		back := p.base << uint(attempt)
		p.log.Warn().
			Str("op", op).
			Int("attempt", attempt+1).
			Dur("backoff", back).
			Err(err).
			Msg("transient failure retrying")
		p.clk.Sleep(back)
	}
}

// Result runs fn through p and returns its value alongside the final error
func Result[T any](ctx context.Context, p *Policy, op string, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := p.Do(ctx, op, func(ctx context.Context) error {
		var ferr error
		out, ferr = fn(ctx)
		return ferr
	})
	return out, err
}
