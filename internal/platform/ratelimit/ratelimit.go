// Package ratelimit provides the process-wide fixed-window request limiter.
//
// At most Limit admissions per Window. The window is wall-clock based and
// resets lazily: Admit checks the window's age before testing the counter, so
// no background goroutine is needed. Rejections carry the TooManyRequests
// code and are never retried; callers fall back to stale cache instead
package ratelimit

import (
	"sync"
	"time"

	"skypulse/internal/platform/clock"
	perr "skypulse/internal/platform/errors"
)

const (
	// DefaultLimit is the admissions allowed per window
	DefaultLimit = 100

	// DefaultWindow is the window length
	DefaultWindow = 60 * time.Second
)

// Limiter is a sliding fixed-window counter safe for concurrent use
type Limiter struct {
	mu          sync.Mutex
	windowStart time.Time
	count       int

	limit  int
	window time.Duration
	clk    clock.Clock
}

// New builds a Limiter; non-positive limit or window use the defaults
func New(limit int, window time.Duration, clk clock.Clock) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if clk == nil {
		clk = clock.System()
	}
	return &Limiter{limit: limit, window: window, clk: clk}
}

// Admit spends one unit of the current window.
// Returns a TooManyRequests error without side effects when the window is full
func (l *Limiter) Admit() error {
	now := l.clk.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.windowStart.IsZero() || now.Sub(l.windowStart) >= l.window {
		l.windowStart = now
		l.count = 0
	}
	if l.count >= l.limit {
		return perr.RateLimitedf("rate limit exceeded: %d requests in %s", l.count, l.window)
	}
	l.count++
	return nil
}

// Remaining reports how many admissions the current window has left.
// Informational only; a subsequent Admit may still fail under contention
func (l *Limiter) Remaining() int {
	now := l.clk.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.windowStart.IsZero() || now.Sub(l.windowStart) >= l.window {
		return l.limit
	}
	return l.limit - l.count
}
