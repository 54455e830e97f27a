// Package clock provides an injectable time source so the cache, the rate
// limiter, and the retry policy can be tested without sleeping
package clock

import (
	"sync"
	"time"
)

// Clock is the minimal time surface the platform depends on
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Real is the wall-clock implementation
type Real struct{}

// Now returns the current wall-clock time
func (Real) Now() time.Time { return time.Now() }

// Sleep blocks for d
func (Real) Sleep(d time.Duration) { time.Sleep(d) }

// System returns the process wall clock
func System() Clock { return Real{} }

// Fake is a manually advanced clock for tests.
// Sleep advances the clock instead of blocking
type Fake struct {
	mu  sync.Mutex
	now time.Time

	// Slept records every Sleep duration in order, for backoff assertions
	Slept []time.Duration
}

// NewFake returns a Fake pinned at t
func NewFake(t time.Time) *Fake { return &Fake{now: t} }

// Now returns the fake's current time
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Sleep advances the fake clock by d without blocking
func (f *Fake) Sleep(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Slept = append(f.Slept, d)
	f.now = f.now.Add(d)
}

// Advance moves the fake clock forward by d
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Set pins the fake clock to t
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}
