// Package service contains the analytics workflows
package service

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"skypulse/internal/modkit"
	"skypulse/internal/platform/cache"
	"skypulse/internal/platform/clock"
	perr "skypulse/internal/platform/errors"
	"skypulse/internal/platform/metrics"
	"skypulse/internal/platform/ratelimit"
	"skypulse/internal/platform/retry"
	"skypulse/internal/services/analytics/domain"
)

// Service defines the analytics service contract
type Service interface {
	domain.ServicePort
	domain.Pinger
}

// Config carries runtime knobs for aggregation runs
type Config struct {
	// MaxItems is the pagination ceiling per fetch loop
	MaxItems int
	// PageSize is the page size requested from the feed
	PageSize int
	// MaxAge bounds how far back the post pager walks
	MaxAge time.Duration
	// Workers bounds concurrent per-post fetches in a run
	Workers int

	CacheTTL   time.Duration
	RateLimit  int
	RateWindow time.Duration
	Retries    int
	RetryBase  time.Duration

	// ActivitySample is how many recent posts feed the hour binner
	ActivitySample int
	// DefaultTZ is used when a request does not name a zone
	DefaultTZ *time.Location
}

func withDefaults(cfg Config) Config {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 1000
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 30 * 24 * time.Hour
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 10
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = cache.DefaultTTL
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = ratelimit.DefaultLimit
	}
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = ratelimit.DefaultWindow
	}
	if cfg.Retries <= 0 {
		cfg.Retries = retry.DefaultRetries
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = retry.DefaultBase
	}
	if cfg.ActivitySample <= 0 {
		cfg.ActivitySample = 50
	}
	if cfg.DefaultTZ == nil {
		cfg.DefaultTZ = time.UTC
	}
	return cfg
}

// Svc implements the analytics service
type Svc struct {
	deps    modkit.Deps
	cfg     Config
	feed    domain.FeedPort
	pinger  domain.Pinger
	results *cache.Cache
	clk     clock.Clock
	sf      singleflight.Group
}

// New constructs an analytics service around a raw feed port
// the port is composed with the local rate limiter and the retry policy;
// the health pinger stays unthrottled
func New(deps modkit.Deps, cfg Config, feed domain.FeedPort, pinger domain.Pinger) *Svc {
	if feed == nil {
		panic("analytics.Service requires a non nil FeedPort")
	}
	cfg = withDefaults(cfg)

	clk := deps.Clk
	if clk == nil {
		clk = clock.System()
	}

	limited := newLimited(feed, ratelimit.New(cfg.RateLimit, cfg.RateWindow, clk))
	guarded := newRetried(limited, retry.New(cfg.Retries, cfg.RetryBase, clk))

	return &Svc{
		deps:    deps,
		cfg:     cfg,
		feed:    guarded,
		pinger:  pinger,
		results: cache.New(cfg.CacheTTL, clk),
		clk:     clk,
	}
}

// Ping reports remote feed liveness
func (s *Svc) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger.Ping(ctx)
}

// cached serves purpose/actor from the result cache, collapsing concurrent
// misses into one flight and falling back to an expired entry when the
// rebuild is rate limited
func cached[T any](ctx context.Context, s *Svc, purpose, actor string, fill func(context.Context) (T, error)) (T, bool, error) {
	key := cache.Key{Actor: actor, Purpose: purpose}

	if v, ok := s.results.Get(key); ok {
		metrics.CacheHits.WithLabelValues(purpose, "fresh").Inc()
		return v.(T), false, nil
	}
	metrics.CacheMisses.WithLabelValues(purpose).Inc()

	v, err, _ := s.sf.Do(purpose+"|"+actor, func() (any, error) {
		// a concurrent flight may have refilled while we waited
		if v, ok := s.results.Get(key); ok {
			return v, nil
		}
		out, err := fill(ctx)
		if err != nil {
			return nil, err
		}
		s.results.Put(key, out)
		metrics.CacheSize.Set(float64(s.results.Len()))
		return out, nil
	})
	if err != nil {
		var zero T
		if perr.RateLimited(err) {
			if sv, ok := s.results.Stale(key); ok {
				metrics.CacheHits.WithLabelValues(purpose, "stale").Inc()
				return sv.(T), true, nil
			}
			return zero, false, perr.DataUnavailablef("%s for %s: %v", purpose, actor, err)
		}
		if perr.Retryable(err) {
			// the retry budget is spent by the time the error reaches here
			return zero, false, perr.DataUnavailablef("%s for %s: %v", purpose, actor, err)
		}
		// caller errors (unknown actor, bad input) keep their own code
		return zero, false, err
	}
	return v.(T), false, nil
}
