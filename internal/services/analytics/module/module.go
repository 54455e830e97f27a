// Package module wires analytics into the API using modkit
package module

import (
	"net/http"
	"time"

	bluesky "skypulse/internal/adapters/feed/bluesky"
	modkit "skypulse/internal/modkit"
	"skypulse/internal/modkit/httpkit"
	"skypulse/internal/platform/cache"
	"skypulse/internal/platform/config"
	"skypulse/internal/platform/ratelimit"
	"skypulse/internal/platform/retry"
	str "skypulse/internal/platform/strings"
	analyticshttp "skypulse/internal/services/analytics/http"
	svc "skypulse/internal/services/analytics/service"
)

// Module implements the analytics module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc svc.Service
}

// FromConfig reads the aggregation knobs under the given namespace
func FromConfig(cfg config.Conf) svc.Config {
	return svc.Config{
		MaxItems:       cfg.MayInt("MAX_ITEMS", 1000),
		PageSize:       cfg.MayInt("PAGE_SIZE", 100),
		MaxAge:         cfg.MayDuration("MAX_AGE", 30*24*time.Hour),
		Workers:        cfg.MayInt("WORKERS", 10),
		CacheTTL:       cfg.MayDuration("CACHE_TTL", cache.DefaultTTL),
		RateLimit:      cfg.MayInt("RATE_LIMIT", ratelimit.DefaultLimit),
		RateWindow:     cfg.MayDuration("RATE_WINDOW", ratelimit.DefaultWindow),
		Retries:        cfg.MayInt("RETRIES", retry.DefaultRetries),
		RetryBase:      cfg.MayDuration("RETRY_BASE", retry.DefaultBase),
		ActivitySample: cfg.MayInt("ACTIVITY_SAMPLE", 50),
		DefaultTZ:      cfg.MayLocation("TZ", time.UTC),
	}
}

// New constructs the analytics module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analytics"),
		modkit.WithPrefix("/analytics"),
	}, opts...)...)

	feedCfg := deps.Cfg.Prefix("FEED_")
	client := bluesky.NewClient(bluesky.Options{
		BaseURL:   feedCfg.MayString("BASE_URL", ""),
		UserAgent: feedCfg.MayString("USER_AGENT", ""),
		Timeout:   feedCfg.MayDuration("TIMEOUT", 10*time.Second),
		AccessJWT: feedCfg.MayString("ACCESS_JWT", ""),
	})
	source := bluesky.NewSource(client)

	s := svc.New(deps, FromConfig(deps.Cfg.Prefix("ANALYTICS_")), source, source)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       s,
	}
	m.ports = Ports{Service: adaptServicePort{svc: s}, Pinger: s}

	external := b.Register
	m.register = func(r httpkit.Router) {
		analyticshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
