// Package api provides the HTTP API for the application
package api

import (
	"skypulse/internal/platform/clock"
	"skypulse/internal/platform/config"
	"skypulse/internal/platform/logger"
	"skypulse/internal/platform/metrics"
	phttp "skypulse/internal/platform/net/http"

	"skypulse/internal/modkit"
	"skypulse/internal/modkit/httpkit"
	"skypulse/internal/modkit/module"
	"skypulse/internal/modkit/swaggerkit"

	analyticsmod "skypulse/internal/services/analytics/module"
	metamod "skypulse/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
		Clk: clock.System(),
	}

	// Construct analytics first and hand its feed pinger to meta for readiness
	analytics := analyticsmod.New(deps)
	feed := module.MustPortsOf[analyticsmod.Ports](analytics).Pinger

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(feed)),
		analytics,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler + prometheus
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
		if opt.EnableMetrics {
			r.Handle("/metrics", metrics.Handler())
		}

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
