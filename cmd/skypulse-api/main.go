// @title         Skypulse API
// @version       0.1.0
// @description   Engagement analytics over the Bluesky social graph

package main

import (
	"context"

	"skypulse/internal/platform/config"
	"skypulse/internal/platform/logger"
	phttp "skypulse/internal/platform/net/http"

	"skypulse/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	// modules read their own namespaces (FEED_*, ANALYTICS_*) off the root
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         *l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
