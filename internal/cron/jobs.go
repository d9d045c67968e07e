package cronrunner

import (
	"context"

	"go.uber.org/zap"

	"nextplay/internal/client/freetogame"
	"nextplay/internal/config"
	"nextplay/internal/service"
)

// warmPlatforms are the catalog queries kept hot between user requests.
var warmPlatforms = []string{"", "pc", "browser"}

// RegisterJobs schedules the cache warmers. Each run refreshes source
// state bookkeeping as a side effect, so a stalled upstream shows up in
// /api/sources/state even with no traffic.
func RegisterJobs(r *Runner, cfg config.CronConfig, catalog *service.CatalogService, trending *service.TrendingService, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	if spec := cfg.CatalogRefresh; spec != "" {
		if _, err := r.Add(spec, func(ctx context.Context) {
			for _, platform := range warmPlatforms {
				if _, err := catalog.List(ctx, freetogame.Query{Platform: platform}); err != nil {
					logger.Warn("catalog warm failed", zap.String("platform", platform), zap.Error(err))
				}
			}
		}); err != nil {
			return err
		}
	}

	if spec := cfg.TrendingWarm; spec != "" {
		if _, err := r.Add(spec, func(ctx context.Context) {
			if _, err := trending.Fetch(ctx, service.TrendingQuery{Page: 0}); err != nil {
				logger.Warn("trending warm failed", zap.Error(err))
			}
		}); err != nil {
			return err
		}
	}
	return nil
}
