package workers

import (
	"context"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/metrics"
	"framework4future/portal/internal/services"
)

type WorkersContainer struct {
	StoreMonitor   *StoreMonitor
	CategoryWarmer *CategoryWarmer
}

// InitWorkers starts the background workers. They stop when ctx is cancelled.
func InitWorkers(ctx context.Context, live *db.Live, blogs *services.BlogService, m *metrics.MetricsRegistry) *WorkersContainer {
	monitor := NewStoreMonitor(live, m)
	warmer := NewCategoryWarmer(blogs)

	go monitor.Start(ctx, constants.StoreMonitorInterval)
	go warmer.Start(ctx, constants.CategoriesCacheTTL/2)

	return &WorkersContainer{
		StoreMonitor:   monitor,
		CategoryWarmer: warmer,
	}
}
