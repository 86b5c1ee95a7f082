package workers

import (
	"context"
	"time"

	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/services"
)

// CategoryWarmer reloads the blog category list into the cache so public
// pages rarely pay for the load.
type CategoryWarmer struct {
	blogs *services.BlogService
}

func NewCategoryWarmer(blogs *services.BlogService) *CategoryWarmer {
	return &CategoryWarmer{blogs: blogs}
}

func (w *CategoryWarmer) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.Warm(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Warm(ctx)
		}
	}
}

// Warm refreshes the cached categories and returns how many were loaded.
func (w *CategoryWarmer) Warm(ctx context.Context) int {
	categories := w.blogs.RefreshCategories(ctx)
	logging.Debug("[CategoryWarmer] Blog categories cached", "count", len(categories))
	return len(categories)
}
