package workers

import (
	"context"
	"time"

	"framework4future/portal/internal/db"
	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/metrics"
)

// StoreMonitor probes the live store on an interval and logs when it goes
// down or comes back. Requests keep falling back per operation either way.
type StoreMonitor struct {
	live    *db.Live
	metrics *metrics.MetricsRegistry
	timeout time.Duration
	up      *bool
}

func NewStoreMonitor(live *db.Live, m *metrics.MetricsRegistry) *StoreMonitor {
	return &StoreMonitor{
		live:    live,
		metrics: m,
		timeout: 5 * time.Second,
	}
}

// Start runs the probe immediately and then on every tick until ctx is done.
func (m *StoreMonitor) Start(ctx context.Context, interval time.Duration) {
	if !m.live.Configured() {
		logging.Info("[StoreMonitor] Live store not configured, monitor idle")
		m.metrics.SetStoreUp(false)
		return
	}

	logging.Info("[StoreMonitor] Starting live store monitoring", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			logging.Info("[StoreMonitor] Shutting down")
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check pings the live store once and reports whether it answered.
func (m *StoreMonitor) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.live.Ping(ctx)
	up := err == nil
	m.metrics.SetStoreUp(up)

	switch {
	case m.up == nil && up:
		logging.Info("[StoreMonitor] Live store reachable")
	case up && !*m.up:
		logging.Info("[StoreMonitor] Live store recovered")
	case !up && (m.up == nil || *m.up):
		logging.Error("[StoreMonitor] Live store unreachable, requests will use fallback handling", "error", err.Error())
	}
	m.up = &up
	return up
}
