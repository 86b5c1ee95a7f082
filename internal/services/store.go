package services

import (
	"errors"
	"time"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/metrics"
)

var (
	// ErrNotFound is returned when the requested record does not exist in the
	// store that answered.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput wraps validation failures found below the handler layer.
	ErrInvalidInput = errors.New("invalid input")
)

// storeDeps is embedded by every data-access service. It runs the configuration
// probe and does the bookkeeping around live calls.
type storeDeps struct {
	live     *db.Live
	fallback *fallback.Store
	metrics  *metrics.MetricsRegistry
}

func newStoreDeps(live *db.Live, fb *fallback.Store, m *metrics.MetricsRegistry) storeDeps {
	if fb == nil {
		fb = fallback.New()
	}
	return storeDeps{live: live, fallback: fb, metrics: m}
}

// useLive probes the configuration. When it reports false the operation is
// counted against the fallback store.
func (d storeDeps) useLive(entity, op string) bool {
	if d.live.Configured() {
		return true
	}
	d.metrics.RecordStoreOp(entity, op, string(constants.StoreFallback))
	return false
}

func (d storeDeps) liveOK(entity, op string) {
	d.metrics.RecordStoreOp(entity, op, string(constants.StoreLive))
}

// liveFailed logs a live store error. Swallowing services then serve the
// fallback store; result services report a generic error.
func (d storeDeps) liveFailed(entity, op string, err error) {
	logging.Warn("Live store operation failed",
		"entity", entity,
		"operation", op,
		"error", err.Error(),
	)
	d.metrics.RecordFallback(entity, op)
	d.metrics.RecordStoreOp(entity, op, string(constants.StoreFallback))
}

func now() time.Time {
	return time.Now().UTC()
}
