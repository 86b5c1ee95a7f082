package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the portal
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Store Metrics
	StoreOperationsTotal *prometheus.CounterVec
	StoreFallbacksTotal  *prometheus.CounterVec
	LiveStoreUp          prometheus.Gauge

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	LoginsTotal              *prometheus.CounterVec
	RegistrationsTotal       prometheus.Counter
	VolunteeringSubmissions  prometheus.Counter
	VolunteeringReviewsTotal *prometheus.CounterVec
}

// NewMetricsRegistry registers every metric on reg. Pass
// prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "portal_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		StoreOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_store_operations_total",
				Help: "Data-access operations by entity, operation and backing store",
			},
			[]string{"entity", "operation", "store"},
		),
		StoreFallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_store_fallbacks_total",
				Help: "Live store failures that were answered from the fallback store or reported to the caller",
			},
			[]string{"entity", "operation"},
		),
		LiveStoreUp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "portal_live_store_up",
				Help: "1 when the live store answered the last health probe, 0 otherwise",
			},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		LoginsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_logins_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
		RegistrationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "portal_registrations_total",
				Help: "Successful member registrations",
			},
		),
		VolunteeringSubmissions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "portal_volunteering_submissions_total",
				Help: "Volunteering hour submissions accepted",
			},
		),
		VolunteeringReviewsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_volunteering_reviews_total",
				Help: "Volunteering hour reviews by resulting status",
			},
			[]string{"status"},
		),
	}
}

// RecordStoreOp counts a data-access operation. Safe on a nil registry.
func (m *MetricsRegistry) RecordStoreOp(entity, operation, store string) {
	if m == nil {
		return
	}
	m.StoreOperationsTotal.WithLabelValues(entity, operation, store).Inc()
}

// RecordFallback counts a live store failure. Safe on a nil registry.
func (m *MetricsRegistry) RecordFallback(entity, operation string) {
	if m == nil {
		return
	}
	m.StoreFallbacksTotal.WithLabelValues(entity, operation).Inc()
}

// SetStoreUp records the outcome of the last live store probe. Safe on a nil registry.
func (m *MetricsRegistry) SetStoreUp(up bool) {
	if m == nil {
		return
	}
	if up {
		m.LiveStoreUp.Set(1)
		return
	}
	m.LiveStoreUp.Set(0)
}

// RecordCache counts a cache lookup. Safe on a nil registry.
func (m *MetricsRegistry) RecordCache(pattern string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHitsTotal.WithLabelValues(pattern).Inc()
		return
	}
	m.CacheMissesTotal.WithLabelValues(pattern).Inc()
}

// RecordLogin counts a login attempt. Safe on a nil registry.
func (m *MetricsRegistry) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginsTotal.WithLabelValues(outcome).Inc()
}

// RecordRegistration counts a successful registration. Safe on a nil registry.
func (m *MetricsRegistry) RecordRegistration() {
	if m == nil {
		return
	}
	m.RegistrationsTotal.Inc()
}

// RecordSubmission counts an accepted volunteering submission. Safe on a nil registry.
func (m *MetricsRegistry) RecordSubmission() {
	if m == nil {
		return
	}
	m.VolunteeringSubmissions.Inc()
}

// RecordReview counts a volunteering review. Safe on a nil registry.
func (m *MetricsRegistry) RecordReview(status string) {
	if m == nil {
		return
	}
	m.VolunteeringReviewsTotal.WithLabelValues(status).Inc()
}
