package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const healthPingTimeout = 2 * time.Second

// HealthCheck is one component line of the health report.
type HealthCheck struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// HealthReport is the body of GET /healthCheck. Store names the store that is
// answering data requests: "live" or "fallback".
type HealthReport struct {
	Status  string                 `json:"status"`
	Store   string                 `json:"store"`
	Checks  map[string]HealthCheck `json:"services"`
	UpSince time.Time              `json:"up_since"`
	Uptime  string                 `json:"uptime"`
}

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server is running and reports which store answers.
// @Tags Misc
// @Success 200 {object} api.HealthReport
// @Router /healthCheck [get]
func (h *Handlers) HealthCheckHandler(upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := HealthReport{
			Status:  "ok",
			Store:   "fallback",
			Checks:  map[string]HealthCheck{},
			UpSince: upSince,
			Uptime:  time.Since(upSince).Round(time.Second).String(),
		}

		store := HealthCheck{Status: "ok", Details: "Serving the in-memory fallback store"}
		if h.deps.Live.Configured() {
			ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
			defer cancel()

			if err := h.deps.Live.Ping(ctx); err != nil {
				store = HealthCheck{Status: "down", Details: err.Error()}
				report.Status = "degraded"
			} else {
				store = HealthCheck{Status: "ok", Details: "Live store connected"}
				report.Store = "live"
			}
		}
		report.Checks["store"] = store

		uploads := HealthCheck{Status: "ok", Details: "Local disk"}
		if h.deps.Config.Cloudinary.Enabled() {
			uploads.Details = "Cloudinary"
		}
		report.Checks["uploads"] = uploads

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(report)
	}
}
