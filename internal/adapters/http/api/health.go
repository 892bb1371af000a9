// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/secondwind/planner/pkg/metrics"
)

// HealthHandler handles liveness and metrics requests.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HandleHealth handles GET /healthz requests with a JSON liveness probe.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Service: "retirement-planner"})
}

// HandleMetrics serves Prometheus metrics from the custom registry.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
