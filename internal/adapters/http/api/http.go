// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"math"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/secondwind/planner/internal/domain/assumptions"
	"github.com/secondwind/planner/internal/domain/projection"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Analyze resolves assumption overrides and computes a projection.
	Analyze(ctx context.Context, in projection.Input, overrides assumptions.Overrides) (projection.Result, assumptions.Set, error)

	// DefaultAssumptions and Profiles expose the assumption presets.
	DefaultAssumptions() assumptions.Set
	Profiles() []assumptions.Profile
}

// Server wires HTTP routes for the business API.
type Server struct {
	analyzeHandler     *AnalyzeHandler
	assumptionsHandler *AssumptionsHandler
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		analyzeHandler:     NewAnalyzeHandler(deps),
		assumptionsHandler: NewAssumptionsHandler(deps),
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/financial/analyze", RequestIDMiddleware(MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze")))
	mux.HandleFunc("/api/v1/financial/assumptions", RequestIDMiddleware(MetricsMiddleware(s.assumptionsHandler.HandleGetAssumptions, "assumptions")))
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
}

// errorResponse mirrors the documented validation failure shape.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// round2 rounds monetary and percentage values for the wire, the engine keeps
// full precision internally.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
