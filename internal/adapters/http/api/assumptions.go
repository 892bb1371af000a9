// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/secondwind/planner/internal/domain/assumptions"
)

// AssumptionsHandler serves the default assumption set and the built-in presets.
type AssumptionsHandler struct {
	deps Dependencies
}

// NewAssumptionsHandler creates a new assumptions handler.
func NewAssumptionsHandler(deps Dependencies) *AssumptionsHandler {
	return &AssumptionsHandler{deps: deps}
}

type assumptionsResponse struct {
	DefaultProfile assumptions.Set       `json:"default_profile"`
	Profiles       []assumptions.Profile `json:"profiles"`
	Explanation    map[string]string     `json:"explanation"`
}

// HandleGetAssumptions handles GET /api/v1/financial/assumptions requests.
func (h *AssumptionsHandler) HandleGetAssumptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, assumptionsResponse{
		DefaultProfile: h.deps.DefaultAssumptions(),
		Profiles:       h.deps.Profiles(),
		Explanation:    assumptions.Explanations(),
	})
}
