// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/secondwind/planner/internal/domain/assumptions"
	"github.com/secondwind/planner/internal/domain/projection"
)

// AnalyzeHandler handles retirement analysis requests.
type AnalyzeHandler struct {
	deps Dependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// analyzeRequest mirrors the request schema for POST /api/v1/financial/analyze.
// The embedded overrides are optional; absent fields take the configured
// defaults.
type analyzeRequest struct {
	Age                   int     `json:"age"`
	RetirementAge         int     `json:"retirement_age"`
	CurrentWealth         float64 `json:"current_wealth"`
	CurrentIncome         float64 `json:"current_income"`
	MonthlyPayoutRequired float64 `json:"monthly_payout_required"`

	assumptions.Overrides
}

// analyzeResponse is the success envelope.
type analyzeResponse struct {
	Success  bool            `json:"success"`
	Analysis analysisPayload `json:"analysis"`
	Message  string          `json:"message"`
}

type analysisPayload struct {
	Inputs          inputsPayload      `json:"inputs"`
	Projections     projectionsPayload `json:"projections"`
	Status          statusPayload      `json:"status"`
	Assumptions     assumptions.Set    `json:"assumptions"`
	Recommendations []string           `json:"recommendations"`
}

type inputsPayload struct {
	CurrentAge            int     `json:"current_age"`
	RetirementAge         int     `json:"retirement_age"`
	CurrentWealth         float64 `json:"current_wealth"`
	CurrentIncome         float64 `json:"current_income"`
	MonthlyPayoutRequired float64 `json:"monthly_payout_required"`
	AnnualPayoutRequired  float64 `json:"annual_payout_required"`
}

type projectionsPayload struct {
	YearsToRetirement             int     `json:"years_to_retirement"`
	RequiredCorpus                float64 `json:"required_corpus"`
	ProjectedWealthAtRetirement   float64 `json:"projected_wealth_at_retirement"`
	WealthGap                     float64 `json:"wealth_gap"`
	RequiredMonthlySavings        float64 `json:"required_monthly_savings"`
	RequiredAnnualSavings         float64 `json:"required_annual_savings"`
	SavingsRatePercentage         float64 `json:"savings_rate_percentage"`
	EstimatedYearsMoneyLasts      int     `json:"estimated_years_money_lasts"`
	InflationAdjustedAnnualPayout float64 `json:"inflation_adjusted_annual_payout"`
}

type statusPayload struct {
	IsOnTrack        bool    `json:"is_on_track"`
	FeasibilityScore float64 `json:"feasibility_score"`
	UrgencyLevel     string  `json:"urgency_level"`
}

// HandleAnalyze handles POST /api/v1/financial/analyze requests.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	const op = "api.analyze"
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, WrapKind(op, ErrBadRequest, err).Error())
		return
	}

	res, set, err := h.deps.Analyze(r.Context(), projection.Input{
		CurrentAge:            req.Age,
		RetirementAge:         req.RetirementAge,
		CurrentWealth:         req.CurrentWealth,
		CurrentIncome:         req.CurrentIncome,
		MonthlyPayoutRequired: req.MonthlyPayoutRequired,
	}, req.Overrides)
	if err != nil {
		// Validation and computation failures are both caller errors;
		// a bad request must never surface as a server fault.
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Success:  true,
		Analysis: buildAnalysis(req, res, set),
		Message:  "Financial analysis completed successfully",
	})
}

func buildAnalysis(req analyzeRequest, res projection.Result, set assumptions.Set) analysisPayload {
	return analysisPayload{
		Inputs: inputsPayload{
			CurrentAge:            req.Age,
			RetirementAge:         req.RetirementAge,
			CurrentWealth:         round2(req.CurrentWealth),
			CurrentIncome:         round2(req.CurrentIncome),
			MonthlyPayoutRequired: round2(req.MonthlyPayoutRequired),
			AnnualPayoutRequired:  round2(res.AnnualPayoutRequired),
		},
		Projections: projectionsPayload{
			YearsToRetirement:             res.YearsToRetirement,
			RequiredCorpus:                round2(res.RequiredCorpus),
			ProjectedWealthAtRetirement:   round2(res.ProjectedWealthAtRetirement),
			WealthGap:                     round2(res.WealthGap),
			RequiredMonthlySavings:        round2(res.RequiredMonthlySavings),
			RequiredAnnualSavings:         round2(res.RequiredAnnualSavings),
			SavingsRatePercentage:         round2(res.SavingsRatePercentage),
			EstimatedYearsMoneyLasts:      res.EstimatedYearsMoneyLasts,
			InflationAdjustedAnnualPayout: round2(res.InflationAdjustedAnnualPayout),
		},
		Status: statusPayload{
			IsOnTrack:        res.IsOnTrack,
			FeasibilityScore: round2(res.FeasibilityScore),
			UrgencyLevel:     string(res.UrgencyLevel),
		},
		Assumptions:     set,
		Recommendations: res.Recommendations,
	}
}
