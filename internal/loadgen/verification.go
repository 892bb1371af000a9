package loadgen

import (
	"fmt"
	"math"
)

// Relative tolerance for recomputed values.
const verifyTolerance = 1e-6

// verifyResponse recomputes the headline numbers from the submitted inputs and
// checks the server's answer for internal consistency.
func verifyResponse(req Request, resp *Response) error {
	if !resp.Success {
		return fmt.Errorf("response for %s not marked successful", req.RequestID)
	}

	withdrawalRate := resp.Analysis.Assumptions.WithdrawalRate
	if withdrawalRate == 0 {
		return fmt.Errorf("response for %s carries a zero withdrawal rate", req.RequestID)
	}

	expectedCorpus := req.MonthlyPayoutRequired * 12 / withdrawalRate
	gotCorpus := resp.Analysis.Projections.RequiredCorpus
	if relativeDiff(gotCorpus, expectedCorpus) > verifyTolerance && math.Abs(gotCorpus-expectedCorpus) > 0.01 {
		return fmt.Errorf("corpus mismatch for %s: got %.2f, want %.2f", req.RequestID, gotCorpus, expectedCorpus)
	}

	onTrack := resp.Analysis.Status.IsOnTrack
	if onTrack != (resp.Analysis.Projections.WealthGap <= 0) {
		return fmt.Errorf("on-track flag inconsistent with wealth gap for %s", req.RequestID)
	}
	if onTrack && resp.Analysis.Projections.RequiredMonthlySavings != 0 {
		return fmt.Errorf("on-track plan for %s still demands savings", req.RequestID)
	}

	score := resp.Analysis.Status.FeasibilityScore
	if score < 0 || score > 100 {
		return fmt.Errorf("feasibility score out of range for %s: %.2f", req.RequestID, score)
	}

	switch resp.Analysis.Status.UrgencyLevel {
	case "low", "medium", "high", "critical":
	default:
		return fmt.Errorf("unknown urgency level for %s: %q", req.RequestID, resp.Analysis.Status.UrgencyLevel)
	}

	return nil
}

func relativeDiff(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}
