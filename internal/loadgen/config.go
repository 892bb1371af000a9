// Package loadgen generates retirement analysis requests, submits them
// concurrently against a running server and verifies the responses.
package loadgen

import "time"

// Config holds configuration for a load run.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumRequests int           // Number of analysis requests to generate
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	Verbose     bool          // Enable verbose logging
}

// Request mirrors the analyze endpoint request schema.
type Request struct {
	Age                   int     `json:"age"`
	RetirementAge         int     `json:"retirement_age"`
	CurrentWealth         float64 `json:"current_wealth"`
	CurrentIncome         float64 `json:"current_income"`
	MonthlyPayoutRequired float64 `json:"monthly_payout_required"`

	RequestID string `json:"-"` // correlation id, sent as a header
}

// Response captures the fields the verifier checks.
type Response struct {
	Success  bool `json:"success"`
	Analysis struct {
		Projections struct {
			RequiredCorpus         float64 `json:"required_corpus"`
			WealthGap              float64 `json:"wealth_gap"`
			RequiredMonthlySavings float64 `json:"required_monthly_savings"`
		} `json:"projections"`
		Status struct {
			IsOnTrack        bool    `json:"is_on_track"`
			FeasibilityScore float64 `json:"feasibility_score"`
			UrgencyLevel     string  `json:"urgency_level"`
		} `json:"status"`
		Assumptions struct {
			WithdrawalRate float64 `json:"withdrawal_rate"`
		} `json:"assumptions"`
	} `json:"analysis"`
}

// Stats holds load-run statistics.
type Stats struct {
	RequestsGenerated  int
	RequestsSubmitted  int
	RequestsSuccessful int
	RequestsFailed     int
	OnTrack            int
	OffTrack           int
	VerifyFailures     int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
