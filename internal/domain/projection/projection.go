// Package projection computes retirement projections for athletes: required
// corpus under a safe-withdrawal rate, projected wealth at retirement, the
// savings gap and the monthly savings that close it, portfolio duration,
// feasibility, urgency and recommendation text.
//
// Compute is a pure function of its arguments. It holds no shared state and
// is safe for unlimited concurrent use.
package projection

import (
	"context"
	"math"

	"github.com/secondwind/planner/internal/domain/assumptions"
)

// Age bounds accepted by validation.
const (
	minAge = 18
	maxAge = 100
)

const monthsPerYear = 12

// defaultMaxPortfolioYears caps the portfolio duration simulation so a
// portfolio that outgrows its withdrawals still terminates.
const defaultMaxPortfolioYears = 100

// Urgency buckets how quickly the athlete needs to act.
type Urgency string

// Urgency levels, least to most pressing.
const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Input carries the validated financial facts for one analysis.
type Input struct {
	CurrentAge            int
	RetirementAge         int
	CurrentWealth         float64
	CurrentIncome         float64
	MonthlyPayoutRequired float64
}

// Result is the full projection, computed fresh per call and never mutated.
// Monetary values are full precision; rounding happens at the boundary.
type Result struct {
	YearsToRetirement             int
	AnnualPayoutRequired          float64
	RequiredCorpus                float64
	ProjectedWealthAtRetirement   float64
	WealthGap                     float64
	RequiredMonthlySavings        float64
	RequiredAnnualSavings         float64
	SavingsRatePercentage         float64
	EstimatedYearsMoneyLasts      int
	InflationAdjustedAnnualPayout float64
	IsOnTrack                     bool
	FeasibilityScore              float64
	UrgencyLevel                  Urgency
	Recommendations               []string
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMaxPortfolioYears caps the portfolio duration simulation.
func WithMaxPortfolioYears(years int) Option {
	return func(e *Engine) {
		if years > 0 {
			e.maxPortfolioYears = years
		}
	}
}

// Engine computes projections. The zero-value configuration is usable; the
// struct exists so simulation caps come from configuration, not globals.
type Engine struct {
	maxPortfolioYears int
}

// NewEngine creates an engine with configuration options applied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		maxPortfolioYears: defaultMaxPortfolioYears,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute runs the projection. It validates before any arithmetic and returns
// a *ValidationError naming every offending field, or ErrComputation when an
// intermediate value is non-finite.
func (e *Engine) Compute(_ context.Context, in Input, set assumptions.Set) (Result, error) {
	if err := validate(in, set); err != nil {
		return Result{}, err
	}

	years := in.RetirementAge - in.CurrentAge
	annualPayout := in.MonthlyPayoutRequired * monthsPerYear
	requiredCorpus := annualPayout / set.WithdrawalRate

	// Baseline projection: existing wealth compounds annually, no new savings.
	projected := in.CurrentWealth * math.Pow(1+set.AfterTaxGrowthPreRetirement, float64(years))
	gap := requiredCorpus - projected

	var monthlySavings float64
	if gap > 0 {
		monthlySavings = annuityPayment(gap, set.AfterTaxGrowthPreRetirement, years)
	}
	annualSavings := monthlySavings * monthsPerYear
	savingsRate := annualSavings / in.CurrentIncome * 100

	for _, v := range []float64{requiredCorpus, projected, gap, monthlySavings, savingsRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, ErrComputation
		}
	}

	duration := e.portfolioDuration(requiredCorpus, annualPayout, set.AfterTaxGrowthPostRetirement, set.InflationRate)
	inflationAdjusted := annualPayout * math.Pow(1+set.InflationRate, float64(years))

	onTrack := gap <= 0
	score := feasibilityScore(savingsRate, years, in.CurrentWealth, requiredCorpus)

	return Result{
		YearsToRetirement:             years,
		AnnualPayoutRequired:          annualPayout,
		RequiredCorpus:                requiredCorpus,
		ProjectedWealthAtRetirement:   projected,
		WealthGap:                     gap,
		RequiredMonthlySavings:        monthlySavings,
		RequiredAnnualSavings:         annualSavings,
		SavingsRatePercentage:         savingsRate,
		EstimatedYearsMoneyLasts:      duration,
		InflationAdjustedAnnualPayout: inflationAdjusted,
		IsOnTrack:                     onTrack,
		FeasibilityScore:              score,
		UrgencyLevel:                  urgencyFor(savingsRate, years),
		Recommendations: recommendations(recommendationInput{
			isOnTrack:             onTrack,
			wealthGap:             gap,
			savingsRatePercentage: savingsRate,
			yearsToRetirement:     years,
			currentWealth:         in.CurrentWealth,
			requiredCorpus:        requiredCorpus,
			monthlyPayoutRequired: in.MonthlyPayoutRequired,
		}),
	}, nil
}

// annuityPayment solves the future-value-of-an-ordinary-annuity equation for
// the monthly payment that accumulates to gap over years at the given annual
// growth rate. A zero monthly rate reduces to straight division.
func annuityPayment(gap, annualGrowth float64, years int) float64 {
	months := float64(years * monthsPerYear)
	monthlyRate := math.Pow(1+annualGrowth, 1.0/monthsPerYear) - 1
	if monthlyRate <= 0 {
		return gap / months
	}
	return gap * monthlyRate / (math.Pow(1+monthlyRate, months) - 1)
}

// portfolioDuration simulates how many years the corpus sustains withdrawals
// that start at annualWithdrawal and grow with inflation, while the remaining
// balance grows at the post-retirement rate. Bounded by maxPortfolioYears.
func (e *Engine) portfolioDuration(corpus, annualWithdrawal, growth, inflation float64) int {
	if annualWithdrawal <= 0 || corpus <= 0 {
		return e.maxPortfolioYears
	}

	balance := corpus
	withdrawal := annualWithdrawal
	years := 0
	for balance > 0 && years < e.maxPortfolioYears {
		balance = balance*(1+growth) - withdrawal
		withdrawal *= 1 + inflation
		years++
	}
	return years
}

// validate checks every field before any arithmetic runs, collecting all
// offending fields rather than stopping at the first.
func validate(in Input, set assumptions.Set) error {
	ve := &ValidationError{}
	if in.CurrentAge < minAge || in.CurrentAge > maxAge {
		ve.add("age", "must be between 18 and 100")
	}
	if in.RetirementAge < minAge || in.RetirementAge > maxAge {
		ve.add("retirement_age", "must be between 18 and 100")
	}
	if in.RetirementAge <= in.CurrentAge {
		ve.add("retirement_age", "must be greater than current age")
	}
	if in.CurrentWealth < 0 {
		ve.add("current_wealth", "must not be negative")
	}
	if in.CurrentIncome <= 0 {
		ve.add("current_income", "must be positive")
	}
	if in.MonthlyPayoutRequired <= 0 {
		ve.add("monthly_payout_required", "must be positive")
	}
	if set.WithdrawalRate == 0 {
		ve.add("withdrawal_rate", "must not be zero")
	}
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}
