// Package assumptions holds the rate constants behind every projection and
// resolves per-request overrides against the documented defaults.
package assumptions

// Documented default rates.
const (
	DefaultWithdrawalRate           = 0.04
	DefaultGrowthRatePreRetirement  = 0.05
	DefaultGrowthRatePostRetirement = 0.03
	DefaultInflationRate            = 0.03
	DefaultTaxRate                  = 0.0
)

// Set is a resolved, immutable assumption set. The after-tax rates are derived
// at resolution time and echoed back to callers; with the default tax rate of
// zero they equal the nominal growth rates.
type Set struct {
	WithdrawalRate           float64 `json:"withdrawal_rate"`
	GrowthRatePreRetirement  float64 `json:"growth_rate_pre_retirement"`
	GrowthRatePostRetirement float64 `json:"growth_rate_post_retirement"`
	InflationRate            float64 `json:"inflation_rate"`
	TaxRate                  float64 `json:"tax_rate"`

	AfterTaxGrowthPreRetirement  float64 `json:"after_tax_growth_pre_retirement"`
	AfterTaxGrowthPostRetirement float64 `json:"after_tax_growth_post_retirement"`
}

// Overrides carries optional caller-supplied rate overrides. Nil fields take
// the defaults. Values are accepted as-is; out-of-range rates are deliberately
// not clamped so the resulting numbers speak for themselves.
type Overrides struct {
	WithdrawalRate           *float64 `json:"withdrawal_rate,omitempty"`
	GrowthRatePreRetirement  *float64 `json:"growth_rate_pre_retirement,omitempty"`
	GrowthRatePostRetirement *float64 `json:"growth_rate_post_retirement,omitempty"`
	InflationRate            *float64 `json:"inflation_rate,omitempty"`
	TaxRate                  *float64 `json:"tax_rate,omitempty"`
}

// Default returns the fully resolved default assumption set.
func Default() Set {
	return Resolve(Overrides{})
}

// Resolve merges overrides over the defaults and derives the after-tax
// effective growth rates.
func Resolve(o Overrides) Set {
	s := Set{
		WithdrawalRate:           DefaultWithdrawalRate,
		GrowthRatePreRetirement:  DefaultGrowthRatePreRetirement,
		GrowthRatePostRetirement: DefaultGrowthRatePostRetirement,
		InflationRate:            DefaultInflationRate,
		TaxRate:                  DefaultTaxRate,
	}
	if o.WithdrawalRate != nil {
		s.WithdrawalRate = *o.WithdrawalRate
	}
	if o.GrowthRatePreRetirement != nil {
		s.GrowthRatePreRetirement = *o.GrowthRatePreRetirement
	}
	if o.GrowthRatePostRetirement != nil {
		s.GrowthRatePostRetirement = *o.GrowthRatePostRetirement
	}
	if o.InflationRate != nil {
		s.InflationRate = *o.InflationRate
	}
	if o.TaxRate != nil {
		s.TaxRate = *o.TaxRate
	}
	s.AfterTaxGrowthPreRetirement = s.GrowthRatePreRetirement * (1 - s.TaxRate)
	s.AfterTaxGrowthPostRetirement = s.GrowthRatePostRetirement * (1 - s.TaxRate)
	return s
}

// ResolveBase builds a Set from explicit base rates, deriving after-tax rates.
// Used when defaults come from configuration rather than the package constants.
func ResolveBase(base Set, o Overrides) Set {
	s := base
	if o.WithdrawalRate != nil {
		s.WithdrawalRate = *o.WithdrawalRate
	}
	if o.GrowthRatePreRetirement != nil {
		s.GrowthRatePreRetirement = *o.GrowthRatePreRetirement
	}
	if o.GrowthRatePostRetirement != nil {
		s.GrowthRatePostRetirement = *o.GrowthRatePostRetirement
	}
	if o.InflationRate != nil {
		s.InflationRate = *o.InflationRate
	}
	if o.TaxRate != nil {
		s.TaxRate = *o.TaxRate
	}
	s.AfterTaxGrowthPreRetirement = s.GrowthRatePreRetirement * (1 - s.TaxRate)
	s.AfterTaxGrowthPostRetirement = s.GrowthRatePostRetirement * (1 - s.TaxRate)
	return s
}
