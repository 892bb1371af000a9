package assumptions

// Profile is a named assumption set exposed by the assumptions endpoint so
// clients can offer presets instead of raw rate fields.
type Profile struct {
	Name                     string  `json:"name"`
	WithdrawalRate           float64 `json:"withdrawal_rate"`
	GrowthRatePreRetirement  float64 `json:"growth_rate_pre_retirement"`
	GrowthRatePostRetirement float64 `json:"growth_rate_post_retirement"`
	InflationRate            float64 `json:"inflation_rate"`
	TaxRate                  float64 `json:"tax_rate"`
	Description              string  `json:"description"`
}

// Profiles returns the built-in presets, ordered from least to most aggressive.
func Profiles() []Profile {
	return []Profile{
		{
			Name:                     "Conservative",
			WithdrawalRate:           0.035,
			GrowthRatePreRetirement:  0.04,
			GrowthRatePostRetirement: 0.025,
			InflationRate:            0.03,
			TaxRate:                  0,
			Description:              "Lower risk, lower return expectations",
		},
		{
			Name:                     "Moderate",
			WithdrawalRate:           0.04,
			GrowthRatePreRetirement:  0.05,
			GrowthRatePostRetirement: 0.03,
			InflationRate:            0.03,
			TaxRate:                  0,
			Description:              "Balanced approach with standard assumptions",
		},
		{
			Name:                     "Aggressive",
			WithdrawalRate:           0.045,
			GrowthRatePreRetirement:  0.07,
			GrowthRatePostRetirement: 0.04,
			InflationRate:            0.03,
			TaxRate:                  0,
			Description:              "Higher risk, higher return expectations",
		},
	}
}

// Explanations maps each rate field to a short caller-facing description.
func Explanations() map[string]string {
	return map[string]string{
		"withdrawal_rate":             "The percentage of your retirement corpus you can safely withdraw each year (4% rule)",
		"growth_rate_pre_retirement":  "Expected compound annual growth rate (CAGR) before retirement",
		"growth_rate_post_retirement": "Expected growth rate after retirement, usually more conservative",
		"inflation_rate":              "Expected annual inflation affecting purchasing power",
		"tax_rate":                    "Tax rate applied to investment gains, reducing the effective CAGR",
	}
}
