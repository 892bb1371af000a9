// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file and environment variables.
// - External errors are wrapped via this package's error helpers.
package config

import (
	"context"

	"github.com/secondwind/planner/internal/domain/assumptions"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxPortfolioYears caps the portfolio duration simulation.
	MaxPortfolioYears int `koanf:"max_portfolio_years"`

	// Default assumption rates, overridable per request.
	WithdrawalRate           float64 `koanf:"withdrawal_rate"`
	GrowthRatePreRetirement  float64 `koanf:"growth_rate_pre_retirement"`
	GrowthRatePostRetirement float64 `koanf:"growth_rate_post_retirement"`
	InflationRate            float64 `koanf:"inflation_rate"`
	TaxRate                  float64 `koanf:"tax_rate"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:                 "info",
		Addr:                     ":8080",
		MaxPortfolioYears:        100,
		WithdrawalRate:           assumptions.DefaultWithdrawalRate,
		GrowthRatePreRetirement:  assumptions.DefaultGrowthRatePreRetirement,
		GrowthRatePostRetirement: assumptions.DefaultGrowthRatePostRetirement,
		InflationRate:            assumptions.DefaultInflationRate,
		TaxRate:                  assumptions.DefaultTaxRate,
	}
}

// Assumptions builds the configured default assumption set with derived
// after-tax rates.
func (c *Config) Assumptions() assumptions.Set {
	return assumptions.ResolveBase(assumptions.Set{
		WithdrawalRate:           c.WithdrawalRate,
		GrowthRatePreRetirement:  c.GrowthRatePreRetirement,
		GrowthRatePostRetirement: c.GrowthRatePostRetirement,
		InflationRate:            c.InflationRate,
		TaxRate:                  c.TaxRate,
	}, assumptions.Overrides{})
}
