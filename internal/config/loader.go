package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if PLANNER_CONFIG is set
//  3. env (prefix PLANNER_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("PLANNER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: PLANNER_ADDR, PLANNER_WITHDRAWAL_RATE, ...
	// PLANNER_WITHDRAWAL_RATE maps to the flat key withdrawal_rate;
	// underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("PLANNER_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "planner_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, ErrEmptyAddr
	}
	if cfg.WithdrawalRate == 0 {
		return nil, ErrZeroWithdrawalRate
	}
	if cfg.MaxPortfolioYears <= 0 {
		return nil, ErrInvalidPortfolioCap
	}
	return &cfg, nil
}
