package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr           = errors.New("addr must not be empty")
	ErrZeroWithdrawalRate  = errors.New("withdrawal_rate must not be zero")
	ErrInvalidPortfolioCap = errors.New("max_portfolio_years must be positive")
)
