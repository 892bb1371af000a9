package loadgen

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/secondwind/planner/pkg/logger"
)

// Divisor for mapping crypto/rand draws onto [0,1).
const randomFloatDivisor = 1_000_000

// Athlete profile generation ranges.
const (
	minCurrentAge    = 18
	currentAgeRange  = 22 // ages 18-39, an active playing career
	minGapYears      = 1
	gapYearsRange    = 30
	maxRetirementAge = 100

	minWealth    = 0.0
	wealthRange  = 5_000_000.0
	minIncome    = 50_000.0
	incomeRange  = 2_000_000.0
	minPayout    = 1_000.0
	payoutRange  = 19_000.0
)

// getRandomFloat returns a random float64 in [0,1) using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func getRandomInt(bound int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(bound)))
	return int(n.Int64())
}

// generateRequests builds NumRequests athlete profiles across the valid
// input space.
func generateRequests(ctx context.Context, config *Config, stats *Stats) []Request {
	logger.Get().Info(ctx, "generating analysis requests", logger.Int("count", config.NumRequests))

	requests := make([]Request, 0, config.NumRequests)
	for i := 0; i < config.NumRequests; i++ {
		age := minCurrentAge + getRandomInt(currentAgeRange)
		retirementAge := age + minGapYears + getRandomInt(gapYearsRange)
		if retirementAge > maxRetirementAge {
			retirementAge = maxRetirementAge
		}

		requests = append(requests, Request{
			Age:                   age,
			RetirementAge:         retirementAge,
			CurrentWealth:         minWealth + getRandomFloat()*wealthRange,
			CurrentIncome:         minIncome + getRandomFloat()*incomeRange,
			MonthlyPayoutRequired: minPayout + getRandomFloat()*payoutRange,
			RequestID:             uuid.NewString(),
		})
	}

	stats.RequestsGenerated = len(requests)
	return requests
}
