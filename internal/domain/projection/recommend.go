package projection

import (
	"fmt"
	"math"
	"strconv"
)

type recommendationInput struct {
	isOnTrack             bool
	wealthGap             float64
	savingsRatePercentage float64
	yearsToRetirement     int
	currentWealth         float64
	requiredCorpus        float64
	monthlyPayoutRequired float64
}

// recommendations renders the ordered advice list from conditional templates.
// Fully deterministic: identical inputs always produce identical strings.
func recommendations(in recommendationInput) []string {
	recs := make([]string, 0, 6)

	if in.isOnTrack {
		recs = append(recs, fmt.Sprintf(
			"Congratulations! You're on track for retirement. Your current wealth of $%s is projected to grow past your required corpus of $%s.",
			formatMoney(in.currentWealth), formatMoney(in.requiredCorpus)))
		recs = append(recs,
			"Continue your current savings strategy and consider diversifying your portfolio.")
	} else {
		recs = append(recs, fmt.Sprintf(
			"Analysis shows you need $%s more to reach your retirement goal. This requires saving %.1f%% of your income annually.",
			formatMoney(math.Abs(in.wealthGap)), in.savingsRatePercentage))
	}

	switch {
	case in.savingsRatePercentage > criticalSavingsRate:
		recs = append(recs,
			"The required savings rate is very high. Consider extending your retirement age, reducing post-retirement expenses, or exploring higher-return investments with appropriate risk management.")
	case in.savingsRatePercentage > urgentSavingsRate:
		recs = append(recs,
			"This is an aggressive but achievable savings target. Focus on maximizing income during your peak earning years and cut unnecessary expenses.")
	case in.savingsRatePercentage > watchSavingsRate:
		recs = append(recs,
			"This is a healthy savings rate. Automate your savings to stay on track.")
	}

	switch {
	case in.yearsToRetirement < criticalHorizonYears:
		recs = append(recs,
			"With less than 5 years to retirement, consider working with a financial advisor to optimize your strategy and reduce portfolio risk.")
	case in.yearsToRetirement < urgentHorizonYears:
		recs = append(recs,
			"You have less than a decade to retirement. Start shifting to a more conservative allocation to protect your gains.")
	default:
		recs = append(recs, fmt.Sprintf(
			"You have %d years until retirement, so time is on your side. Consider growth-oriented investments to maximize returns.",
			in.yearsToRetirement))
	}

	// Athletes front-load lifetime earnings into a short career window.
	recs = append(recs,
		"Athlete-specific tip: consider your career earnings trajectory. If you're in your peak earning years, maximize savings now, and think about post-career income such as coaching, endorsements or business ventures.")

	if in.yearsToRetirement > urgentHorizonYears {
		recs = append(recs, fmt.Sprintf(
			"Remember that inflation increases your costs over time: the $%s/month you want today will need to be higher in retirement to maintain the same lifestyle.",
			formatMoney(in.monthlyPayoutRequired)))
	}

	return recs
}

// formatMoney renders a value rounded to whole units with thousands separators.
func formatMoney(v float64) string {
	n := int64(math.Round(math.Abs(v)))
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		if v < 0 {
			return "-" + s
		}
		return s
	}

	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	out := s[:first]
	for i := first; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	if v < 0 {
		return "-" + out
	}
	return out
}
