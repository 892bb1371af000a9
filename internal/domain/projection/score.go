package projection

// Feasibility scoring thresholds.
const (
	maxScore = 100.0
	minScore = 0.0

	severeSavingsRate     = 50.0
	highSavingsRate       = 30.0
	elevatedSavingsRate   = 20.0
	severeRatePenalty     = 40.0
	highRatePenalty       = 20.0
	elevatedRatePenalty   = 10.0
	longHorizonYears      = 20
	shortHorizonYears     = 5
	longHorizonBonus      = 10.0
	shortHorizonPenalty   = 20.0
	strongWealthFraction  = 0.5
	weakWealthFraction    = 0.1
	strongWealthBonus     = 10.0
	weakWealthPenalty     = 10.0
)

// feasibilityScore summarizes how achievable the plan is on a 0-100 scale.
// Higher required savings rates drag it down; time and existing wealth lift it.
func feasibilityScore(savingsRate float64, yearsToRetirement int, currentWealth, requiredCorpus float64) float64 {
	score := maxScore

	switch {
	case savingsRate > severeSavingsRate:
		score -= severeRatePenalty
	case savingsRate > highSavingsRate:
		score -= highRatePenalty
	case savingsRate > elevatedSavingsRate:
		score -= elevatedRatePenalty
	}

	switch {
	case yearsToRetirement > longHorizonYears:
		score += longHorizonBonus
	case yearsToRetirement < shortHorizonYears:
		score -= shortHorizonPenalty
	}

	switch {
	case currentWealth > requiredCorpus*strongWealthFraction:
		score += strongWealthBonus
	case currentWealth < requiredCorpus*weakWealthFraction:
		score -= weakWealthPenalty
	}

	if score > maxScore {
		return maxScore
	}
	if score < minScore {
		return minScore
	}
	return score
}

// Urgency thresholds on savings rate and horizon.
const (
	criticalSavingsRate  = 40.0
	urgentSavingsRate    = 25.0
	watchSavingsRate     = 15.0
	criticalHorizonYears = 5
	urgentHorizonYears   = 10
)

// urgencyFor buckets the plan by required savings rate and time remaining.
func urgencyFor(savingsRate float64, yearsToRetirement int) Urgency {
	switch {
	case savingsRate > criticalSavingsRate || yearsToRetirement < criticalHorizonYears:
		return UrgencyCritical
	case savingsRate > urgentSavingsRate || yearsToRetirement < urgentHorizonYears:
		return UrgencyHigh
	case savingsRate > watchSavingsRate:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}
