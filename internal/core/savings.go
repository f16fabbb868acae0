package core

import "fmt"

// Recommendation compares a bracket's savings target against actual spending.
type Recommendation struct {
	// Recommended is bracket minimum * savings target.
	Recommended Money
	// Actual is bracket minimum - total spent, clamped to zero. The bracket
	// floor is the baseline here, not the exact entered salary.
	Actual Money
	Tips   []string
}

// Tip tiers are fixed bracket-label sets, not income thresholds.
var (
	lowBrackets = map[string]bool{
		"0-10000":     true,
		"10000-20000": true,
	}
	midBrackets = map[string]bool{
		"20000-30000": true,
		"30000-40000": true,
	}

	lowTips = []string{
		"Focus on essential expenses only",
		"Use public transportation when possible",
		"Cook meals at home instead of eating out",
	}
	midTips = []string{
		"Consider starting an emergency fund",
		"Review and optimize monthly subscriptions",
		"Look into fixed deposits for savings",
	}
	highTips = []string{
		"Consider investing in mutual funds",
		"Plan for long-term investments",
		"Optimize credit card rewards",
	}
)

// Recommend computes the savings comparison and tip list for a bracket.
// A warning tip is prepended when spending has eaten into the savings margin,
// i.e. totalSpent > (1 - target) * bracket minimum.
func Recommend(label string, totalSpent Money, table BracketTable) (Recommendation, error) {
	bracket, err := table.ByLabel(label)
	if err != nil {
		return Recommendation{}, err
	}

	rec := Recommendation{
		Recommended: bracket.Min.MulRate(bracket.SavingsTarget),
		Actual:      bracket.Min.Sub(totalSpent).ClampNonNegative(),
	}

	margin := bracket.Min.MulRate(1 - bracket.SavingsTarget)
	if totalSpent.Cents > margin.Cents {
		rec.Tips = append(rec.Tips, fmt.Sprintf(
			"Your spending is higher than recommended. Try to save at least %.0f%% of your income.",
			bracket.SavingsTarget*100))
	}

	switch {
	case lowBrackets[label]:
		rec.Tips = append(rec.Tips, lowTips...)
	case midBrackets[label]:
		rec.Tips = append(rec.Tips, midTips...)
	default:
		rec.Tips = append(rec.Tips, highTips...)
	}

	return rec, nil
}
