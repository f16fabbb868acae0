package core

import "sort"

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category Category
	Amount   Money
}

// TrendPoint is one month's total in the spending trend series.
type TrendPoint struct {
	Month Month
	Total Money
}

// OverviewMetrics are the four headline figures of the dashboard.
type OverviewMetrics struct {
	Income   Money
	Expenses Money
	Savings  Money
	// SavingsRate is savings as a percentage of income; 0 when income is 0.
	SavingsRate float64
}

// Overview derives the headline metrics from the entered salary and the
// current month's total spending. Negative savings clamp to zero.
func Overview(salary, monthSpent Money) OverviewMetrics {
	m := OverviewMetrics{
		Income:   salary,
		Expenses: monthSpent,
		Savings:  salary.Sub(monthSpent).ClampNonNegative(),
	}
	if salary.Cents > 0 {
		m.SavingsRate = float64(m.Savings.Cents) / float64(salary.Cents) * 100
	}
	return m
}

// CategoryDistribution sums the whole log by category, in order of first
// appearance. Categories with no records are omitted.
func CategoryDistribution(log ExpenseLog) []CategoryAmount {
	totals := make(map[Category]Money)
	var order []Category
	for _, e := range log.All() {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	out := make([]CategoryAmount, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryAmount{Category: c, Amount: totals[c]})
	}
	return out
}

// MonthlyTrend sums the whole log per calendar month, chronologically.
func MonthlyTrend(log ExpenseLog) []TrendPoint {
	totals := make(map[Month]Money)
	for _, e := range log.All() {
		m := Month{Year: e.Date.Year(), Month: e.Date.Month()}
		totals[m] = totals[m].Add(e.Amount)
	}
	out := make([]TrendPoint, 0, len(totals))
	for m, total := range totals {
		out = append(out, TrendPoint{Month: m, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month.Year != out[j].Month.Year {
			return out[i].Month.Year < out[j].Month.Year
		}
		return out[i].Month.Month < out[j].Month.Month
	})
	return out
}

// RecentFirst returns the log sorted by date, newest first. The sort is
// stable so same-day records keep their insertion order.
func RecentFirst(log ExpenseLog) []Expense {
	out := log.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}
