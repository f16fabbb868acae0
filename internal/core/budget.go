package core

// CategoryUsage is the per-category slice of a budget snapshot.
type CategoryUsage struct {
	Category  Category
	Budget    Money
	Spent     Money
	Remaining Money
	// PercentUsed is spent/budget as a percentage. Defined as 0 when the
	// budget cap is 0 so a zero cap never divides by zero.
	PercentUsed float64
}

// BudgetSnapshot is a point-in-time aggregation of one month's spending
// against the configured budget caps. Derived on demand, never persisted.
type BudgetSnapshot struct {
	Month       Month
	TotalBudget Money
	TotalSpent  Money
	PerCategory []CategoryUsage
}

// EvaluateBudget aggregates the expenses of the given calendar month against
// the budget table. Every configured category appears in the result, with
// spent 0 when the month has no matching records. TotalSpent covers every
// record of the month, including any whose category is absent from the table.
func EvaluateBudget(log ExpenseLog, budgets BudgetTable, asOf Month) BudgetSnapshot {
	monthly := log.ForMonth(asOf)

	snap := BudgetSnapshot{
		Month:       asOf,
		TotalBudget: budgets.TotalBudget(),
		PerCategory: make([]CategoryUsage, 0, len(budgets)),
	}

	spentBy := make(map[Category]Money, len(budgets))
	for _, e := range monthly {
		snap.TotalSpent = snap.TotalSpent.Add(e.Amount)
		spentBy[e.Category] = spentBy[e.Category].Add(e.Amount)
	}

	for _, cb := range budgets {
		spent := spentBy[cb.Category]
		usage := CategoryUsage{
			Category:  cb.Category,
			Budget:    cb.Cap,
			Spent:     spent,
			Remaining: cb.Cap.Sub(spent),
		}
		if cb.Cap.Cents > 0 {
			usage.PercentUsed = float64(spent.Cents) / float64(cb.Cap.Cents) * 100
		}
		snap.PerCategory = append(snap.PerCategory, usage)
	}

	return snap
}
