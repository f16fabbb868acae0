package core

// SalaryBracket is a fixed monthly income range with a target savings rate.
// The last bracket of a table is open-ended (Open true, Max ignored).
type SalaryBracket struct {
	Label         string
	Min           Money
	Max           Money
	Open          bool
	SavingsTarget float64 // fraction of income, 0-1
}

// BracketTable is the ordered set of salary brackets. Static configuration,
// loaded at startup and never mutated.
type BracketTable []SalaryBracket

// ByLabel looks up a bracket by its label.
func (t BracketTable) ByLabel(label string) (SalaryBracket, error) {
	for _, b := range t {
		if b.Label == label {
			return b, nil
		}
	}
	return SalaryBracket{}, ErrUnknownBracket
}

// Labels returns the bracket labels in table order.
func (t BracketTable) Labels() []string {
	out := make([]string, len(t))
	for i, b := range t {
		out[i] = b.Label
	}
	return out
}

// DefaultBrackets returns the compiled-in salary bracket table.
func DefaultBrackets() BracketTable {
	return BracketTable{
		{Label: "0-10000", Min: FromUnits(0), Max: FromUnits(10000), SavingsTarget: 0.10},
		{Label: "10000-20000", Min: FromUnits(10000), Max: FromUnits(20000), SavingsTarget: 0.15},
		{Label: "20000-30000", Min: FromUnits(20000), Max: FromUnits(30000), SavingsTarget: 0.20},
		{Label: "30000-40000", Min: FromUnits(30000), Max: FromUnits(40000), SavingsTarget: 0.25},
		{Label: "40000-50000", Min: FromUnits(40000), Max: FromUnits(50000), SavingsTarget: 0.30},
		{Label: "50000+", Min: FromUnits(50000), Open: true, SavingsTarget: 0.35},
	}
}

// CategoryBudget pairs a category with its monthly budget cap.
type CategoryBudget struct {
	Category Category
	Cap      Money
}

// BudgetTable is the ordered set of per-category monthly budget caps.
// Static configuration, never mutated.
type BudgetTable []CategoryBudget

// Categories returns the category labels in table order.
func (t BudgetTable) Categories() []Category {
	out := make([]Category, len(t))
	for i, cb := range t {
		out[i] = cb.Category
	}
	return out
}

// Contains reports whether c is a configured category.
func (t BudgetTable) Contains(c Category) bool {
	for _, cb := range t {
		if cb.Category == c {
			return true
		}
	}
	return false
}

// TotalBudget is the sum of all budget caps. Constant for a given table.
func (t BudgetTable) TotalBudget() Money {
	var total Money
	for _, cb := range t {
		total = total.Add(cb.Cap)
	}
	return total
}

// DefaultBudgets returns the compiled-in category budget table.
func DefaultBudgets() BudgetTable {
	return BudgetTable{
		{Category: "Groceries", Cap: FromUnits(5000)},
		{Category: "Utilities", Cap: FromUnits(3000)},
		{Category: "Rent/Mortgage", Cap: FromUnits(15000)},
		{Category: "Transportation", Cap: FromUnits(2000)},
		{Category: "Dining Out", Cap: FromUnits(3000)},
		{Category: "Entertainment", Cap: FromUnits(2000)},
		{Category: "Shopping", Cap: FromUnits(4000)},
		{Category: "Health", Cap: FromUnits(5000)},
		{Category: "Other", Cap: FromUnits(3000)},
	}
}
