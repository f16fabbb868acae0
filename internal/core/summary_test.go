package core

import (
	"math"
	"testing"
)

func TestOverviewMetrics(t *testing.T) {
	cases := []struct {
		salary, spent Money
		savings       int64
		rate          float64
	}{
		{FromUnits(25000), FromUnits(18000), 700000, 28.0},
		{FromUnits(10000), FromUnits(12000), 0, 0},  // overspend clamps
		{Money{}, FromUnits(500), 0, 0},             // zero income, zero rate
		{FromUnits(10000), Money{}, 1000000, 100.0}, // nothing spent
	}
	for i, tc := range cases {
		m := Overview(tc.salary, tc.spent)
		if m.Savings.Cents != tc.savings {
			t.Fatalf("case %d: savings=%d, want %d", i, m.Savings.Cents, tc.savings)
		}
		if math.Abs(m.SavingsRate-tc.rate) > 1e-9 {
			t.Fatalf("case %d: rate=%f, want %f", i, m.SavingsRate, tc.rate)
		}
	}
}

func TestCategoryDistributionOrderAndTotals(t *testing.T) {
	log := NewExpenseLog(
		NewExpense(NewDate(2025, 6, 1), "Groceries", FromUnits(100), ""),
		NewExpense(NewDate(2025, 5, 1), "Health", FromUnits(50), ""),
		NewExpense(NewDate(2025, 6, 9), "Groceries", FromUnits(25), ""),
	)

	dist := CategoryDistribution(log)
	if len(dist) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(dist))
	}
	if dist[0].Category != "Groceries" || dist[0].Amount != FromUnits(125) {
		t.Fatalf("unexpected first entry: %+v", dist[0])
	}
	if dist[1].Category != "Health" || dist[1].Amount != FromUnits(50) {
		t.Fatalf("unexpected second entry: %+v", dist[1])
	}
}

func TestMonthlyTrendChronological(t *testing.T) {
	log := NewExpenseLog(
		NewExpense(NewDate(2025, 6, 2), "Groceries", FromUnits(10), ""),
		NewExpense(NewDate(2024, 12, 1), "Health", FromUnits(20), ""),
		NewExpense(NewDate(2025, 6, 20), "Other", FromUnits(30), ""),
		NewExpense(NewDate(2025, 1, 5), "Other", FromUnits(40), ""),
	)

	trend := MonthlyTrend(log)
	want := []TrendPoint{
		{Month{2024, 12}, FromUnits(20)},
		{Month{2025, 1}, FromUnits(40)},
		{Month{2025, 6}, FromUnits(40)},
	}
	if len(trend) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(trend))
	}
	for i := range want {
		if trend[i] != want[i] {
			t.Fatalf("point %d = %+v, want %+v", i, trend[i], want[i])
		}
	}
}

func TestRecentFirstStable(t *testing.T) {
	log := NewExpenseLog(
		NewExpense(NewDate(2025, 6, 1), "Groceries", FromUnits(1), "first"),
		NewExpense(NewDate(2025, 6, 3), "Health", FromUnits(2), "newest"),
		NewExpense(NewDate(2025, 6, 1), "Other", FromUnits(3), "second"),
	)

	got := RecentFirst(log)
	if got[0].Description != "newest" {
		t.Fatalf("expected newest first, got %q", got[0].Description)
	}
	// Same-day records keep insertion order.
	if got[1].Description != "first" || got[2].Description != "second" {
		t.Fatalf("same-day order not stable: %q, %q", got[1].Description, got[2].Description)
	}
	// Listing is a copy: appending afterwards must not alias.
	log.Append(NewExpense(NewDate(2025, 6, 4), "Other", FromUnits(4), ""))
	if len(got) != 3 {
		t.Fatalf("listing mutated by later append")
	}
}
