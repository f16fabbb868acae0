package core

import (
	"errors"
	"strings"
	"testing"
)

func TestRecommendExactTargets(t *testing.T) {
	table := DefaultBrackets()
	for _, b := range table {
		rec, err := Recommend(b.Label, Money{}, table)
		if err != nil {
			t.Fatalf("%s: %v", b.Label, err)
		}
		want := b.Min.MulRate(b.SavingsTarget)
		if rec.Recommended != want {
			t.Fatalf("%s: recommended=%d, want %d", b.Label, rec.Recommended.Cents, want.Cents)
		}
	}
}

func TestRecommendMidBracketWithOverspendWarning(t *testing.T) {
	// Bracket 20000-30000 (min 20000, target 0.20) with 18000 spent:
	// recommended 4000, actual 2000, and the warning fires since
	// 18000 > 0.8 * 20000 = 16000.
	rec, err := Recommend("20000-30000", FromUnits(18000), DefaultBrackets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Recommended != FromUnits(4000) {
		t.Fatalf("recommended=%v, want 4000", rec.Recommended.Units())
	}
	if rec.Actual != FromUnits(2000) {
		t.Fatalf("actual=%v, want 2000", rec.Actual.Units())
	}
	if len(rec.Tips) != 4 {
		t.Fatalf("expected 4 tips (warning + mid tier), got %d: %v", len(rec.Tips), rec.Tips)
	}
	if !strings.Contains(rec.Tips[0], "save at least 20%") {
		t.Fatalf("first tip should be the overspend warning, got %q", rec.Tips[0])
	}
	for i, want := range midTips {
		if rec.Tips[i+1] != want {
			t.Fatalf("tip %d = %q, want %q", i+1, rec.Tips[i+1], want)
		}
	}
}

func TestRecommendActualClampsToZero(t *testing.T) {
	table := DefaultBrackets()
	cases := []Money{
		FromUnits(20000), // spent == bracket min
		FromUnits(25000), // spent above bracket min
	}
	for _, spent := range cases {
		rec, err := Recommend("20000-30000", spent, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Actual.Cents != 0 {
			t.Fatalf("spent=%v: actual=%d, want 0", spent.Units(), rec.Actual.Cents)
		}
	}
}

func TestRecommendTipTiers(t *testing.T) {
	table := DefaultBrackets()
	cases := []struct {
		label string
		tips  []string
	}{
		{"0-10000", lowTips},
		{"10000-20000", lowTips},
		{"20000-30000", midTips},
		{"30000-40000", midTips},
		{"40000-50000", highTips},
		{"50000+", highTips},
	}
	for _, tc := range cases {
		rec, err := Recommend(tc.label, Money{}, table)
		if err != nil {
			t.Fatalf("%s: %v", tc.label, err)
		}
		if len(rec.Tips) != len(tc.tips) {
			t.Fatalf("%s: expected %d tips without overspend, got %d", tc.label, len(tc.tips), len(rec.Tips))
		}
		for i, want := range tc.tips {
			if rec.Tips[i] != want {
				t.Fatalf("%s tip %d = %q, want %q", tc.label, i, rec.Tips[i], want)
			}
		}
	}
}

func TestRecommendUnknownBracket(t *testing.T) {
	_, err := Recommend("60000+", Money{}, DefaultBrackets())
	if !errors.Is(err, ErrUnknownBracket) {
		t.Fatalf("expected ErrUnknownBracket, got %v", err)
	}
}

func TestRecommendZeroMinBracketWarnsOnAnySpending(t *testing.T) {
	// The lowest bracket has min 0, so the overspend threshold is 0 and
	// any positive spending trips it; zero spending must not.
	rec, err := Recommend("0-10000", Money{}, DefaultBrackets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Tips) != len(lowTips) {
		t.Fatalf("expected only tier tips, got %v", rec.Tips)
	}

	rec, err = Recommend("0-10000", Money{Cents: 1}, DefaultBrackets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Tips) != len(lowTips)+1 {
		t.Fatalf("expected warning plus tier tips, got %v", rec.Tips)
	}
}
