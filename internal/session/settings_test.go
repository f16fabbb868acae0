package session

import (
	"errors"
	"testing"

	"fintrack/internal/core"
)

func TestNewDefaultsToFirstBracket(t *testing.T) {
	s := New(core.DefaultBrackets(), "₹")
	if s.Bracket().Label != "0-10000" {
		t.Fatalf("expected first bracket selected, got %s", s.Bracket().Label)
	}
	if s.Salary() != s.Bracket().Min {
		t.Fatalf("expected salary at bracket floor, got %d", s.Salary().Cents)
	}
}

func TestSelectBracketResetsSalary(t *testing.T) {
	s := New(core.DefaultBrackets(), "₹")
	if err := s.SelectBracket("20000-30000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Salary() != core.FromUnits(20000) {
		t.Fatalf("expected salary reset to 20000, got %v", s.Salary().Units())
	}
	if err := s.SelectBracket("not-a-bracket"); !errors.Is(err, core.ErrUnknownBracket) {
		t.Fatalf("expected ErrUnknownBracket, got %v", err)
	}
}

func TestSetSalaryBounds(t *testing.T) {
	s := New(core.DefaultBrackets(), "₹")
	if err := s.SelectBracket("20000-30000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		salary core.Money
		ok     bool
	}{
		{core.FromUnits(20000), true},
		{core.FromUnits(25000), true},
		{core.FromUnits(30000), true},
		{core.FromUnits(19999), false},
		{core.FromUnits(30001), false},
	}
	for i, tc := range cases {
		err := s.SetSalary(tc.salary)
		if tc.ok && err != nil {
			t.Fatalf("case %d: unexpected error %v", i, err)
		}
		if !tc.ok && !errors.Is(err, core.ErrSalaryOutOfRange) {
			t.Fatalf("case %d: expected ErrSalaryOutOfRange, got %v", i, err)
		}
	}
}

func TestSetSalaryOpenBracket(t *testing.T) {
	s := New(core.DefaultBrackets(), "₹")
	if err := s.SelectBracket("50000+"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetSalary(core.FromUnits(750000)); err != nil {
		t.Fatalf("open bracket should allow large salaries: %v", err)
	}
	if err := s.SetSalary(OpenBracketCeiling.Add(core.Money{Cents: 1})); err == nil {
		t.Fatalf("expected ceiling to bound the open bracket")
	}
}
