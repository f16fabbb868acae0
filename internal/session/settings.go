// Package session holds the interaction-scoped state the dashboard mutates:
// the selected salary bracket, the exact entered salary, and the currency
// symbol. It is explicit, passed-in state owned by the server, never a
// process-wide global.
package session

import (
	"sync"

	"fintrack/internal/core"
)

// OpenBracketCeiling caps the exact salary of the unbounded top bracket.
var OpenBracketCeiling = core.FromUnits(1000000)

// Settings is the mutable dashboard state. Safe for concurrent use.
type Settings struct {
	mu       sync.Mutex
	brackets core.BracketTable
	bracket  core.SalaryBracket
	salary   core.Money
	currency string
}

// New builds settings with the first bracket selected and the exact salary
// set to its floor.
func New(brackets core.BracketTable, currency string) *Settings {
	s := &Settings{brackets: brackets, currency: currency}
	if len(brackets) > 0 {
		s.bracket = brackets[0]
		s.salary = brackets[0].Min
	}
	return s
}

// SelectBracket switches the selected bracket and resets the exact salary to
// that bracket's floor.
func (s *Settings) SelectBracket(label string) error {
	b, err := s.brackets.ByLabel(label)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bracket = b
	s.salary = b.Min
	return nil
}

// SetSalary records the exact salary, which must fall inside the selected
// bracket's range. Open brackets are bounded above by OpenBracketCeiling.
func (s *Settings) SetSalary(salary core.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	max := s.bracket.Max
	if s.bracket.Open {
		max = OpenBracketCeiling
	}
	if salary.Cents < s.bracket.Min.Cents || salary.Cents > max.Cents {
		return core.ErrSalaryOutOfRange
	}
	s.salary = salary
	return nil
}

// Bracket returns the currently selected bracket.
func (s *Settings) Bracket() core.SalaryBracket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bracket
}

// Salary returns the exact entered salary.
func (s *Settings) Salary() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.salary
}

// Currency returns the configured currency symbol.
func (s *Settings) Currency() string {
	return s.currency
}
