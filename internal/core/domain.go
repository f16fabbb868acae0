package core

import (
	"errors"
	"strings"
	"time"
)

// DefaultDescription is substituted when an expense is logged without one.
const DefaultDescription = "-"

type (
	// Category labels an expense for budgeting purposes. The set of valid
	// categories is closed: it is exactly the keys of the budget table.
	Category string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Month identifies a calendar month. Evaluators take it as an explicit
	// parameter instead of reading the wall clock.
	Month struct {
		Year  int
		Month int // 1-12
	}

	// Expense is a single logged expense. Immutable once created.
	Expense struct {
		Date        Date
		Category    Category
		Amount      Money
		Description string
	}
)

var (
	ErrInvalidDay       = errors.New("invalid day")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyCategory    = errors.New("empty category")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownBracket   = errors.New("unknown salary bracket")
	ErrSalaryOutOfRange = errors.New("salary outside selected bracket")
)

// NewDate creates a new Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	_, month, day := d.Date()
	if day < 1 || day > 31 {
		return ErrInvalidDay
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month (1-12)
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// In reports whether the date falls inside the given calendar month.
func (d Date) In(m Month) bool {
	return d.Year() == m.Year && d.Month() == m.Month
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: int(t.Month())}
}

func (m Month) Validate() error {
	if m.Month < 1 || m.Month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// NewExpense builds an expense, substituting the description placeholder
// when none is provided.
func NewExpense(date Date, category Category, amount Money, description string) Expense {
	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultDescription
	}
	return Expense{Date: date, Category: category, Amount: amount, Description: description}
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(string(e.Category)) == "" {
		return ErrEmptyCategory
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}

// ExpenseLog is an append-only, insertion-ordered collection of expenses.
// Records carry no identifier; duplicates are permitted. The log itself is
// a plain value, concurrency control belongs to whoever owns the instance.
type ExpenseLog struct {
	items []Expense
}

// NewExpenseLog builds a log pre-populated with the given expenses.
func NewExpenseLog(items ...Expense) ExpenseLog {
	l := ExpenseLog{items: make([]Expense, len(items))}
	copy(l.items, items)
	return l
}

// Append adds an expense to the end of the log.
func (l *ExpenseLog) Append(e Expense) {
	l.items = append(l.items, e)
}

// Len returns the number of logged expenses.
func (l *ExpenseLog) Len() int {
	return len(l.items)
}

// All returns a copy of every logged expense in insertion order.
func (l *ExpenseLog) All() []Expense {
	out := make([]Expense, len(l.items))
	copy(out, l.items)
	return out
}

// ForMonth returns the expenses whose date falls in the given month,
// in insertion order.
func (l *ExpenseLog) ForMonth(m Month) []Expense {
	var out []Expense
	for _, e := range l.items {
		if e.Date.In(m) {
			out = append(out, e)
		}
	}
	return out
}
