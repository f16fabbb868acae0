// Package store defines the ports the dashboard uses to read and write the
// expense log, plus the default in-memory implementation.
package store

import (
	"context"

	"fintrack/internal/core"
)

type (
	// ExpenseWriter appends one expense and returns an opaque reference.
	ExpenseWriter interface {
		Append(ctx context.Context, e core.Expense) (ref string, err error)
	}

	// ExpenseLister returns a point-in-time copy of the whole expense log.
	// Evaluators and summaries operate on the returned value.
	ExpenseLister interface {
		Snapshot(ctx context.Context) (core.ExpenseLog, error)
	}
)
