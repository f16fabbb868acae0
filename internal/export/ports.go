// Package export defines the port for mirroring expenses to an external
// destination, consumed by the export worker.
package export

import (
	"context"

	"fintrack/internal/core"
)

// ExpenseAppender appends one expense row to the export destination.
type ExpenseAppender interface {
	AppendExpense(ctx context.Context, e core.Expense) error
}
