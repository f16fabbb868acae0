// Package worker processes expense events from the queue and mirrors them
// to the configured export destination.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/export"
)

// ExportWorker handles expense.created messages by appending the expense to
// the export destination.
type ExportWorker struct {
	appender export.ExpenseAppender
}

func NewExportWorker(appender export.ExpenseAppender) *ExportWorker {
	return &ExportWorker{appender: appender}
}

// HandleExpenseCreated processes a single expense event.
func (w *ExportWorker) HandleExpenseCreated(ctx context.Context, msg *amqp.ExpenseCreatedMessage) error {
	slog.InfoContext(ctx, "Processing expense event",
		"ref", msg.Ref,
		"category", msg.Category,
		"amount_cents", msg.AmountCents)

	e := msg.Expense()
	if err := e.Validate(); err != nil {
		// Malformed events can never succeed, so fail fast instead of
		// forcing a requeue loop.
		slog.WarnContext(ctx, "Dropping invalid expense event", "ref", msg.Ref, "error", err)
		return nil
	}

	if err := w.appender.AppendExpense(ctx, e); err != nil {
		return fmt.Errorf("append expense %s to export: %w", msg.Ref, err)
	}

	slog.InfoContext(ctx, "Expense mirrored to export", "ref", msg.Ref)
	return nil
}
