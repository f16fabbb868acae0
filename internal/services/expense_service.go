package services

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/store"
)

// EventPublisher publishes expense events for downstream consumers.
type EventPublisher interface {
	PublishExpenseCreated(ctx context.Context, msg *amqp.ExpenseCreatedMessage) error
}

// ExpenseService appends expenses to the configured store and, when an event
// publisher is wired, emits an expense.created event per append.
type ExpenseService struct {
	writer    store.ExpenseWriter
	publisher EventPublisher
	closers   []func() error
}

func NewExpenseService(writer store.ExpenseWriter, publisher EventPublisher) *ExpenseService {
	return &ExpenseService{
		writer:    writer,
		publisher: publisher,
	}
}

// AddCloser registers a resource to be released by Close.
func (s *ExpenseService) AddCloser(close func() error) {
	s.closers = append(s.closers, close)
}

// CreateExpense saves an expense and publishes an event for it.
// Publish failures are logged, not returned: the record is already stored.
func (s *ExpenseService) CreateExpense(ctx context.Context, e core.Expense) (string, error) {
	ref, err := s.writer.Append(ctx, e)
	if err != nil {
		return "", fmt.Errorf("save expense: %w", err)
	}

	if s.publisher == nil {
		return ref, nil
	}

	msg := amqp.NewExpenseCreatedMessage(ref, e)
	if err := s.publisher.PublishExpenseCreated(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish expense event",
			"ref", ref, "error", err)
	}

	return ref, nil
}

// Close releases all registered resources.
func (s *ExpenseService) Close() error {
	var errs []error
	for _, close := range s.closers {
		if err := close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close expense service: %v", errs)
	}
	return nil
}
