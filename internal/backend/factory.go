package backend

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/services"
	"fintrack/internal/storage"
	"fintrack/internal/store"
)

// Factory creates backends based on configuration
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(_ context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
		return f.assemble(config, repo, repo.Close)
	default:
		mem := store.NewMemory()
		f.logger.Info("Initialized memory backend")
		return f.assemble(config, mem, nil)
	}
}

// assemble wires the writer through the expense service, attaching the AMQP
// event publisher when one is configured.
func (f *DefaultFactory) assemble(config Config, s Backend, closeStore func() error) (*Result, error) {
	var publisher services.EventPublisher
	if config.AMQPURL != "" {
		client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
			publisher = client
		}
	}

	svc := services.NewExpenseService(s, publisher)
	if closeStore != nil {
		svc.AddCloser(closeStore)
	}
	if client, ok := publisher.(*amqp.Client); ok {
		svc.AddCloser(client.Close)
	}

	b := &serviceBackend{service: svc, lister: s}
	return &Result{Backend: b, Cleanup: svc.Close}, nil
}

// serviceBackend routes writes through the expense service while reads go
// straight to the store.
type serviceBackend struct {
	service *services.ExpenseService
	lister  store.ExpenseLister
}

func (b *serviceBackend) Append(ctx context.Context, e core.Expense) (string, error) {
	return b.service.CreateExpense(ctx, e)
}

func (b *serviceBackend) Snapshot(ctx context.Context) (core.ExpenseLog, error) {
	return b.lister.Snapshot(ctx)
}
