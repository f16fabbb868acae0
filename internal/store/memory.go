package store

import (
	"context"
	"fmt"
	"sync"

	"fintrack/internal/core"
)

// Memory is the default expense store: an in-process append-only log that is
// discarded when the process exits. The HTTP server serves requests
// concurrently, so access is mutex-guarded even though the domain model is
// single-writer.
type Memory struct {
	mu  sync.Mutex
	log core.ExpenseLog
}

func NewMemory() *Memory {
	return &Memory{}
}

// Append stores the expense and returns a synthetic row reference.
func (m *Memory) Append(_ context.Context, e core.Expense) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log.Append(e)
	return fmt.Sprintf("mem:%d", m.log.Len()), nil
}

// Snapshot returns a copy of the log.
func (m *Memory) Snapshot(_ context.Context) (core.ExpenseLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return core.NewExpenseLog(m.log.All()...), nil
}
