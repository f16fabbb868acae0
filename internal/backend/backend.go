// Package backend selects and assembles the expense store for the server.
package backend

import (
	"fintrack/internal/store"
)

// Backend bundles the store ports the HTTP server depends on.
type Backend interface {
	store.ExpenseWriter
	store.ExpenseLister
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result contains the backend instance and optional cleanup function
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}

// Type represents the type of backend
type Type string

const (
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
)

// IsValid reports whether t names a supported backend.
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend:
		return true
	}
	return false
}

// Config holds configuration for backend creation
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// AMQP event stream (optional, empty URL disables publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}
