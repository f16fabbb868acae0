// Package storage provides the optional SQLite-backed expense store.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements store.ExpenseWriter
func (r *SQLiteRepository) Append(ctx context.Context, e core.Expense) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (spent_on, category, amount_cents, description) VALUES (?, ?, ?, ?)`,
		e.Date.Format("2006-01-02"), string(e.Category), e.Amount.Cents, e.Description)
	if err != nil {
		return "", fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("expense id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", id,
		"category", e.Category,
		"amount_cents", e.Amount.Cents,
		"spent_on", e.Date.Format("2006-01-02"))

	return strconv.FormatInt(id, 10), nil
}

// Snapshot implements store.ExpenseLister
func (r *SQLiteRepository) Snapshot(ctx context.Context) (core.ExpenseLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT spent_on, category, amount_cents, description FROM expenses ORDER BY id`)
	if err != nil {
		return core.ExpenseLog{}, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	var log core.ExpenseLog
	for rows.Next() {
		var (
			spentOn     string
			category    string
			amountCents int64
			description string
		)
		if err := rows.Scan(&spentOn, &category, &amountCents, &description); err != nil {
			return core.ExpenseLog{}, fmt.Errorf("scan expense: %w", err)
		}
		d, err := time.Parse("2006-01-02", spentOn)
		if err != nil {
			return core.ExpenseLog{}, fmt.Errorf("parse stored date %q: %w", spentOn, err)
		}
		log.Append(core.Expense{
			Date:        core.Date{Time: d},
			Category:    core.Category(category),
			Amount:      core.Money{Cents: amountCents},
			Description: description,
		})
	}
	if err := rows.Err(); err != nil {
		return core.ExpenseLog{}, fmt.Errorf("iterate expenses: %w", err)
	}
	return log, nil
}
