package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/core"
)

// handleCreateExpense appends one expense from the logging form.
func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	dateStr := FormField(r.PostForm, "date")
	categoryStr := FormField(r.PostForm, "category")
	amountStr := FormField(r.PostForm, "amount")
	description := sanitizeInput(FormField(r.PostForm, "description"))

	if dateStr == "" || categoryStr == "" || amountStr == "" {
		BadRequestError("Date, category and amount are required").Write(w)
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		BadRequestError("Invalid date, expected YYYY-MM-DD").Write(w)
		return
	}

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		UnprocessableEntityError("Amount must be a positive number").Write(w)
		return
	}

	category := core.Category(categoryStr)
	if !s.budgets.Contains(category) {
		UnprocessableEntityError(fmt.Sprintf("Unknown category: %s", categoryStr)).Write(w)
		return
	}

	expense := core.NewExpense(date, category, core.Money{Cents: cents}, description)
	if err := expense.Validate(); err != nil {
		if errors.Is(err, core.ErrInvalidDay) || errors.Is(err, core.ErrInvalidMonth) {
			BadRequestError("Invalid date").Write(w)
			return
		}
		UnprocessableEntityError(err.Error()).Write(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 7*time.Second)
	defer cancel()

	ref, err := s.expWriter.Append(ctx, expense)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to append expense", "error", err, "category", categoryStr)
		InternalServerError("Could not save the expense").Write(w)
		return
	}

	month := core.Month{Year: date.Year(), Month: date.Month()}
	s.invalidateDerived(month)

	slog.InfoContext(r.Context(), "Expense logged",
		"ref", ref,
		"category", categoryStr,
		"amount_cents", cents,
		"date", dateStr)

	NewHTMXResponse().
		Status(http.StatusCreated).
		TriggerExpenseCreated(month.Year, month.Month).
		BodyHTML(fmt.Sprintf(`<div class="notice notice-ok">Logged %s %s on %s</div>`,
			formatAmount(s.settings.Currency(), cents), categoryStr, dateStr)).
		Write(w)
}
