package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
)

// handleUpdateSettings changes the selected salary bracket and, optionally,
// the exact salary within it. Selecting a bracket resets the salary to the
// bracket floor, so the bracket field is applied before the salary field.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	bracket := FormField(r.PostForm, "bracket")
	salaryStr := FormField(r.PostForm, "salary")

	if bracket != "" {
		if err := s.settings.SelectBracket(bracket); err != nil {
			UnprocessableEntityError("Unknown salary bracket").Write(w)
			return
		}
	}

	if salaryStr != "" {
		cents, err := core.ParseNonNegativeDecimalToCents(salaryStr)
		if err != nil {
			UnprocessableEntityError("Salary must be a non-negative number").Write(w)
			return
		}
		if err := s.settings.SetSalary(core.Money{Cents: cents}); err != nil {
			if errors.Is(err, core.ErrSalaryOutOfRange) {
				UnprocessableEntityError("Salary is outside the selected bracket").Write(w)
				return
			}
			UnprocessableEntityError(err.Error()).Write(w)
			return
		}
	}

	slog.InfoContext(r.Context(), "Settings updated",
		"bracket", s.settings.Bracket().Label,
		"salary_cents", s.settings.Salary().Cents)

	NewHTMXResponse().
		Status(http.StatusOK).
		TriggerSettingsChanged().
		BodyHTML(`<div class="notice notice-ok">Settings updated</div>`).
		Write(w)
}
