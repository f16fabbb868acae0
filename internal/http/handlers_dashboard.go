package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/core"
)

// monthFromQuery reads an optional ?year=&month= override, defaulting to the
// current calendar month.
func monthFromQuery(r *http.Request) (core.Month, error) {
	m := core.MonthOf(time.Now())

	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return core.Month{}, fmt.Errorf("invalid year: %s", y)
		}
		m.Year = year
	}
	if mo := r.URL.Query().Get("month"); mo != "" {
		month, err := strconv.Atoi(mo)
		if err != nil {
			return core.Month{}, fmt.Errorf("invalid month: %s", mo)
		}
		m.Month = month
	}

	if err := m.Validate(); err != nil {
		return core.Month{}, err
	}
	return m, nil
}

type indexView struct {
	Currency   string
	Bracket    string
	Brackets   []string
	Salary     string
	Categories []core.Category
	Today      string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	view := indexView{
		Currency:   s.settings.Currency(),
		Bracket:    s.settings.Bracket().Label,
		Brackets:   s.brackets.Labels(),
		Salary:     strconv.FormatFloat(s.settings.Salary().Units(), 'f', 2, 64),
		Categories: s.budgets.Categories(),
		Today:      time.Now().Format("2006-01-02"),
	}
	s.render(w, r, "index.html", view)
}

type overviewView struct {
	Month       string
	Income      string
	Expenses    string
	Savings     string
	SavingsRate string
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	month, err := monthFromQuery(r)
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}

	snap, err := s.getBudgetSnapshot(r.Context(), month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load budget snapshot", "error", err)
		InternalServerError("Could not load overview").Write(w)
		return
	}

	metrics := core.Overview(s.settings.Salary(), snap.TotalSpent)
	symbol := s.settings.Currency()
	view := overviewView{
		Month:       fmt.Sprintf("%04d-%02d", month.Year, month.Month),
		Income:      formatAmount(symbol, metrics.Income.Cents),
		Expenses:    formatAmount(symbol, metrics.Expenses.Cents),
		Savings:     formatAmount(symbol, metrics.Savings.Cents),
		SavingsRate: formatPercent(metrics.SavingsRate),
	}
	s.render(w, r, "overview.html", view)
}

type budgetRowView struct {
	Category    core.Category
	Budget      string
	Spent       string
	Remaining   string
	PercentUsed string
	Over        bool
}

type budgetView struct {
	Month       string
	TotalBudget string
	TotalSpent  string
	Rows        []budgetRowView
}

func (s *Server) handleBudgetTable(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	month, err := monthFromQuery(r)
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}

	snap, err := s.getBudgetSnapshot(r.Context(), month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load budget snapshot", "error", err)
		InternalServerError("Could not load budget table").Write(w)
		return
	}

	symbol := s.settings.Currency()
	view := budgetView{
		Month:       fmt.Sprintf("%04d-%02d", month.Year, month.Month),
		TotalBudget: formatAmount(symbol, snap.TotalBudget.Cents),
		TotalSpent:  formatAmount(symbol, snap.TotalSpent.Cents),
		Rows:        make([]budgetRowView, 0, len(snap.PerCategory)),
	}
	for _, u := range snap.PerCategory {
		view.Rows = append(view.Rows, budgetRowView{
			Category:    u.Category,
			Budget:      formatAmount(symbol, u.Budget.Cents),
			Spent:       formatAmount(symbol, u.Spent.Cents),
			Remaining:   formatAmount(symbol, u.Remaining.Cents),
			PercentUsed: formatPercent(u.PercentUsed),
			Over:        u.Remaining.Cents < 0,
		})
	}
	s.render(w, r, "budget.html", view)
}

type savingsView struct {
	Bracket     string
	Recommended string
	Actual      string
	Tips        []string
}

func (s *Server) handleSavings(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	month, err := monthFromQuery(r)
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}

	snap, err := s.getBudgetSnapshot(r.Context(), month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load budget snapshot", "error", err)
		InternalServerError("Could not load savings advice").Write(w)
		return
	}

	label := s.settings.Bracket().Label
	rec, err := core.Recommend(label, snap.TotalSpent, s.brackets)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to compute recommendation", "error", err, "bracket", label)
		InternalServerError("Could not compute savings advice").Write(w)
		return
	}

	symbol := s.settings.Currency()
	view := savingsView{
		Bracket:     label,
		Recommended: formatAmount(symbol, rec.Recommended.Cents),
		Actual:      formatAmount(symbol, rec.Actual.Cents),
		Tips:        rec.Tips,
	}
	s.render(w, r, "savings.html", view)
}

type expenseRowView struct {
	Date        string
	Category    core.Category
	Amount      string
	Description string
}

type expenseListView struct {
	Count int
	Rows  []expenseRowView
}

// maxListedExpenses bounds the recent-expenses partial.
const maxListedExpenses = 50

func (s *Server) handleExpenseList(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	log, err := s.getLog(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load expense log", "error", err)
		InternalServerError("Could not load expenses").Write(w)
		return
	}

	recent := core.RecentFirst(log)
	if len(recent) > maxListedExpenses {
		recent = recent[:maxListedExpenses]
	}

	symbol := s.settings.Currency()
	view := expenseListView{
		Count: log.Len(),
		Rows:  make([]expenseRowView, 0, len(recent)),
	}
	for _, e := range recent {
		view.Rows = append(view.Rows, expenseRowView{
			Date:        e.Date.Format("2006-01-02"),
			Category:    e.Category,
			Amount:      formatAmount(symbol, e.Amount.Cents),
			Description: e.Description,
		})
	}
	s.render(w, r, "expenses.html", view)
}

// Chart payloads are label/value pairs for the frontend chart library.
type chartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	log, err := s.getLog(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load expense log", "error", err)
		InternalServerError("Could not load trend data").Write(w)
		return
	}

	data := chartData{Labels: []string{}, Values: []float64{}}
	for _, p := range core.MonthlyTrend(log) {
		data.Labels = append(data.Labels, fmt.Sprintf("%04d-%02d", p.Month.Year, p.Month.Month))
		data.Values = append(data.Values, p.Total.Units())
	}
	writeJSON(w, r, data)
}

func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	log, err := s.getLog(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load expense log", "error", err)
		InternalServerError("Could not load distribution data").Write(w)
		return
	}

	data := chartData{Labels: []string{}, Values: []float64{}}
	for _, ca := range core.CategoryDistribution(log) {
		data.Labels = append(data.Labels, string(ca.Category))
		data.Values = append(data.Values, ca.Amount.Units())
	}
	writeJSON(w, r, data)
}

func (s *Server) handleSavingsChart(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	month, err := monthFromQuery(r)
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}

	snap, err := s.getBudgetSnapshot(r.Context(), month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load budget snapshot", "error", err)
		InternalServerError("Could not load savings data").Write(w)
		return
	}

	label := s.settings.Bracket().Label
	rec, err := core.Recommend(label, snap.TotalSpent, s.brackets)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to compute recommendation", "error", err, "bracket", label)
		InternalServerError("Could not load savings data").Write(w)
		return
	}

	writeJSON(w, r, chartData{
		Labels: []string{"Recommended Savings", "Actual Savings"},
		Values: []float64{rec.Recommended.Units(), rec.Actual.Units()},
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode response", "error", err)
	}
}

// render executes a named template, falling back to a 500 when templates
// failed to parse at startup.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		InternalServerError("Templates unavailable").Write(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render template", "template", name, "error", err)
	}
}
