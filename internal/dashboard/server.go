// Package dashboard serves the persisted history tables as a local chart
// dashboard. It is a read-only consumer: every request re-reads the CSVs so
// a freshly merged month shows up without a restart.
package dashboard

import (
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/spendview-dev/spendview/internal/history"
	"github.com/spendview-dev/spendview/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server hosts the dashboard page and its chart data endpoints.
type Server struct {
	store  *history.Store
	logger *slog.Logger
	tmpl   *template.Template
	router chi.Router
}

// NewServer creates a dashboard Server over a history store.
func NewServer(store *history.Store, logger *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{store: store, logger: logger, tmpl: tmpl}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/api/spending", s.handleSpending)
	r.Get("/api/income-expenses", s.handleIncomeExpenses)
	r.Get("/healthz", s.handleHealth)
	s.router = r

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "dashboard.html", nil); err != nil {
		s.logger.Error("dashboard template failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// spendingResponse feeds the multi-series category trend chart.
type spendingResponse struct {
	Months []string             `json:"months"`
	Series map[string][]float64 `json:"series"`
}

func (s *Server) handleSpending(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.LoadSpend()
	if err != nil {
		s.logger.Error("loading spending history", "error", err)
		http.Error(w, "loading spending history", http.StatusInternalServerError)
		return
	}

	resp := spendingResponse{Series: make(map[string][]float64)}
	for _, row := range rows {
		resp.Months = append(resp.Months, row.Month)
	}
	for _, c := range model.ExpenseCategories() {
		series := make([]float64, 0, len(rows))
		for _, row := range rows {
			series = append(series, row.Total(c).InexactFloat64())
		}
		resp.Series[string(c)] = series
	}

	s.writeJSON(w, resp)
}

// incomeExpenseResponse feeds the grouped bars and the net-income trend.
type incomeExpenseResponse struct {
	Months   []string  `json:"months"`
	Income   []float64 `json:"income"`
	Expenses []float64 `json:"expenses"`
	Net      []float64 `json:"net"`
}

func (s *Server) handleIncomeExpenses(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.LoadIncomeExpense()
	if err != nil {
		s.logger.Error("loading income/expense history", "error", err)
		http.Error(w, "loading income/expense history", http.StatusInternalServerError)
		return
	}

	var resp incomeExpenseResponse
	for _, row := range rows {
		resp.Months = append(resp.Months, row.Month)
		resp.Income = append(resp.Income, row.TotalIncome.InexactFloat64())
		resp.Expenses = append(resp.Expenses, row.TotalExpenses.InexactFloat64())
		resp.Net = append(resp.Net, row.NetIncome.InexactFloat64())
	}

	s.writeJSON(w, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}
