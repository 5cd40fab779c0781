package aggregation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Antonellome/riso-server/internal/rest"
	"github.com/Antonellome/riso-server/pkg/rates"
	"github.com/Antonellome/riso-server/pkg/report"
	"github.com/gorilla/mux"
)

// RatesProvider supplies the current rate table; in the application this is
// the settings service.
type RatesProvider interface {
	CurrentRates(ctx context.Context) (rates.Table, error)
}

type Handler struct {
	reportService report.Service
	ratesProvider RatesProvider
	csvRenderer   MonthlyRenderer
}

func NewHandler(reportService report.Service, ratesProvider RatesProvider, csvRenderer MonthlyRenderer) *Handler {
	return &Handler{reportService, ratesProvider, csvRenderer}
}

// GetDaily returns the aggregation of one day's reports, including the
// per-report technician breakdowns.
func (handler *Handler) GetDaily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeBadRequest(w, "Invalid date format", "date must be YYYY-MM-DD")
		return
	}

	reports, err := handler.reportService.Search(r.Context(), report.SearchQuery{DateFrom: date, DateTo: date})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	table, err := handler.ratesProvider.CurrentRates(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	daily := AggregateDay(date, reports, table)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(daily); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetMonthly returns the aggregation of one month's reports, as JSON or as
// CSV when the client asks for text/csv.
func (handler *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if _, err := time.Parse("2006-01", month); err != nil {
		writeBadRequest(w, "Invalid month format", "month must be YYYY-MM")
		return
	}

	reports, err := handler.reportService.Search(r.Context(), report.SearchQuery{Month: month})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	table, err := handler.ratesProvider.CurrentRates(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	monthly := AggregateMonth(month, reports, table)

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := handler.csvRenderer.Render(monthly)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(monthly); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetReportHours returns the technician hour breakdown of a single report.
func (handler *Handler) GetReportHours(w http.ResponseWriter, r *http.Request) {
	reportId := mux.Vars(r)["reportId"]

	stored, err := handler.reportService.Get(r.Context(), reportId)
	if err != nil {
		if errors.Is(err, report.ErrReportNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(Breakdown(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeBadRequest(w http.ResponseWriter, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
