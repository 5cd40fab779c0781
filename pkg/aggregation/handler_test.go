package aggregation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Antonellome/riso-server/internal/storage"
	"github.com/Antonellome/riso-server/pkg/rates"
	"github.com/Antonellome/riso-server/pkg/report"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRatesProvider struct {
	table rates.Table
}

func (p fixedRatesProvider) CurrentRates(ctx context.Context) (rates.Table, error) {
	return p.table, nil
}

func setupHandlerTest(t *testing.T) (*Handler, report.Service) {
	reportService := report.NewService(report.NewStubRepo(), storage.NewStubStore(), nil)
	provider := fixedRatesProvider{table: rates.NewTable([]rates.Entry{
		{Type: report.ShiftOrdinary, Rate: 18.50},
	})}
	return NewHandler(reportService, provider, NewCsvMonthlyRenderer()), reportService
}

func addHandlerTestReport(t *testing.T, service report.Service, date string) report.Report {
	created, err := service.Create(context.Background(), report.Report{
		Date:         date,
		ShiftType:    report.ShiftOrdinary,
		StartTime:    "07:30",
		EndTime:      "16:30",
		PauseMinutes: 60,
		Technicians: []report.Technician{
			{Name: "Luca", StartTime: "08:00", EndTime: "12:00"},
		},
	})
	require.NoError(t, err)
	return created
}

func TestGetDaily_InvalidDate(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/aggregation/daily?date=15-01-2025", nil)
	w := httptest.NewRecorder()
	handler.GetDaily(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDaily(t *testing.T) {
	handler, reportService := setupHandlerTest(t)
	addHandlerTestReport(t, reportService, "2025-01-15")
	addHandlerTestReport(t, reportService, "2025-01-16")

	req := httptest.NewRequest(http.MethodGet, "/api/aggregation/daily?date=2025-01-15", nil)
	w := httptest.NewRecorder()
	handler.GetDaily(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var daily DailyAggregation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &daily))
	assert.Equal(t, "daily", daily.Kind)
	assert.Equal(t, "2025-01-15", daily.Date)
	assert.Equal(t, 1, daily.Result.ReportCount)
	assert.InDelta(t, 8.0, daily.Result.TotalHours, 0.001)
	require.Len(t, daily.Breakdown, 1)
}

func TestGetMonthly_InvalidMonth(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/aggregation/monthly?month=2025", nil)
	w := httptest.NewRecorder()
	handler.GetMonthly(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMonthly(t *testing.T) {
	handler, reportService := setupHandlerTest(t)
	addHandlerTestReport(t, reportService, "2025-01-15")
	addHandlerTestReport(t, reportService, "2025-02-01")

	req := httptest.NewRequest(http.MethodGet, "/api/aggregation/monthly?month=2025-01", nil)
	w := httptest.NewRecorder()
	handler.GetMonthly(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var monthly MonthlyAggregation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &monthly))
	assert.Equal(t, "monthly", monthly.Kind)
	assert.Equal(t, "2025-01", monthly.Month)
	assert.Equal(t, 1, monthly.Result.ReportCount)
	assert.InDelta(t, 8.0*18.50, monthly.Result.TotalEarnings, 0.001)
}

func TestGetMonthly_Csv(t *testing.T) {
	handler, reportService := setupHandlerTest(t)
	addHandlerTestReport(t, reportService, "2025-01-15")

	req := httptest.NewRequest(http.MethodGet, "/api/aggregation/monthly?month=2025-01", nil)
	req.Header.Set("Accept", "text/csv")
	w := httptest.NewRecorder()
	handler.GetMonthly(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Date,Shift,Start,End,Pause,Ship,Location,Hours"))
	assert.Contains(t, w.Body.String(), "2025-01-15")
}

func TestGetReportHours(t *testing.T) {
	handler, reportService := setupHandlerTest(t)
	created := addHandlerTestReport(t, reportService, "2025-01-15")

	req := httptest.NewRequest(http.MethodGet, "/api/report/"+created.ID+"/hours", nil)
	req = mux.SetURLVars(req, map[string]string{"reportId": created.ID})
	w := httptest.NewRecorder()
	handler.GetReportHours(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var breakdown ReportBreakdown
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &breakdown))
	assert.InDelta(t, 8.0, breakdown.PrimaryHours, 0.001)
	require.Len(t, breakdown.Technicians, 1)
	// Co-worker hours use the report's pause: 4h block minus 60 minutes.
	assert.InDelta(t, 3.0, breakdown.Technicians[0].Hours, 0.001)
	assert.InDelta(t, 11.0, breakdown.TotalHours, 0.001)
}

func TestGetReportHours_UnknownId(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report/missing/hours", nil)
	req = mux.SetURLVars(req, map[string]string{"reportId": "missing"})
	w := httptest.NewRecorder()
	handler.GetReportHours(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
