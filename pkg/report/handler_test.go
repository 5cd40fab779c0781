package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Antonellome/riso-server/internal/storage"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) *Handler {
	service := NewService(NewStubRepo(), storage.NewStubStore(), nil)
	return NewHandler(service)
}

func createTestReport(t *testing.T, handler *Handler, r Report) Report {
	body, err := json.Marshal(r)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/report", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Create(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func TestHandler_Create(t *testing.T) {
	handler := setupHandlerTest(t)

	created := createTestReport(t, handler, Report{
		Date:         "2025-01-15",
		ShiftType:    ShiftOrdinary,
		StartTime:    "07:30",
		EndTime:      "16:30",
		PauseMinutes: 60,
		Ship:         "MSC Aurora",
	})

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2025-01-15", created.Date)
}

func TestHandler_Create_InvalidBody(t *testing.T) {
	handler := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/report", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Search_ByShip(t *testing.T) {
	handler := setupHandlerTest(t)
	createTestReport(t, handler, Report{Date: "2025-01-15", Ship: "MSC Aurora"})
	createTestReport(t, handler, Report{Date: "2025-01-16", Ship: "Costa Brava"})

	req := httptest.NewRequest(http.MethodGet, "/api/report?ship=MSC+Aurora", nil)
	w := httptest.NewRecorder()
	handler.Search(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var reports []Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "MSC Aurora", reports[0].Ship)
}

func TestHandler_Get_UnknownId(t *testing.T) {
	handler := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"reportId": "missing"})
	w := httptest.NewRecorder()
	handler.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Update(t *testing.T) {
	handler := setupHandlerTest(t)
	created := createTestReport(t, handler, Report{Date: "2025-01-15", Ship: "MSC Aurora"})

	created.Ship = "Costa Brava"
	body, err := json.Marshal(created)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/report/"+created.ID, bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"reportId": created.ID})
	w := httptest.NewRecorder()
	handler.Update(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var updated Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Costa Brava", updated.Ship)
}

func TestHandler_Delete(t *testing.T) {
	handler := setupHandlerTest(t)
	created := createTestReport(t, handler, Report{Date: "2025-01-15"})

	req := httptest.NewRequest(http.MethodDelete, "/api/report/"+created.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"reportId": created.ID})
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/report/"+created.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"reportId": created.ID})
	w = httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
