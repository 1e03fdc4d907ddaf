package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-tools/advising-admin/internal/catalog"
	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/internal/service"
	"github.com/campus-tools/advising-admin/internal/tableview"
	appErrors "github.com/campus-tools/advising-admin/pkg/errors"
)

type viewStoreStub struct {
	mu        sync.Mutex
	states    map[string][]byte
	snapshots map[string][]byte
	seqs      map[string]int64
}

func newViewStoreStub() *viewStoreStub {
	return &viewStoreStub{
		states:    make(map[string][]byte),
		snapshots: make(map[string][]byte),
		seqs:      make(map[string]int64),
	}
}

func (s *viewStoreStub) SaveState(_ context.Context, viewID string, state *tableview.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.states[viewID] = raw
	return nil
}

func (s *viewStoreStub) LoadState(_ context.Context, viewID string) (*tableview.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.states[viewID]
	if !ok {
		return nil, appErrors.ErrViewNotFound
	}
	var state tableview.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *viewStoreStub) SaveSnapshot(_ context.Context, viewID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[viewID] = data
	return nil
}

func (s *viewStoreStub) LoadSnapshot(_ context.Context, viewID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.snapshots[viewID]
	if !ok {
		return nil, appErrors.ErrViewNotFound
	}
	return raw, nil
}

func (s *viewStoreStub) BeginRefresh(_ context.Context, viewID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[viewID]++
	return s.seqs[viewID], nil
}

func (s *viewStoreStub) LatestRefresh(_ context.Context, viewID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seqs[viewID], nil
}

func (s *viewStoreStub) Delete(_ context.Context, viewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, viewID)
	delete(s.snapshots, viewID)
	delete(s.seqs, viewID)
	return nil
}

type auditStub struct{}

func (auditStub) CreateAuditLog(context.Context, *models.AuditLog) error { return nil }

func testStudents() []models.Student {
	return []models.Student{
		{ID: "s1", StudentNumber: "2023-001", FirstName: "Maria", LastName: "Santos", YearLevel: models.YearFirst},
		{ID: "s2", StudentNumber: "2023-002", FirstName: "Jose", LastName: "Rizal", YearLevel: models.YearSecond},
		{ID: "s3", StudentNumber: "2023-003", FirstName: "Ana", LastName: "Abad", YearLevel: models.YearFirst},
	}
}

func newStudentViewRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ent := catalog.Students()
	fetch := func(context.Context) ([]models.Student, error) { return testStudents(), nil }
	views := tableview.NewService[models.Student](ent.Name, ent.Table, ent.Columns, fetch, newViewStoreStub(), zap.NewNop())
	h := NewViewHandler[models.Student](ent, views, service.NewMetricsService(), true)

	router := gin.New()
	h.Routes(router.Group("/api/v1"), auditStub{})
	return router
}

func openView(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/views/students", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data tableview.Page[models.Student] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.ViewID)
	return envelope.Data.ViewID
}

func TestViewHandlerOpenAndRows(t *testing.T) {
	router := newStudentViewRouter(t)
	viewID := openView(t, router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/views/students/"+viewID+"/rows?search=santos", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data tableview.Page[models.Student] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Rows, 1)
	assert.Equal(t, "s1", envelope.Data.Rows[0].ID)
	assert.Equal(t, 1, envelope.Data.Pagination.TotalCount)
}

func TestViewHandlerRowsDimensionFilter(t *testing.T) {
	router := newStudentViewRouter(t)
	viewID := openView(t, router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/views/students/"+viewID+"/rows?yearLevel=FIRST", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data tableview.Page[models.Student] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Rows, 2)
	// Default sort is last name ascending.
	assert.Equal(t, "Abad", envelope.Data.Rows[0].LastName)
	assert.Equal(t, "Santos", envelope.Data.Rows[1].LastName)
}

func TestViewHandlerRowsRejectsBadOrder(t *testing.T) {
	router := newStudentViewRouter(t)
	viewID := openView(t, router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/views/students/"+viewID+"/rows?order=sideways", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewHandlerSelectionToggleAndExport(t *testing.T) {
	router := newStudentViewRouter(t)
	viewID := openView(t, router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/views/students/"+viewID+"/selection",
		strings.NewReader(`{"op":"toggle","id":"s2"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/views/students/"+viewID+"/export?scope=selected", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "students_")
	assert.Contains(t, w.Body.String(), "Rizal")
	assert.NotContains(t, w.Body.String(), "Santos")
}

func TestViewHandlerSelectionRejectsUnknownOp(t *testing.T) {
	router := newStudentViewRouter(t)
	viewID := openView(t, router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/views/students/"+viewID+"/selection",
		strings.NewReader(`{"op":"invert"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewHandlerExportRejectsUnknownFormat(t *testing.T) {
	router := newStudentViewRouter(t)
	viewID := openView(t, router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/views/students/"+viewID+"/export?format=xlsx", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewHandlerUnknownView(t *testing.T) {
	router := newStudentViewRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/views/students/nope/rows", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
