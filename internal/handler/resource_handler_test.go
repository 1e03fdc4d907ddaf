package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-tools/advising-admin/internal/catalog"
	"github.com/campus-tools/advising-admin/internal/dto"
	"github.com/campus-tools/advising-admin/internal/middleware"
	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/internal/provider"
	"github.com/campus-tools/advising-admin/pkg/config"
)

func newStudentResourceRouter(t *testing.T, upstream http.Handler) (*gin.Engine, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := provider.NewClient(config.UpstreamConfig{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, provider.StaticTokenSource("svc"), zap.NewNop(), nil)

	ent := catalog.Students()
	resource := provider.NewResource[models.Student](client, ent.Path)
	h := NewResourceHandler[models.Student, dto.CreateStudentRequest, dto.UpdateStudentRequest](ent, resource, validator.New())

	router := gin.New()
	// Inject an admin operator so role middleware passes.
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "op1", Role: models.RoleAdmin})
	})
	h.Routes(router.Group("/api/v1"), auditStub{})
	return router, srv
}

func TestResourceHandlerListPassthrough(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/students", r.URL.Path)
		assert.Equal(t, "FIRST", r.URL.Query().Get("yearLevel"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"s1","first_name":"Ana","last_name":"Reyes"}]}`))
	})

	router, _ := newStudentResourceRouter(t, upstream)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/students?yearLevel=FIRST", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ana")
}

func TestResourceHandlerCreateValidatesBeforeUpstream(t *testing.T) {
	called := false
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	router, _ := newStudentResourceRouter(t, upstream)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/students",
		strings.NewReader(`{"first_name":"Ana"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called, "invalid payloads never reach the upstream")
}

func TestResourceHandlerCreateForwardsValidPayload(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"s9","student_number":"2026-100"}}`))
	})

	router, _ := newStudentResourceRouter(t, upstream)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(
		`{"student_number":"2026-100","first_name":"Ana","last_name":"Reyes","email":"ana@campus.edu","year_level":"FIRST","curriculum_id":"c1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "s9")
}

func TestResourceHandlerImportForwardsMultipart(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/students/import", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "c1", r.FormValue("curriculum_id"))
		w.WriteHeader(http.StatusNoContent)
	})

	router, _ := newStudentResourceRouter(t, upstream)

	body := &strings.Builder{}
	boundary := "testboundary"
	body.WriteString("--" + boundary + "\r\n")
	body.WriteString("Content-Disposition: form-data; name=\"file\"; filename=\"students.csv\"\r\n")
	body.WriteString("Content-Type: text/csv\r\n\r\n")
	body.WriteString("number,first,last\n2026-1,Ana,Reyes\n\r\n")
	body.WriteString("--" + boundary + "\r\n")
	body.WriteString("Content-Disposition: form-data; name=\"curriculum_id\"\r\n\r\nc1\r\n")
	body.WriteString("--" + boundary + "--\r\n")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/students/import", strings.NewReader(body.String()))
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "students.csv")
}

func TestResourceHandlerViewerCannotMutate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("viewer request must not reach upstream")
	}))
	t.Cleanup(srv.Close)

	client := provider.NewClient(config.UpstreamConfig{BaseURL: srv.URL, RequestTimeout: time.Second},
		provider.StaticTokenSource("svc"), zap.NewNop(), nil)
	ent := catalog.Students()
	h := NewResourceHandler[models.Student, dto.CreateStudentRequest, dto.UpdateStudentRequest](
		ent, provider.NewResource[models.Student](client, ent.Path), validator.New())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "op2", Role: models.RoleViewer})
	})
	h.Routes(router.Group("/api/v1"), auditStub{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/students/s1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
