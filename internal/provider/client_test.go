package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/pkg/config"
	appErrors "github.com/campus-tools/advising-admin/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler, breaker bool) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.UpstreamConfig{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
		BreakerEnabled: breaker,
		BreakerTrips:   2,
		BreakerCooloff: time.Minute,
	}
	return NewClient(cfg, StaticTokenSource("svc-token"), zap.NewNop(), nil), srv
}

func TestResourceListSendsBearerAndDecodes(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/students", r.URL.Path)
		assert.Equal(t, "c1", r.URL.Query().Get("coachId"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"s1","first_name":"Ana","last_name":"Reyes"}]}`))
	})

	client, _ := newTestClient(t, handler, false)
	res := NewResource[models.Student](client, "/students")

	students, err := res.List(context.Background(), url.Values{"coachId": {"c1"}})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Ana Reyes", students[0].FullName())
	assert.Equal(t, "Bearer svc-token", gotAuth)
}

func TestResourceCreateRoundTrip(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"c9","code":"BSCS-2026"}}`))
	})

	client, _ := newTestClient(t, handler, false)
	res := NewResource[models.Curriculum](client, "/curricula")

	created, err := res.Create(context.Background(), map[string]string{"code": "BSCS-2026"})
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID)
}

func TestClientMapsNotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"no such student"}}`))
	})

	client, _ := newTestClient(t, handler, false)
	res := NewResource[models.Student](client, "/students")

	_, err := res.Get(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "no such student", appErr.Message)
}

func TestClientMapsServerErrorToUnavailable(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	client, _ := newTestClient(t, handler, false)
	res := NewResource[models.Student](client, "/students")

	_, err := res.List(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstreamUnavailable.Code, appErrors.FromError(err).Code)
}

func TestClientBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client, srv := newTestClient(t, handler, true)
	res := NewResource[models.Student](client, "/students")

	for i := 0; i < 2; i++ {
		_, err := res.List(context.Background(), nil)
		require.Error(t, err)
	}

	// Breaker is now open; the request must fail without reaching upstream.
	srv.Close()
	_, err := res.List(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstreamUnavailable.Code, appErrors.FromError(err).Code)
}

func TestUploadCSVSendsMultipart(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/enrollments/import", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "term-1", r.FormValue("term_id"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "enrollments.csv", header.Filename)
		w.WriteHeader(http.StatusNoContent)
	})

	client, _ := newTestClient(t, handler, false)
	res := NewResource[models.Enrollment](client, "/enrollments")

	err := res.UploadCSV(context.Background(), "enrollments.csv",
		strings.NewReader("student,course\ns1,CS101\n"), map[string]string{"term_id": "term-1"})
	require.NoError(t, err)
}
