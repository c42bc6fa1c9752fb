package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/storage"
	"github.com/fatima3985/InternLinkt/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp, &storage.FakeStore{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/students/signup",
		http.MethodPost + " /api/students/login",
		http.MethodPost + " /api/students/apply",
		http.MethodGet + " /api/students/:id",
		http.MethodPut + " /api/students/:id",
		http.MethodGet + " /api/students/:id/applications",
		http.MethodPost + " /api/companies/signup",
		http.MethodPost + " /api/companies/login",
		http.MethodGet + " /api/companies/:id",
		http.MethodPut + " /api/companies/:id",
		http.MethodPost + " /api/companies/:id/internships",
		http.MethodGet + " /api/companies/:id/internships",
		http.MethodGet + " /api/companies/internship/:id/applications",
		http.MethodPut + " /api/companies/application/:id/status",
		http.MethodPost + " /api/internships",
		http.MethodGet + " /api/internships",
		http.MethodGet + " /api/internships/:id",
		http.MethodPut + " /api/internships/:id",
		http.MethodDelete + " /api/internships/:id",
		http.MethodPost + " /api/internships/:id/apply",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

// 靜態路徑優先於 :id
func TestStaticSegmentsWinOverParams(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp, &storage.FakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/students/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	// 空 body 會被驗證擋下，不會被當成 id
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Email and password required.")
}
