package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatima3985/InternLinkt/internal/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newEcho(m *Metrics) *echo.Echo {
	e := echo.New()
	e.Use(RequestLogger())
	if m != nil {
		e.Use(m.Middleware())
		e.GET("/metrics", m.Handler())
	}
	e.GET("/items/:id", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/missing", func(c echo.Context) error { return c.String(http.StatusNotFound, "no") })
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })
	return e
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	e := newEcho(m)

	require.Equal(t, http.StatusOK, serve(e, "/items/1").Code)
	require.Equal(t, http.StatusOK, serve(e, "/items/2").Code)
	require.Equal(t, http.StatusNotFound, serve(e, "/missing").Code)
	require.Equal(t, http.StatusInternalServerError, serve(e, "/boom").Code)

	rec := serve(e, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `internlinkt_http_requests_total{method="GET",path="/items/:id",status="200"} 2`)
	require.Contains(t, body, `internlinkt_http_requests_total{method="GET",path="/missing",status="404"} 1`)
	require.Contains(t, body, `internlinkt_http_requests_total{method="GET",path="/boom",status="500"} 1`)
	require.Contains(t, body, "internlinkt_http_request_duration_seconds_bucket")
	require.Contains(t, body, "internlinkt_http_requests_in_flight")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(logger.Config{Output: &buf})
	t.Cleanup(func() { logger.Configure(logger.Config{}) })

	e := newEcho(nil)
	serve(e, "/items/1")
	serve(e, "/missing")
	serve(e, "/boom")

	out := buf.String()
	require.Contains(t, out, `"level":"info"`)
	require.Contains(t, out, `"level":"warn"`)
	require.Contains(t, out, `"level":"error"`)
	require.Contains(t, out, `"uri":"/items/1"`)
	require.Contains(t, out, `"error":"boom"`)
}
