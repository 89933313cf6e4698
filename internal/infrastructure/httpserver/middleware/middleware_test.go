package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/auth"
	"github.com/avatarctic/admin-dashboard/internal/infrastructure/httpserver/helpers"
	"github.com/avatarctic/admin-dashboard/internal/infrastructure/httpserver/middleware"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type authServiceMock struct {
	validateFn func(ctx context.Context, token string) (*auth.Claims, error)
}

func (m *authServiceMock) Login(ctx context.Context, req *auth.LoginRequest) (*auth.Session, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *authServiceMock) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, token)
	}
	return nil, fmt.Errorf("not configured")
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireJWT_SetsIdentity(t *testing.T) {
	svc := &authServiceMock{validateFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		require.Equal(t, "good-token", token)
		return &auth.Claims{Identity: auth.Identity{ID: 1, Username: "emilys"}}, nil
	}}
	m := middleware.NewJWTMiddleware(svc, quietLogger())

	handler := m.RequireJWT()(func(c echo.Context) error {
		identity, err := helpers.GetIdentity(c)
		require.NoError(t, err)
		require.Equal(t, "emilys", identity.Username)
		return c.NoContent(http.StatusOK)
	})

	c, rec := newContext("Bearer good-token")
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireJWT_MissingHeader(t *testing.T) {
	m := middleware.NewJWTMiddleware(&authServiceMock{}, quietLogger())
	handler := m.RequireJWT()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	c, _ := newContext("")
	err := handler(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireJWT_MalformedHeader(t *testing.T) {
	m := middleware.NewJWTMiddleware(&authServiceMock{}, quietLogger())
	handler := m.RequireJWT()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	c, _ := newContext("Basic dXNlcjpwYXNz")
	err := handler(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireJWT_InvalidToken(t *testing.T) {
	svc := &authServiceMock{validateFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		return nil, fmt.Errorf("token is expired")
	}}
	m := middleware.NewJWTMiddleware(svc, quietLogger())
	handler := m.RequireJWT()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	c, _ := newContext("Bearer stale-token")
	err := handler(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func routedContext(target, route string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(route)
	return c
}

func TestRequestLogging_EmitsOneCompletedLine(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	m := middleware.NewLoggingMiddleware(logger)
	handler := m.RequestLogging()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c := routedContext("/api/v1/users?q=john", "/api/v1/users")
	require.NoError(t, handler(c))

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	require.Equal(t, "request completed", entry.Message)
	require.Equal(t, http.MethodGet, entry.Data["method"])
	require.Equal(t, "/api/v1/users", entry.Data["path"])
	require.Equal(t, http.StatusOK, entry.Data["status"])
	require.Equal(t, "john", entry.Data["query"])
	require.Contains(t, entry.Data, "latency_ms")
}

func TestRequestLogging_SkipsProbeEndpoints(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	m := middleware.NewLoggingMiddleware(logger)
	handler := m.RequestLogging()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, route := range []string{"/health", "/metrics"} {
		c := routedContext(route, route)
		require.NoError(t, handler(c))
	}
	require.Empty(t, hook.Entries)
}

func newMetricsVecs() (*prometheus.CounterVec, *prometheus.HistogramVec) {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_http_requests_total"},
		[]string{"method", "endpoint", "status"},
	)
	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "test_http_request_duration_seconds"},
		[]string{"method", "endpoint"},
	)
	return counter, histogram
}

func TestCollectHTTPMetrics_CountsByRouteTemplate(t *testing.T) {
	counter, histogram := newMetricsVecs()
	m := middleware.NewMetricsMiddleware(counter, histogram)
	handler := m.CollectHTTPMetrics()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	// two different ids land on one series
	for _, target := range []string{"/api/v1/users/1", "/api/v1/users/2"} {
		c := routedContext(target, "/api/v1/users/:id")
		require.NoError(t, handler(c))
	}

	require.Equal(t, 2.0, testutil.ToFloat64(counter.WithLabelValues(http.MethodGet, "/api/v1/users/:id", "200")))
}

func TestCollectHTTPMetrics_UsesHTTPErrorStatus(t *testing.T) {
	counter, histogram := newMetricsVecs()
	m := middleware.NewMetricsMiddleware(counter, histogram)
	handler := m.CollectHTTPMetrics()(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	})

	c := routedContext("/api/v1/users/9999", "/api/v1/users/:id")
	require.Error(t, handler(c))

	require.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues(http.MethodGet, "/api/v1/users/:id", "404")))
}

func TestCollectHTTPMetrics_SkipsScrapeEndpoint(t *testing.T) {
	counter, histogram := newMetricsVecs()
	m := middleware.NewMetricsMiddleware(counter, histogram)
	handler := m.CollectHTTPMetrics()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	c := routedContext("/metrics", "/metrics")
	require.NoError(t, handler(c))

	require.Equal(t, 0, testutil.CollectAndCount(counter))
}
