package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/config"
	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"github.com/hfashion/storefront/internal/interfaces/http/handlers"
	"github.com/hfashion/storefront/internal/interfaces/http/middleware"
	"github.com/hfashion/storefront/internal/interfaces/http/routes"
	"github.com/hfashion/storefront/internal/pkg/auth"
	"github.com/hfashion/storefront/internal/pkg/tracking"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(env string) *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "HFashion Storefront", Version: "test", Environment: env},
		Server:  config.ServerConfig{Port: "0", RequestTimeout: time.Second},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		Session: config.SessionConfig{
			Secret:     "0123456789abcdef0123456789abcdef",
			CookieName: "hf_session",
			TTL:        time.Hour,
		},
		Security: config.SecurityConfig{
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, checks map[string]HealthCheck) *Server {
	t.Helper()
	log, _ := test.NewNullLogger()
	rec := tracking.NewRecorder(0)
	catalog := product.NewService(product.Seed())
	carts := cart.NewService(storage.NewMemory(), catalog, rec, log)

	return NewServer(cfg, Options{
		Handlers: routes.Handlers{
			Product:   handlers.NewProductHandler(catalog, rec),
			Category:  handlers.NewCategoryHandler(catalog),
			Cart:      handlers.NewCartHandler(carts),
			Analytics: handlers.NewAnalyticsHandler(rec),
		},
		Sessions: auth.NewSessionManager(cfg.Session, cfg.App.Name),
		Checks:   checks,
		Log:      log,
	})
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, testConfig("development"), map[string]HealthCheck{
		"redis": func(context.Context) error { return nil },
	})

	w := get(s, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"storage":"memory"`)

	w = get(s, "/ready")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ready"`)
}

func TestHealthCheckReportsFailingDependency(t *testing.T) {
	s := newTestServer(t, testConfig("development"), map[string]HealthCheck{
		"database": func(context.Context) error { return errors.New("connection refused") },
	})

	w := get(s, "/health")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","error":"database ping failed"}`, w.Body.String())
}

func TestAPIRequestsGetASession(t *testing.T) {
	s := newTestServer(t, testConfig("development"), nil)

	w := get(s, APIPrefix+"/cart")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.SessionHeader))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.JSONEq(t, `{"items":[],"total":0}`, w.Body.String())

	// health endpoints do not open sessions
	w = get(s, "/health")
	assert.Empty(t, w.Header().Get(middleware.SessionHeader))
}

func TestTrackingEventsHiddenInProduction(t *testing.T) {
	s := newTestServer(t, testConfig("development"), nil)
	assert.Equal(t, http.StatusOK, get(s, APIPrefix+"/tracking/events").Code)
	assert.Equal(t, http.StatusOK, get(s, "/").Code)

	s = newTestServer(t, testConfig("production"), nil)
	assert.Equal(t, http.StatusNotFound, get(s, APIPrefix+"/tracking/events").Code)
	assert.Equal(t, http.StatusNotFound, get(s, "/").Code)
	gin.SetMode(gin.TestMode)
}

func TestStopWithoutStart(t *testing.T) {
	s := newTestServer(t, testConfig("development"), nil)
	assert.NoError(t, s.Stop(context.Background()))
}
