package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/config"
	"github.com/hfashion/storefront/internal/pkg/auth"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newSessionRouter() (*gin.Engine, *auth.SessionManager) {
	log, _ := test.NewNullLogger()
	manager := auth.NewSessionManager(config.SessionConfig{
		Secret: "0123456789abcdef0123456789abcdef",
		TTL:    time.Hour,
	}, "HFashion")

	r := gin.New()
	r.Use(Session(manager, SessionOptions{CookieName: "hf_session"}, log))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetSessionID(c))
	})
	return r, manager
}

func TestSessionIssuesNewSession(t *testing.T) {
	r, manager := newSessionRouter()

	w := serve(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, w.Code)

	token := w.Header().Get(SessionHeader)
	require.NotEmpty(t, token)
	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, claims.SessionID, w.Body.String())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "hf_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionResumesFromCookieHeaderOrBearer(t *testing.T) {
	r, manager := newSessionRouter()
	token, err := manager.Issue("sess-42")
	require.NoError(t, err)

	fromCookie := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	fromCookie.AddCookie(&http.Cookie{Name: "hf_session", Value: token})

	fromHeader := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	fromHeader.Header.Set(SessionHeader, token)

	fromBearer := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	fromBearer.Header.Set("Authorization", "Bearer "+token)

	for _, req := range []*http.Request{fromCookie, fromHeader, fromBearer} {
		w := serve(r, req)
		assert.Equal(t, "sess-42", w.Body.String())
		assert.Empty(t, w.Header().Get(SessionHeader))
	}
}

func TestSessionReplacesInvalidToken(t *testing.T) {
	r, _ := newSessionRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(SessionHeader, "garbage")
	w := serve(r, req)

	assert.NotEmpty(t, w.Header().Get(SessionHeader))
	assert.NotEmpty(t, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRequestSizeLimit(t *testing.T) {
	r := gin.New()
	r.Use(RequestSizeLimit(8))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.SecurityConfig{
		CORSAllowedOrigins: []string{"http://localhost:3000", "*.hfashion.com"},
		CORSAllowedMethods: []string{"GET", "POST"},
		CORSAllowedHeaders: []string{"Content-Type"},
	}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"http://localhost:3000", true},
		{"https://shop.hfashion.com", true},
		{"https://evilhfashion.com", false},
		{"https://example.com", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", tt.origin)
		w := serve(r, req)
		if tt.allowed {
			assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"), tt.origin)
		} else {
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), tt.origin)
		}
	}

	preflight := httptest.NewRequest(http.MethodOptions, "/", nil)
	assert.Equal(t, http.StatusNoContent, serve(r, preflight).Code)
}

func TestSecurityHeaders(t *testing.T) {
	newRouter := func(opts SecurityOptions) *gin.Engine {
		r := gin.New()
		r.Use(SecurityHeaders(opts))
		r.GET("/cart", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	w := serve(newRouter(SecurityOptions{ServerName: "HFashion"}), httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "HFashion", w.Header().Get("Server"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	w = serve(newRouter(SecurityOptions{HSTS: true}), httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Contains(t, w.Header().Get("Strict-Transport-Security"), "max-age=")
}

func TestTimeoutSetsDeadline(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(time.Second))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestLocalRateLimit(t *testing.T) {
	log, _ := test.NewNullLogger()
	r := gin.New()
	r.Use(RateLimit(config.SecurityConfig{RateLimitPerMinute: 60, RateLimitBurst: 2}, nil, log))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// other clients have their own bucket
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.9:1234"
	assert.Equal(t, http.StatusOK, serve(r, other).Code)
}

func TestLocalRateLimitEvictsIdleClients(t *testing.T) {
	now := time.Date(2026, time.March, 2, 15, 0, 0, 0, time.UTC)
	clients := newVisitors(rate.Every(time.Second), 1, visitorIdle)
	clients.lastSweep = now
	clients.now = func() time.Time { return now }

	r := gin.New()
	r.Use(localRateLimitWith(config.SecurityConfig{RateLimitPerMinute: 60}, clients))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	from := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		return serve(r, req).Code
	}

	for _, addr := range []string{"10.0.0.1:1000", "10.0.0.2:1000", "10.0.0.3:1000"} {
		assert.Equal(t, http.StatusOK, from(addr))
	}
	assert.Equal(t, 3, clients.len())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, from("10.0.0.1:1000"))
	assert.Equal(t, 3, clients.len())

	// only the client seen within the idle period survives the sweep
	now = now.Add(visitorIdle - time.Minute)
	assert.Equal(t, http.StatusOK, from("10.0.0.4:1000"))
	assert.Equal(t, 2, clients.len())
}

func TestRedisRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	log, _ := test.NewNullLogger()

	r := gin.New()
	r.Use(RateLimit(config.SecurityConfig{RateLimitPerMinute: 3}, client, log))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	ttl := mr.TTL("rate_limit:192.0.2.1")
	assert.Greater(t, ttl, time.Duration(0))

	// window expiry resets the count
	mr.FastForward(time.Minute)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestRedisRateLimitFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()
	log, hook := test.NewNullLogger()

	r := gin.New()
	r.Use(RateLimit(config.SecurityConfig{RateLimitPerMinute: 1}, client, log))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	assert.NotEmpty(t, hook.AllEntries())
}
