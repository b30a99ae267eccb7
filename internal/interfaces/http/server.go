// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/config"
	"github.com/hfashion/storefront/internal/interfaces/http/middleware"
	"github.com/hfashion/storefront/internal/interfaces/http/routes"
	"github.com/hfashion/storefront/internal/pkg/auth"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// APIPrefix is the path prefix of the REST surface
	APIPrefix = "/api"

	maxRequestBody = 1 << 20
	healthTimeout  = 3 * time.Second
)

// HealthCheck reports whether a backing dependency is reachable
type HealthCheck func(ctx context.Context) error

// Options carries the collaborators the server is built from
type Options struct {
	Handlers routes.Handlers
	Sessions *auth.SessionManager
	// Redis enables the shared rate limiter; nil falls back to a local one
	Redis  *redis.Client
	Checks map[string]HealthCheck
	Log    logrus.FieldLogger
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	opts       Options
	log        logrus.FieldLogger
	startedAt  time.Time
	buildOnce  sync.Once
	gin        *gin.Engine
	httpServer *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, opts Options) *Server {
	return &Server{
		config:    cfg,
		opts:      opts,
		log:       opts.Log,
		startedAt: time.Now(),
	}
}

// Handler returns the configured gin engine
func (s *Server) Handler() http.Handler {
	s.buildOnce.Do(func() {
		if s.config.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		s.gin = gin.New()
		if err := s.gin.SetTrustedProxies(s.config.Security.TrustedProxies); err != nil {
			s.log.WithError(err).Warn("Ignoring invalid trusted proxies")
		}

		s.setupMiddleware()
		s.setupRoutes()
	})
	return s.gin
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.log.WithFields(logrus.Fields{
		"port":     s.config.Server.Port,
		"api_base": APIPrefix,
		"storage":  s.config.Storage.Driver,
	}).Info("HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.log.Info("Shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.log.Info("HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.log))
	s.gin.Use(middleware.CORS(s.config.Security))
	s.gin.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		HSTS:       s.config.IsProduction(),
		ServerName: s.config.App.Name,
	}))
	s.gin.Use(middleware.RateLimit(s.config.Security, s.opts.Redis, s.log))
	s.gin.Use(middleware.RequestSizeLimit(maxRequestBody))
	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	api := s.gin.Group(APIPrefix)
	api.Use(middleware.Session(s.opts.Sessions, middleware.SessionOptions{
		CookieName: s.config.Session.CookieName,
		Secure:     s.config.IsProduction(),
	}, s.log))

	h := s.opts.Handlers
	if s.config.IsProduction() {
		h.Analytics = nil
	}
	routes.SetupRoutes(api, h)

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name,
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"products": APIPrefix + "/products",
					"cart":     APIPrefix + "/cart",
					"orders":   APIPrefix + "/orders",
					"wishlist": APIPrefix + "/wishlist",
					"user":     APIPrefix + "/user",
				},
			})
		})
	}
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	for name, check := range s.opts.Checks {
		if err := check(ctx); err != nil {
			s.log.WithError(err).WithField("dependency", name).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  name + " ping failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
		"storage":     s.config.Storage.Driver,
	})
}

// readinessCheck handles readiness check requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startedAt).Round(time.Second).String(),
	})
}
