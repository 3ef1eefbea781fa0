// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/sealbox/internal/config"
	envelopeService "github.com/allisson/sealbox/internal/envelope/service"
	"github.com/allisson/sealbox/internal/metrics"
	recordsHTTP "github.com/allisson/sealbox/internal/records/http"
)

// Timeouts shared by the API and metrics listeners.
const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

func newHTTPServer(host string, port int) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}

// Server represents the HTTP server
type Server struct {
	server      *http.Server
	router      *gin.Engine
	logger      *slog.Logger
	keyProvider envelopeService.MasterKeyProvider

	mu         sync.Mutex
	stopRouter context.CancelFunc
}

// NewServer creates a new HTTP server. keyProvider backs the readiness check.
func NewServer(
	keyProvider envelopeService.MasterKeyProvider,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		logger:      logger,
		keyProvider: keyProvider,
		server:      newHTTPServer(host, port),
	}
}

// SetupRouter builds the Gin engine with middleware and all routes.
//
// Routes:
//   - GET  /health
//   - GET  /ready
//   - POST /v1/tx/encrypt
//   - GET  /v1/tx/:id
//   - POST /v1/tx/:id/decrypt
//
// The /v1/tx routes are also mounted under /tx.
//
// metricsProvider may be nil, in which case no HTTP metrics are recorded.
func (s *Server) SetupRouter(
	cfg *config.Config,
	recordHandler *recordsHTTP.RecordHandler,
	metricsProvider *metrics.Provider,
) {
	// Background tasks owned by the router stop on Shutdown
	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	if s.stopRouter != nil {
		s.stopRouter()
	}
	s.stopRouter = cancel
	s.mu.Unlock()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// One limiter backs both groups so a client cannot double its budget by
	// switching prefixes.
	var rateLimit gin.HandlerFunc
	if cfg.RateLimitEnabled {
		rateLimit = RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger)
	}

	registerRecordRoutes(router.Group("/v1/tx"), recordHandler, rateLimit)
	// Unversioned alias used by the browser form.
	registerRecordRoutes(router.Group("/tx"), recordHandler, rateLimit)

	s.router = router
}

func registerRecordRoutes(group *gin.RouterGroup, recordHandler *recordsHTTP.RecordHandler, rateLimit gin.HandlerFunc) {
	if rateLimit != nil {
		group.Use(rateLimit)
	}
	group.POST("/encrypt", recordHandler.EncryptHandler)
	group.GET("/:id", recordHandler.GetHandler)
	group.POST("/:id/decrypt", recordHandler.DecryptHandler)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the master key resolves. Without it every
// encrypt and decrypt call fails, so the instance is not ready.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"master_key": "ok"}

	if s.keyProvider == nil {
		components["master_key"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	masterKey, err := s.keyProvider.MasterKey()
	if err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		components["master_key"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	masterKey.Zero()

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")

	s.mu.Lock()
	if s.stopRouter != nil {
		s.stopRouter()
		s.stopRouter = nil
	}
	s.mu.Unlock()

	return s.server.Shutdown(ctx)
}
