package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/sealbox/internal/metrics"
)

// MetricsServer exposes the Prometheus scrape endpoint on its own port so the
// record API never shares a listener with the scraper.
//
// Routes:
//   - GET /metrics
//   - GET /health
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates a MetricsServer. A nil metricsProvider answers
// /metrics with 503 instead of an empty exposition.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(scrapeLoggerMiddleware(logger))

	router.GET("/metrics", metricsHandler(metricsProvider))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	server := newHTTPServer(host, port)
	server.Handler = router

	return &MetricsServer{
		server: server,
		logger: logger,
	}
}

func metricsHandler(metricsProvider *metrics.Provider) gin.HandlerFunc {
	if metricsProvider == nil {
		return func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "metrics_disabled",
				"message": "metrics provider is not configured",
			})
		}
	}
	return gin.WrapH(metricsProvider.Handler())
}

// scrapeLoggerMiddleware logs successful scrapes at debug level. A scraper
// polls every few seconds, so only failures reach the default info output.
func scrapeLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelDebug
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.Request.Context(), level, "metrics request",
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Addr returns the listen address.
func (s *MetricsServer) Addr() string {
	return s.server.Addr
}

// Start serves until Shutdown is called.
func (s *MetricsServer) Start(ctx context.Context) error {
	s.logger.Info("starting metrics server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
