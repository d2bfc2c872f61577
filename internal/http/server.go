package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/allisson/redactor/internal/metrics"
)

// DetectorState reports the cached availability of the detection service for
// the readiness endpoint.
type DetectorState interface {
	Online() bool
}

// ServerConfig holds the settings for the local API server.
type ServerConfig struct {
	Host             string
	Port             int
	CORSEnabled      bool
	CORSAllowOrigins string
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
	MeterProvider    otelmetric.MeterProvider
	MetricsNamespace string
}

// Server represents the local HTTP API server consumed by the host
// application.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates the API server with the shared middleware stack and the
// health endpoints. Feature handlers register their routes on Router before
// Start is called.
func NewServer(cfg ServerConfig, detectorState DetectorState, logger *slog.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(RequestIDContextMiddleware())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	}

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	router.GET("/health", healthHandler)
	router.GET("/ready", readinessHandler(detectorState))

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router: router,
		logger: logger,
	}
}

// Router returns the underlying Gin engine for route registration.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process itself is up.
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the sidecar can serve redaction requests.
// The server keeps answering while the detection service is down; the
// detector state is data for the caller, not a reason to kill the process.
func readinessHandler(detectorState DetectorState) gin.HandlerFunc {
	return func(c *gin.Context) {
		detectorOnline := detectorState != nil && detectorState.Online()
		c.JSON(http.StatusOK, gin.H{
			"status":          "ready",
			"detector_online": detectorOnline,
		})
	}
}
