// Package http provides the HTTP server, its router and the shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/legacyvault/internal/auth/http"
	authService "github.com/allisson/legacyvault/internal/auth/service"
	"github.com/allisson/legacyvault/internal/config"
	keysHTTP "github.com/allisson/legacyvault/internal/keys/http"
	"github.com/allisson/legacyvault/internal/metrics"
)

// Server represents the HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter registers the middleware chain and every route. ctx bounds the
// background work started by the rate limiter. metricsProvider may be nil.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	keyHandler *keysHTTP.KeyHandler,
	tokenService authService.TokenService,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))
	router.Use(AuditRequestIDMiddleware())

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	keys := router.Group("/keys")
	keys.Use(authHTTP.AuthenticationMiddleware(tokenService, s.logger))
	if cfg.RateLimitEnabled {
		keys.Use(authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		keys.POST("/generate", keyHandler.GenerateHandler)
		keys.GET("", keyHandler.GetPublicKeyHandler)
		keys.POST("", keyHandler.RetrieveHandler)
		keys.POST("/rotate", keyHandler.RotateHandler)
		keys.GET("/audit-logs", keyHandler.ListAuditLogsHandler)
	}

	s.router = router
}

// GetHandler returns the router, mostly for tests.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

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

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready only when the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		s.notReady(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		s.notReady(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}

func (s *Server) notReady(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":     "not_ready",
		"components": gin.H{"database": "error"},
	})
}
