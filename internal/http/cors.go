package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// createCORSMiddleware returns nil when CORS is disabled or no origin survives parsing.
// Credentials are never allowed: callers authenticate with a bearer token, not cookies.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOrigins)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no origins configured, CORS will not be applied")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        12 * time.Hour,
	})
}

// parseOrigins splits a comma-separated list, dropping blanks.
func parseOrigins(allowOrigins string) []string {
	var origins []string
	for part := range strings.SplitSeq(allowOrigins, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
