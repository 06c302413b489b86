package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditUseCase "github.com/allisson/legacyvault/internal/audit/usecase"
)

// CustomLoggerMiddleware logs one line per request. Only the path is logged, never
// the query string or the body.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// AuditRequestIDMiddleware hands the request id to the audit trail. It must run after
// the requestid middleware; ids that are not UUIDs are ignored.
func AuditRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if requestID, err := uuid.Parse(requestid.Get(c)); err == nil {
			c.Request = c.Request.WithContext(auditUseCase.WithRequestID(c.Request.Context(), requestID))
		}
		c.Next()
	}
}
