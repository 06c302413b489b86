package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/legacyvault/internal/auth/service"
	apperrors "github.com/allisson/legacyvault/internal/errors"
	"github.com/allisson/legacyvault/internal/httputil"
)

// AuthenticationMiddleware verifies the "Authorization: Bearer <jwt>" header and stores
// the caller in the request context for GetPrincipal. The scheme is matched
// case-insensitively. Every failure is answered with the same 401 body.
func AuthenticationMiddleware(tokenService authService.TokenService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		principal, err := tokenService.Verify(token)
		if err != nil {
			logger.Debug("authentication failed", slog.Any("error", err))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const bearerPrefix = "bearer "
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
