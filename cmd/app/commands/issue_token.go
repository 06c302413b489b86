package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	authService "github.com/allisson/legacyvault/internal/auth/service"
)

// RunIssueToken issues a bearer token for userID, valid for ttl. Intended for
// operators and local testing of the key API.
func RunIssueToken(
	tokenService authService.TokenService,
	logger *slog.Logger,
	writer io.Writer,
	userID string,
	ttl time.Duration,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required")
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got: %s", ttl)
	}

	token, err := tokenService.Issue(userID, ttl)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("token issued", slog.String("user_id", userID), slog.Duration("ttl", ttl))

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"token":      token,
			"user_id":    userID,
			"expires_in": int64(ttl.Seconds()),
		})
	}

	_, err = fmt.Fprintln(writer, token)
	return err
}
