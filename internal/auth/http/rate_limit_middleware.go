package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/allisson/legacyvault/internal/errors"
	"github.com/allisson/legacyvault/internal/httputil"
)

// rateLimiterStore holds per-user limiters.
type rateLimiterStore struct {
	limiters sync.Map // map[string]*rateLimiterEntry
	rps      float64
	burst    int
}

type rateLimiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

// RateLimitMiddleware enforces a token bucket per authenticated user. It must run
// after AuthenticationMiddleware. Password endpoints are the main target: the limit
// caps online guessing against a user's private key.
//
// Stale limiters are swept every five minutes until ctx is cancelled.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &rateLimiterStore{
		rps:   rps,
		burst: burst,
	}

	go store.cleanupStale(ctx, 5*time.Minute, time.Hour)

	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok {
			logger.Error("rate limit middleware: no authenticated user in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		limiter := store.getLimiter(principal.UserID)
		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds()) + 1
			reservation.Cancel()

			logger.Debug("rate limit exceeded",
				slog.String("user_id", principal.UserID),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, httputil.ErrorResponse{
				Error:   "rate_limit_exceeded",
				Message: "Too many requests. Please retry after the specified delay.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (s *rateLimiterStore) getLimiter(userID string) *rate.Limiter {
	now := time.Now()
	val, _ := s.limiters.LoadOrStore(userID, &rateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	})

	entry := val.(*rateLimiterEntry)
	entry.mu.Lock()
	entry.lastAccess = now
	entry.mu.Unlock()
	return entry.limiter
}

// cleanupStale drops limiters idle for longer than maxIdle.
func (s *rateLimiterStore) cleanupStale(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(time.Now().Add(-maxIdle))
		}
	}
}

func (s *rateLimiterStore) sweep(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*rateLimiterEntry)
		entry.mu.Lock()
		stale := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if stale {
			s.limiters.Delete(key)
		}
		return true
	})
}
