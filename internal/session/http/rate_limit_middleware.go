package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	apperrors "github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTimeout     = time.Hour
)

// limiterStore holds one token bucket per key and drops buckets idle for an hour.
type limiterStore[K comparable] struct {
	limiters sync.Map // map[K]*limiterEntry
	rps      float64
	burst    int
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

func newLimiterStore[K comparable](ctx context.Context, rps float64, burst int) *limiterStore[K] {
	store := &limiterStore[K]{rps: rps, burst: burst}
	go store.cleanupStale(ctx, limiterCleanupInterval, limiterIdleTimeout)
	return store
}

func (s *limiterStore[K]) getLimiter(key K) *rate.Limiter {
	now := time.Now()
	value, loaded := s.limiters.LoadOrStore(key, &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	})
	entry := value.(*limiterEntry)
	if loaded {
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
	}
	return entry.limiter
}

// cleanupStale runs until ctx is done.
func (s *limiterStore[K]) cleanupStale(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(time.Now().Add(-idle))
		}
	}
}

func (s *limiterStore[K]) sweep(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		stale := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if stale {
			s.limiters.Delete(key)
		}
		return true
	})
}

// rejectRateLimited writes 429 with a Retry-After header.
func rejectRateLimited(c *gin.Context, limiter *rate.Limiter, message string) int {
	reservation := limiter.Reserve()
	retryAfter := int(reservation.Delay().Seconds())
	reservation.Cancel()

	c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":   "rate_limit_exceeded",
		"message": message,
	})
	c.Abort()
	return retryAfter
}

// RateLimitMiddleware enforces a per-session token bucket on authenticated requests.
// It must run after AuthenticationMiddleware. The cleanup goroutine stops with ctx.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore[uuid.UUID](ctx, rps, burst)

	return func(c *gin.Context) {
		session, ok := GetSession(c.Request.Context())
		if !ok {
			logger.Error("rate limit middleware: no authenticated session in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		limiter := store.getLimiter(session.ID)
		if !limiter.Allow() {
			retryAfter := rejectRateLimited(c, limiter, "Too many requests. Please retry after the specified delay.")
			logger.Debug("rate limit exceeded",
				slog.String("session_id", session.ID.String()),
				slog.Int("retry_after", retryAfter))
			return
		}

		c.Next()
	}
}

// LoginRateLimitMiddleware enforces a per client IP token bucket on the login endpoint.
func LoginRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore[string](ctx, rps, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		limiter := store.getLimiter(clientIP)
		if !limiter.Allow() {
			retryAfter := rejectRateLimited(c, limiter,
				"Too many login attempts from this IP. Please retry after the specified delay.")
			logger.Debug("login rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))
			return
		}

		c.Next()
	}
}
