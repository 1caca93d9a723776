package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"campus/config"
	"campus/internal/delivery/http/response"
)

// clientLimiter pairs a token bucket with its last access time so stale
// entries can be evicted.
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimitMiddleware throttles the auth endpoints per client IP. Signup
// and login hit the external identity provider, so the bucket sits in
// front of them rather than the whole router.
type RateLimitMiddleware struct {
	limit   rate.Limit
	burst   int
	cleanup time.Duration
	logger  *slog.Logger

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
}

// NewRateLimitMiddleware builds the limiter from config and starts the
// background eviction loop.
func NewRateLimitMiddleware(cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	rlCfg := cfg.RateLimit
	if rlCfg == nil {
		rlCfg = &config.RateLimitConfig{AuthPerMinute: 30, AuthBurst: 10}
	}

	cleanup := time.Duration(rlCfg.CleanupMinutes) * time.Minute
	if cleanup <= 0 {
		cleanup = 5 * time.Minute
	}

	burst := rlCfg.AuthBurst
	if burst < 1 {
		burst = 1
	}

	m := &RateLimitMiddleware{
		limit:    rate.Limit(float64(rlCfg.AuthPerMinute) / 60.0),
		burst:    burst,
		cleanup:  cleanup,
		logger:   logger,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}

	go m.cleanupLoop()

	return m
}

// Stop terminates the background eviction goroutine.
func (m *RateLimitMiddleware) Stop() {
	close(m.stopCh)
}

// Throttle rejects requests above the per-IP budget with 429 and a
// Retry-After hint.
func (m *RateLimitMiddleware) Throttle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		limiter := m.getOrCreate(c.RealIP())
		if !limiter.Allow() {
			m.logger.Warn("Rate limit exceeded",
				slog.String("remote_ip", c.RealIP()),
				slog.String("path", c.Request().URL.Path))

			retryAfter := int(math.Ceil(1.0 / float64(m.limit)))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

			return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests, please try again later")
		}

		return next(c)
	}
}

// LimiterCount reports how many client buckets are currently tracked.
func (m *RateLimitMiddleware) LimiterCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.limiters)
}

func (m *RateLimitMiddleware) getOrCreate(clientIP string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cl, ok := m.limiters[clientIP]; ok {
		cl.lastAccess = time.Now()

		return cl.limiter
	}

	limiter := rate.NewLimiter(m.limit, m.burst)
	m.limiters[clientIP] = &clientLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	return limiter
}

func (m *RateLimitMiddleware) cleanupLoop() {
	ticker := time.NewTicker(m.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictStale()
		case <-m.stopCh:
			return
		}
	}
}

// evictStale drops buckets idle for more than twice the cleanup interval.
func (m *RateLimitMiddleware) evictStale() {
	ttl := m.cleanup * 2
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for ip, cl := range m.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(m.limiters, ip)
		}
	}
}
