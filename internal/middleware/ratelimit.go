package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for the rate limit middleware.
type RateLimitConfig struct {
	// RPS is the sustained number of requests per second allowed per client.
	RPS float64

	// Burst is the maximum burst size allowed per client.
	Burst int

	// Logger for logging rate limit events.
	Logger *zap.Logger

	// SkipPaths is a list of paths to skip rate limiting.
	SkipPaths []string

	// KeyFunc extracts the rate limit key from the request.
	// Defaults to the client IP.
	KeyFunc func(c *gin.Context) string
}

// DefaultRateLimitConfig returns a RateLimitConfig with default values.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RPS:   100,
		Burst: 200,
	}
}

// clientLimiter tracks a per-client token bucket and its last use.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a middleware that applies per-client token bucket
// rate limiting.
func RateLimit(config RateLimitConfig) gin.HandlerFunc {
	if config.RPS <= 0 {
		config.RPS = DefaultRateLimitConfig().RPS
	}
	if config.Burst <= 0 {
		config.Burst = DefaultRateLimitConfig().Burst
	}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string {
			return c.ClientIP()
		}
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	skipPaths := make(map[string]bool)
	for _, path := range config.SkipPaths {
		skipPaths[path] = true
	}

	var mu sync.Mutex
	clients := make(map[string]*clientLimiter)

	// Evict idle clients so the map does not grow without bound.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			for key, client := range clients {
				if time.Since(client.lastSeen) > 3*time.Minute {
					delete(clients, key)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		if skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		key := config.KeyFunc(c)

		mu.Lock()
		client, ok := clients[key]
		if !ok {
			client = &clientLimiter{
				limiter: rate.NewLimiter(rate.Limit(config.RPS), config.Burst),
			}
			clients[key] = client
		}
		client.lastSeen = time.Now()
		allowed := client.limiter.Allow()
		mu.Unlock()

		if !allowed {
			logger.Debug("rate limit exceeded",
				zap.String("key", key),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
