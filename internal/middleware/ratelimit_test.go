package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitRouter(config RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(config))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return router
}

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	router := rateLimitRouter(RateLimitConfig{RPS: 1, Burst: 3})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitRejectsOverBurst(t *testing.T) {
	router := rateLimitRouter(RateLimitConfig{RPS: 0.001, Burst: 1})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRateLimitSkipPaths(t *testing.T) {
	router := rateLimitRouter(RateLimitConfig{
		RPS:       0.001,
		Burst:     1,
		SkipPaths: []string{"/health"},
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitPerClient(t *testing.T) {
	router := rateLimitRouter(RateLimitConfig{
		RPS:   0.001,
		Burst: 1,
		KeyFunc: func(c *gin.Context) string {
			return c.GetHeader("X-Client")
		},
	})

	// Exhaust client a.
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Client", "a")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Client", "a")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Client b has its own bucket.
	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Client", "b")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
