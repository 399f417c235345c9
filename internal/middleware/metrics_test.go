package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/avshopgw/internal/observability"
)

func countRequests(t *testing.T, m *observability.Metrics, method, path, status string) float64 {
	t.Helper()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "test_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := make(map[string]string)
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			if labels["method"] == method && labels["path"] == path && labels["status"] == status {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestHTTPMetricsRecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := observability.NewMetrics("test")

	router := gin.New()
	router.Use(HTTPMetrics(m))
	router.GET("/products/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/products/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Recorded by route template, not raw path.
	assert.Equal(t, float64(1), countRequests(t, m, "GET", "/products/:id", "200"))
	assert.Equal(t, float64(0), countRequests(t, m, "GET", "/products/42", "200"))
}

func TestHTTPMetricsUnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := observability.NewMetrics("test")

	router := gin.New()
	router.Use(HTTPMetrics(m))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, float64(1), countRequests(t, m, "GET", "unmatched", "404"))
}

func TestHTTPMetricsNilMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(HTTPMetrics(nil))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
