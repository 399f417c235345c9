package gateway

import (
	"github.com/gin-gonic/gin"
)

// RouteDeps holds everything needed to register the gateway's routes.
type RouteDeps struct {
	Auth     *AuthHandler
	Products *ProductHandler

	// Gate protects routes that require an authenticated identity.
	Gate gin.HandlerFunc

	// Health serves the liveness endpoint.
	Health gin.HandlerFunc

	// Metrics serves the Prometheus scrape endpoint; nil disables it.
	Metrics gin.HandlerFunc

	// MetricsPath is the scrape path, defaulting to /metrics.
	MetricsPath string
}

// RegisterRoutes wires the gateway's route table onto the server engine.
func (s *Server) RegisterRoutes(deps RouteDeps) {
	e := s.engine

	if deps.Health != nil {
		e.GET("/health", deps.Health)
	}
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		e.GET(path, deps.Metrics)
	}

	authRoutes := e.Group("/auth")
	{
		authRoutes.POST("/register", deps.Auth.Register)
		authRoutes.POST("/login", deps.Auth.Login)
		authRoutes.POST("/logout", deps.Auth.Logout)
	}

	products := e.Group("/products")
	{
		products.GET("/all-products", deps.Products.AllProducts)
		products.GET("/categories", deps.Products.Categories)

		protected := products.Group("")
		protected.Use(deps.Gate)
		{
			protected.GET("/categories/save-user-preferences", deps.Products.SavePreferences)
			protected.GET("/products-from-preferences", deps.Products.ProductsFromPreferences)
		}
	}
}
