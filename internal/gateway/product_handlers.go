package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/avshopgw/internal/client"
	"github.com/vyrodovalexey/avshopgw/internal/middleware"
	"github.com/vyrodovalexey/avshopgw/internal/rpc"
)

// ProductHandler serves the product catalog routes.
type ProductHandler struct {
	products *client.Product
	logger   *zap.Logger
}

// NewProductHandler creates a ProductHandler backed by the given product
// service adapter.
func NewProductHandler(products *client.Product, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// AllProducts handles GET /products/all-products.
func (h *ProductHandler) AllProducts(c *gin.Context) {
	resp, err := h.products.GetAllProducts(c.Request.Context())
	if err != nil {
		writeUpstreamError(c, h.logger, err)
		return
	}

	items := resp.ProductItems
	if items == nil {
		items = []rpc.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

// Categories handles GET /products/categories. The upstream response
// shape is passed through unchanged.
func (h *ProductHandler) Categories(c *gin.Context) {
	resp, err := h.products.GetAllCategories(c.Request.Context())
	if err != nil {
		writeUpstreamError(c, h.logger, err)
		return
	}

	items := resp.CategoryItems
	if items == nil {
		items = []rpc.Category{}
	}

	c.JSON(http.StatusOK, gin.H{
		"categoryItems": items,
	})
}

// savePreferencesRequest is the client-facing body for saving category
// preferences.
type savePreferencesRequest struct {
	CategoryIDs []string `json:"categoryIds"`
}

// SavePreferences handles GET /products/categories/save-user-preferences.
// The authenticated user's ID comes from the identity established by the
// auth middleware, never from the request.
func (h *ProductHandler) SavePreferences(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication required",
		})
		return
	}

	var req savePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CategoryIDs == nil {
		badRequest(c, "Category IDs must be provided as an array")
		return
	}

	_, err := h.products.SaveUserCategoryPreferences(c.Request.Context(), &rpc.SaveUserCategoryPreferencesRequest{
		UserID:      identity.UserID,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		writeUpstreamError(c, h.logger, err)
		return
	}

	h.logger.Debug("user preferences saved",
		zap.String("userId", identity.UserID),
		zap.Int("categories", len(req.CategoryIDs)),
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User preferences saved successfully",
	})
}

// ProductsFromPreferences handles GET /products/products-from-preferences,
// returning products matching the authenticated user's saved category
// preferences.
func (h *ProductHandler) ProductsFromPreferences(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication required",
		})
		return
	}

	resp, err := h.products.GetProductsForUserPreferences(c.Request.Context(), &rpc.GetProductsFromPreferencesRequest{
		UserID: identity.UserID,
	})
	if err != nil {
		writeUpstreamError(c, h.logger, err)
		return
	}

	items := resp.ProductItems
	if items == nil {
		items = []rpc.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Products retrieved successfully",
		"products": items,
	})
}
