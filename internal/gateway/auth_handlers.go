package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/avshopgw/internal/auth"
	"github.com/vyrodovalexey/avshopgw/internal/client"
	"github.com/vyrodovalexey/avshopgw/internal/rpc"
)

// AuthHandler serves the authentication routes.
type AuthHandler struct {
	auth   *client.Auth
	cookie auth.CookieOptions
	logger *zap.Logger
}

// NewAuthHandler creates an AuthHandler backed by the given auth service
// adapter. Cookie options control the session cookie issued on login.
func NewAuthHandler(authClient *client.Auth, cookie auth.CookieOptions, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		auth:   authClient,
		cookie: cookie,
		logger: logger,
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req rpc.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.auth.RegisterUser(c.Request.Context(), &req)
	if err != nil {
		writeUpstreamError(c, h.logger, err)
		return
	}

	h.logger.Info("user registered", zap.String("email", req.Email))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": resp.Message,
	})
}

// Login handles POST /auth/login. On success the session token is set as
// an HTTP-only cookie and never echoed in the response body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req rpc.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.auth.LoginUser(c.Request.Context(), &req)
	if err != nil {
		writeUpstreamError(c, h.logger, err)
		return
	}

	auth.SetCredentialCookie(c.Writer, resp.Token, h.cookie)

	h.logger.Info("user logged in", zap.String("email", resp.Email))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"email": resp.Email,
		},
	})
}

// Logout handles POST /auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearCredentialCookie(c.Writer, h.cookie)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}
