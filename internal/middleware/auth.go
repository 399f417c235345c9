// Package middleware provides HTTP middleware for the gateway.
package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"

	"github.com/vyrodovalexey/avshopgw/internal/auth"
	"github.com/vyrodovalexey/avshopgw/internal/observability"
	"github.com/vyrodovalexey/avshopgw/internal/rpc"
)

// IdentityKey is the gin context key under which the authenticated identity
// is stored.
const IdentityKey = "identity"

// TokenVerifier validates a bearer credential against the authentication
// service.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, in *rpc.VerifyTokenRequest) (*rpc.VerifyTokenResponse, error)
}

// AuthConfig holds configuration for the authentication gate.
type AuthConfig struct {
	// Verifier validates extracted credentials.
	Verifier TokenVerifier

	// Cookie describes the credential cookie to read and clear.
	Cookie auth.CookieOptions

	// VerifyTimeout bounds the wait on the verifier. A verification that
	// outlives it fails the gate even if it would eventually succeed.
	VerifyTimeout time.Duration

	// Logger for gate decisions.
	Logger *zap.Logger

	// Metrics records gate failures. Optional.
	Metrics *observability.Metrics
}

// DefaultVerifyTimeout is the bounded wait on token verification.
const DefaultVerifyTimeout = 5 * time.Second

// Auth returns the authentication gate middleware. The credential is read
// from the cookie first, the Authorization header as fallback. A request
// with no credential is rejected without calling the verifier. Every
// failure path clears the stored credential before responding.
func Auth(config AuthConfig) gin.HandlerFunc {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.VerifyTimeout <= 0 {
		config.VerifyTimeout = DefaultVerifyTimeout
	}

	return func(c *gin.Context) {
		token := auth.ExtractCredential(c.Request, config.Cookie.Name)
		if token == "" {
			abortAuth(c, config, auth.NewGateErrorWithCause(
				auth.KindMissingCredential, "Authentication token missing", auth.ErrMissingCredential))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), config.VerifyTimeout)
		defer cancel()

		resp, err := config.Verifier.VerifyToken(ctx, &rpc.VerifyTokenRequest{Token: token})
		if err != nil {
			abortAuth(c, config, classifyVerifyError(err))
			return
		}

		if resp.UserID == "" {
			abortAuth(c, config, auth.NewGateErrorWithCause(
				auth.KindInvalidPayload, "Invalid token payload", auth.ErrInvalidPayload))
			return
		}

		identity := &auth.Identity{UserID: resp.UserID, Email: resp.Email}
		c.Set(IdentityKey, identity)
		c.Request = c.Request.WithContext(auth.ContextWithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}

// classifyVerifyError turns a verifier failure into a gate failure. The
// timeout race has exactly one winner: a deadline expiry is a timeout even
// if the verifier would have eventually succeeded.
func classifyVerifyError(err error) *auth.GateError {
	re := rpc.FromError(err)
	if re.Code == codes.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
		return auth.NewGateErrorWithCause(
			auth.KindVerificationTimeout, "Token verification timed out", auth.ErrVerificationTimeout)
	}

	message := "Invalid or expired token"
	if rpc.IsRemote(err) {
		if cleaned := rpc.CleanMessage(re.Message); cleaned != "" {
			message = cleaned
		}
	}
	return auth.NewGateErrorWithCause(auth.KindInvalidToken, message, err)
}

// abortAuth clears the stored credential and rejects the request.
func abortAuth(c *gin.Context, config AuthConfig, gateErr *auth.GateError) {
	auth.ClearCredentialCookie(c.Writer, config.Cookie)

	if config.Metrics != nil {
		config.Metrics.IncAuthFailure(string(gateErr.Kind))
	}

	config.Logger.Debug("authentication failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("kind", string(gateErr.Kind)),
	)

	c.AbortWithStatusJSON(gateErr.HTTPStatus(), gin.H{
		"success": false,
		"message": gateErr.Message,
	})
}

// GetIdentity returns the authenticated identity from the gin context.
func GetIdentity(c *gin.Context) (*auth.Identity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok && identity != nil
}
