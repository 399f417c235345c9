// Package auth provides the authenticated identity model and the failure
// taxonomy for the gateway's authentication gate.
package auth

import "context"

// Identity represents the authenticated caller for a single request. It is
// derived from a validated credential and never persisted.
type Identity struct {
	// UserID is the unique identifier of the authenticated user.
	UserID string `json:"userId"`

	// Email is the email address of the authenticated user.
	Email string `json:"email"`
}

// Context key type for identity.
type identityContextKey struct{}

// ContextWithIdentity adds an identity to the context.
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext extracts the identity from the context.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(*Identity)
	return identity, ok && identity != nil
}
