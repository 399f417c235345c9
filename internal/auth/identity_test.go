package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityContextRoundTrip(t *testing.T) {
	identity := &Identity{UserID: "u-1", Email: "u@example.com"}

	ctx := ContextWithIdentity(context.Background(), identity)

	got, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestIdentityFromContextMissing(t *testing.T) {
	got, ok := IdentityFromContext(context.Background())

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestIdentityFromContextNilIdentity(t *testing.T) {
	ctx := ContextWithIdentity(context.Background(), nil)

	_, ok := IdentityFromContext(ctx)

	assert.False(t, ok)
}
