package auth

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		kind     FailureKind
		expected int
	}{
		{KindMissingCredential, http.StatusUnauthorized},
		{KindInvalidToken, http.StatusUnauthorized},
		{KindInvalidPayload, http.StatusUnauthorized},
		{KindVerificationTimeout, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := NewGateError(tt.kind, "message")
			assert.Equal(t, tt.expected, err.HTTPStatus())
		})
	}
}

func TestGateErrorIs(t *testing.T) {
	err := NewGateErrorWithCause(KindVerificationTimeout, "timed out", ErrVerificationTimeout)

	assert.True(t, errors.Is(err, ErrVerificationTimeout))
	assert.False(t, errors.Is(err, ErrInvalidToken))
}

func TestGateErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewGateErrorWithCause(KindInvalidToken, "bad token", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsGateError(t *testing.T) {
	assert.True(t, IsGateError(NewGateError(KindInvalidToken, "bad")))
	assert.False(t, IsGateError(errors.New("plain")))
	assert.False(t, IsGateError(nil))
}
