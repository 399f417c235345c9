package rpc

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    codes.Code
		expectedMessage string
	}{
		{
			name:            "status error keeps code and message",
			err:             status.Error(codes.NotFound, "product not found"),
			expectedCode:    codes.NotFound,
			expectedMessage: "product not found",
		},
		{
			name:            "context deadline exceeded",
			err:             context.DeadlineExceeded,
			expectedCode:    codes.DeadlineExceeded,
			expectedMessage: "upstream call timed out",
		},
		{
			name:            "wrapped context deadline exceeded",
			err:             errors.Join(errors.New("call failed"), context.DeadlineExceeded),
			expectedCode:    codes.DeadlineExceeded,
			expectedMessage: "upstream call timed out",
		},
		{
			name:            "context canceled",
			err:             context.Canceled,
			expectedCode:    codes.Canceled,
			expectedMessage: "upstream call canceled",
		},
		{
			name:            "plain error becomes internal without message",
			err:             errors.New("connection reset"),
			expectedCode:    codes.Internal,
			expectedMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := FromError(tt.err)
			require.NotNil(t, re)
			assert.Equal(t, tt.expectedCode, re.Code)
			assert.Equal(t, tt.expectedMessage, re.Message)
		})
	}
}

func TestFromErrorNil(t *testing.T) {
	assert.Nil(t, FromError(nil))
}

func TestFromErrorPassthrough(t *testing.T) {
	original := NewError(codes.AlreadyExists, "email already registered")

	re := FromError(original)

	assert.Same(t, original, re)
}

func TestErrorIs(t *testing.T) {
	err := NewError(codes.Unavailable, "service temporarily unavailable")

	assert.True(t, errors.Is(err, NewError(codes.Unavailable, "other message")))
	assert.False(t, errors.Is(err, NewError(codes.NotFound, "")))
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote(NewError(codes.NotFound, "not found")))
	assert.False(t, IsRemote(&Error{Code: codes.Internal}))
	assert.False(t, IsRemote(errors.New("plain")))
	assert.False(t, IsRemote(nil))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code     codes.Code
		expected int
	}{
		{codes.InvalidArgument, http.StatusBadRequest},
		{codes.AlreadyExists, http.StatusConflict},
		{codes.NotFound, http.StatusNotFound},
		{codes.PermissionDenied, http.StatusForbidden},
		{codes.Unauthenticated, http.StatusUnauthorized},
		{codes.Unavailable, http.StatusServiceUnavailable},
		{codes.Internal, http.StatusInternalServerError},
		{codes.Unknown, http.StatusInternalServerError},
		{codes.DataLoss, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.code))
		})
	}
}

func TestCleanMessage(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "strips kind prefix",
			message:  "TOKEN_VERIFICATION_FAILED: Invalid or expired token",
			expected: "Invalid or expired token",
		},
		{
			name:     "leaves plain message alone",
			message:  "Invalid credentials",
			expected: "Invalid credentials",
		},
		{
			name:     "leaves mid-message colons alone",
			message:  "field error: email is required",
			expected: "field error: email is required",
		},
		{
			name:     "strips only one prefix",
			message:  "OUTER: INNER: detail",
			expected: "INNER: detail",
		},
		{
			name:     "empty message",
			message:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanMessage(tt.message))
		})
	}
}
