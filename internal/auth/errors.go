package auth

import (
	"errors"
	"fmt"
	"net/http"
)

// FailureKind classifies why the authentication gate rejected a request.
type FailureKind string

// Gate failure kinds.
const (
	KindMissingCredential   FailureKind = "missing_credential"
	KindVerificationTimeout FailureKind = "verification_timeout"
	KindInvalidToken        FailureKind = "invalid_or_expired_token"
	KindInvalidPayload      FailureKind = "invalid_payload"
)

// Sentinel errors for gate failures.
var (
	// ErrMissingCredential indicates no credential was present in either
	// the cookie or the Authorization header.
	ErrMissingCredential = errors.New("authentication token missing")

	// ErrVerificationTimeout indicates the verifier did not respond
	// within the gate's bounded wait.
	ErrVerificationTimeout = errors.New("token verification timed out")

	// ErrInvalidToken indicates the remote verifier rejected the credential.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidPayload indicates the verifier returned an identity
	// without a user ID.
	ErrInvalidPayload = errors.New("invalid token payload")
)

// GateError is a gate failure with its classification and a user-safe
// message.
type GateError struct {
	Kind    FailureKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("auth gate (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("auth gate (%s): %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *GateError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *GateError) Is(target error) bool {
	var ge *GateError
	if errors.As(target, &ge) {
		return ge.Kind == e.Kind
	}
	return errors.Is(e.Cause, target)
}

// HTTPStatus returns the HTTP status for this gate failure: 504 for a
// verification timeout, 401 for everything else.
func (e *GateError) HTTPStatus() int {
	if e.Kind == KindVerificationTimeout {
		return http.StatusGatewayTimeout
	}
	return http.StatusUnauthorized
}

// NewGateError creates a new GateError.
func NewGateError(kind FailureKind, message string) *GateError {
	return &GateError{Kind: kind, Message: message}
}

// NewGateErrorWithCause creates a new GateError wrapping a cause.
func NewGateErrorWithCause(kind FailureKind, message string, cause error) *GateError {
	return &GateError{Kind: kind, Message: message, Cause: cause}
}

// IsGateError checks if an error is an authentication gate error.
func IsGateError(err error) bool {
	var ge *GateError
	return errors.As(err, &ge)
}
