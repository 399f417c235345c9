package rpc

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error is the normalized representation of any upstream RPC failure. It
// carries the remote status code and message, independent of transport
// internals. Handlers never see raw transport errors.
type Error struct {
	Code    codes.Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" && e.Cause != nil {
		return "remote error (" + e.Code.String() + "): " + e.Cause.Error()
	}
	return "remote error (" + e.Code.String() + "): " + e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *Error) Is(target error) bool {
	var re *Error
	if errors.As(target, &re) {
		return re.Code == e.Code
	}
	return errors.Is(e.Cause, target)
}

// NewError creates a new remote Error.
func NewError(code codes.Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// FromError normalizes any upstream failure into an Error. Status-bearing
// errors keep their code and message; context deadline expiry becomes
// DeadlineExceeded; anything else is an Internal error. Returns nil for nil.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var re *Error
	if errors.As(err, &re) {
		return re
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Code: codes.DeadlineExceeded, Message: "upstream call timed out", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &Error{Code: codes.Canceled, Message: "upstream call canceled", Cause: err}
	}

	if st, ok := status.FromError(err); ok {
		return &Error{Code: st.Code(), Message: st.Message(), Cause: err}
	}

	// Not a status error: the message stays internal so transport details
	// never reach clients.
	return &Error{Code: codes.Internal, Cause: err}
}

// IsRemote reports whether err is a normalized remote failure, i.e. carries
// both a code and a message. Errors lacking either are treated as opaque
// internal errors by callers.
func IsRemote(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Message != ""
}

// HTTPStatus maps a remote status code to an HTTP status code. The mapping
// is total: anything outside the table resolves to 500.
func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.NotFound:
		return http.StatusNotFound
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// kindPrefixPattern matches a single leading UPPER_SNAKE error-kind tag,
// e.g. "TOKEN_VERIFICATION_FAILED: ". The match is anchored so arbitrary
// colons inside the message are left alone.
var kindPrefixPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*:\s*`)

// CleanMessage strips one leading internal error-kind tag from a
// user-visible message.
func CleanMessage(message string) string {
	return kindPrefixPattern.ReplaceAllString(message, "")
}
