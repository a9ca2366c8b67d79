// Package outcome defines the stable error vocabulary the gateway exposes
// to its callers. Every failure that crosses a package boundary is an
// *Error; nothing else constructs one ad hoc.
package outcome

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain outcome. The string value is the machine-readable
// code written into error response bodies.
type Kind string

const (
	KindInvalidRequest       Kind = "invalid_request"
	KindNotAuthenticated     Kind = "not_authenticated"
	KindAlreadyAuthenticated Kind = "already_authenticated"
	KindNotFound             Kind = "not_found"
	KindBackendUnavailable   Kind = "backend_unavailable"
	KindBackendError         Kind = "backend_error"
)

// Error is a classified domain failure.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// InvalidRequest reports a client-caused failure.
func InvalidRequest(reason string) *Error {
	return &Error{Kind: KindInvalidRequest, Reason: reason}
}

// NotAuthenticated reports an operation that requires an authenticated session.
func NotAuthenticated() *Error {
	return &Error{Kind: KindNotAuthenticated, Reason: "not authenticated"}
}

// AlreadyAuthenticated reports an operation that conflicts with an
// already-authenticated session.
func AlreadyAuthenticated() *Error {
	return &Error{Kind: KindAlreadyAuthenticated, Reason: "already authenticated"}
}

// NotFound reports a missing resource; resource names what was absent
// ("session", "message").
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Reason: resource + " not found"}
}

// NoSessionsAvailable reports that a legacy first-session operation found
// no sessions to delegate to.
func NoSessionsAvailable() *Error {
	return &Error{Kind: KindNotFound, Reason: "no sessions available"}
}

// BackendUnavailable reports a transport-level failure reaching the backend.
// Safe for the caller to retry.
func BackendUnavailable(reason string) *Error {
	return &Error{Kind: KindBackendUnavailable, Reason: reason}
}

// BackendError reports an unexpected backend response. The catch-all.
func BackendError(reason string) *Error {
	return &Error{Kind: KindBackendError, Reason: reason}
}

// HTTPStatus maps a kind to the status code the gateway responds with.
func HTTPStatus(k Kind) int {
	switch k {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotAuthenticated:
		return http.StatusUnauthorized
	case KindAlreadyAuthenticated:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindBackendUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// FromError extracts the *Error from err, classifying unknown errors as
// BackendError so no failure escapes the taxonomy.
func FromError(err error) *Error {
	var oe *Error
	if errors.As(err, &oe) {
		return oe
	}
	return BackendError(err.Error())
}
