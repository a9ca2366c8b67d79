package outcome

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidRequest, http.StatusBadRequest},
		{KindNotAuthenticated, http.StatusUnauthorized},
		{KindAlreadyAuthenticated, http.StatusConflict},
		{KindNotFound, http.StatusNotFound},
		{KindBackendUnavailable, http.StatusServiceUnavailable},
		{KindBackendError, http.StatusBadGateway},
		{Kind("something else"), http.StatusBadGateway},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.kind); got != tt.want {
			t.Errorf("HTTPStatus(%q) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestFromError(t *testing.T) {
	oe := NotFound("session")
	if got := FromError(fmt.Errorf("dispatch: %w", oe)); got != oe {
		t.Errorf("FromError did not unwrap: got %v", got)
	}

	plain := errors.New("boom")
	got := FromError(plain)
	if got.Kind != KindBackendError {
		t.Errorf("kind = %q, want backend_error", got.Kind)
	}
	if got.Reason != "boom" {
		t.Errorf("reason = %q", got.Reason)
	}
}

func TestErrorString(t *testing.T) {
	if got := InvalidRequest("bad phone").Error(); got != "invalid_request: bad phone" {
		t.Errorf("Error() = %q", got)
	}
	if got := NoSessionsAvailable().Reason; got != "no sessions available" {
		t.Errorf("reason = %q", got)
	}
}
