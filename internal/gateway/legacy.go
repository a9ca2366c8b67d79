package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/matheus3301/wppgw/internal/backend"
	"github.com/matheus3301/wppgw/internal/outcome"
)

// firstSession resolves the first-available-session the deprecated
// routes delegate to. With no sessions registered it fails without
// issuing the delegate call.
func (h *Handler) firstSession(ctx context.Context) (string, error) {
	body, err := h.backend.Do(ctx, backend.ListSessions())
	if err != nil {
		return "", err
	}
	var resp struct {
		Sessions []struct {
			PhoneNumber string `json:"phone_number"`
		} `json:"sessions"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", outcome.BackendError("malformed session list payload")
	}
	if len(resp.Sessions) == 0 {
		return "", outcome.NoSessionsAvailable()
	}
	return resp.Sessions[0].PhoneNumber, nil
}

func (h *Handler) legacyAuthStatus(w http.ResponseWriter, r *http.Request) {
	p, err := h.firstSession(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.proxy(w, r, backend.AuthStatus(p))
}

func (h *Handler) legacyMessages(w http.ResponseWriter, r *http.Request) {
	p, err := h.firstSession(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.proxy(w, r, backend.Messages(p, 0))
}
