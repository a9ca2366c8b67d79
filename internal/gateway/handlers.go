package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/matheus3301/wppgw/internal/backend"
	"github.com/matheus3301/wppgw/internal/chats"
	"github.com/matheus3301/wppgw/internal/outcome"
	"github.com/matheus3301/wppgw/internal/phone"
	"go.uber.org/zap"
)

const defaultMessageLimit = 50

// Handler implements every gateway endpoint. Stateless: each request is
// an independent transaction against the backend.
type Handler struct {
	backend  *backend.Client
	logger   *zap.Logger
	validate *validator.Validate
}

// NewHandler creates the endpoint handler set.
func NewHandler(b *backend.Client, logger *zap.Logger) *Handler {
	return &Handler{
		backend:  b,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"service": "multi-session whatsapp gateway",
	})
}

// health reports backend reachability. It never surfaces a backend error:
// every probe result maps to one of healthy, degraded, unhealthy.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status, err := h.backend.Probe(r.Context())
	switch {
	case err != nil:
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "unhealthy", "backend": "down"})
	case status == http.StatusOK:
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "backend": "running"})
	default:
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "degraded", "backend": "issues"})
	}
}

type createSessionRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if !h.decode(w, r, &req) {
		return
	}
	normalized, err := phone.Normalize(req.PhoneNumber)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.proxy(w, r, backend.CreateSession(normalized))
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, backend.ListSessions())
}

func (h *Handler) sessionStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	h.proxy(w, r, backend.SessionStatus(p))
}

func (h *Handler) connectSession(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	h.confirm(w, r, backend.ConnectSession(p), "session connected")
}

func (h *Handler) disconnectSession(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	h.confirm(w, r, backend.DisconnectSession(p), "session disconnected")
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	h.confirm(w, r, backend.DeleteSession(p), "session deleted")
}

func (h *Handler) qr(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	h.proxy(w, r, backend.QR(p))
}

func (h *Handler) authStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	h.proxy(w, r, backend.AuthStatus(p))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	h.confirm(w, r, backend.Logout(p), "logged out")
}

type pairPhoneRequest struct {
	ShowNotification *bool `json:"show_notification"`
}

func (h *Handler) pairPhone(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	// The pairing body is optional; the session's own phone number is
	// always used as the pairing target.
	showNotification := true
	var req pairPhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.ShowNotification != nil {
		showNotification = *req.ShowNotification
	}
	h.proxy(w, r, backend.PairPhone(p, showNotification))
}

func (h *Handler) messages(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	limit, err := limitParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.proxy(w, r, backend.Messages(p, limit))
}

func (h *Handler) chatMessages(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	limit, err := limitParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.proxy(w, r, backend.ChatMessages(p, chi.URLParam(r, "chatID"), limit))
}

type readStatusRequest struct {
	MessageID string `json:"message_id" validate:"required"`
	Read      bool   `json:"read"`
}

func (h *Handler) readStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	var req readStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.confirm(w, r, backend.UpdateReadStatus(p, req.MessageID, req.Read), "read status updated")
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	h.proxy(w, r, backend.UnreadCount(p))
}

// chats fetches the session's raw message stream and derives the per-chat
// summary view locally; the backend has no chats endpoint.
func (h *Handler) chats(w http.ResponseWriter, r *http.Request) {
	p, ok := h.phoneParam(w, r)
	if !ok {
		return
	}
	summaries, err := h.fetchChats(r.Context(), p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]chats.Summary{"chats": summaries})
}

func (h *Handler) fetchChats(ctx context.Context, phoneNumber string) ([]chats.Summary, error) {
	body, err := h.backend.Do(ctx, backend.Messages(phoneNumber, 0))
	if err != nil {
		return nil, err
	}
	var resp struct {
		Messages []chats.Message `json:"messages"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, outcome.BackendError("malformed messages payload")
	}
	return chats.Summarize(resp.Messages), nil
}

// phoneParam normalizes the {phone} path segment. Failure writes the
// error and guarantees no backend call is made.
func (h *Handler) phoneParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	normalized, err := phone.Normalize(chi.URLParam(r, "phone"))
	if err != nil {
		h.writeError(w, err)
		return "", false
	}
	return normalized, true
}

// decode reads a JSON body into dst and applies its validation tags.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, outcome.InvalidRequest("malformed request body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, outcome.InvalidRequest("missing required fields"))
		return false
	}
	return true
}

func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultMessageLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, outcome.InvalidRequest("limit must be a positive integer")
	}
	return limit, nil
}

// proxy dispatches op and passes the backend's success body through
// unchanged.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request, op backend.Operation) {
	body, err := h.backend.Do(r.Context(), op)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// confirm dispatches op and replaces the backend body with a fixed
// confirmation message.
func (h *Handler) confirm(w http.ResponseWriter, r *http.Request, op backend.Operation, message string) {
	if _, err := h.backend.Do(r.Context(), op); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	oe := outcome.FromError(err)
	if oe.Kind == outcome.KindBackendError {
		h.logger.Error("backend error", zap.String("reason", oe.Reason))
	}
	h.writeJSON(w, outcome.HTTPStatus(oe.Kind), map[string]map[string]string{
		"error": {
			"code":    string(oe.Kind),
			"message": oe.Reason,
		},
	})
}
