// Package backend routes gateway operations to the messaging backend and
// translates its responses into domain outcomes.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matheus3301/wppgw/internal/outcome"
	"go.uber.org/zap"
)

// Client dispatches operations against a backend base URL. It holds no
// per-session state; the phone number baked into each operation's path is
// the only routing input. Safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient creates a backend client. timeout bounds every outbound call;
// a call that exceeds it is abandoned, never retried.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// rawResponse is an untranslated backend reply.
type rawResponse struct {
	status int
	body   []byte
}

// Do dispatches op and translates the reply. On success the raw backend
// body is returned for passthrough; every failure is an *outcome.Error.
func (c *Client) Do(ctx context.Context, op Operation) (json.RawMessage, error) {
	resp, err := c.dispatch(ctx, op)
	if err != nil {
		return nil, err
	}
	return translate(op, resp)
}

func (c *Client) dispatch(ctx context.Context, op Operation) (*rawResponse, error) {
	target := c.baseURL + op.Path
	if len(op.Query) > 0 {
		target += "?" + op.Query.Encode()
	}

	var body io.Reader
	if op.Body != nil {
		payload, err := json.Marshal(op.Body)
		if err != nil {
			return nil, outcome.BackendError(fmt.Sprintf("encode request body: %v", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, target, body)
	if err != nil {
		return nil, outcome.BackendError(fmt.Sprintf("build request: %v", err))
	}
	if op.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("backend dispatch failed",
			zap.String("family", string(op.Family)),
			zap.String("path", op.Path),
			zap.Error(err))
		return nil, outcome.BackendUnavailable("backend service unavailable")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, outcome.BackendUnavailable("backend service unavailable")
	}

	c.logger.Debug("backend response",
		zap.String("family", string(op.Family)),
		zap.String("path", op.Path),
		zap.Int("status", resp.StatusCode))

	return &rawResponse{status: resp.StatusCode, body: data}, nil
}

// Probe issues a lightweight reachability check and reports the backend
// status code. Used by the health endpoint only; translation is skipped
// because health must never surface a backend failure.
func (c *Client) Probe(ctx context.Context) (int, error) {
	resp, err := c.dispatch(ctx, ListSessions())
	if err != nil {
		return 0, err
	}
	return resp.status, nil
}
