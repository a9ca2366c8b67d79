package backend

import (
	"errors"
	"testing"

	"github.com/matheus3301/wppgw/internal/outcome"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name       string
		op         Operation
		status     int
		body       string
		wantKind   outcome.Kind // empty = success
		wantReason string
	}{
		{"qr success", QR("+1415"), 200, `{"qr":"data"}`, "", ""},
		{"qr already authenticated", QR("+1415"), 400, "", outcome.KindAlreadyAuthenticated, ""},
		{"qr timeout", QR("+1415"), 408, "", outcome.KindBackendError, "timed out waiting for QR code"},
		{"qr session missing", QR("+1415"), 404, "", outcome.KindNotFound, "session not found"},
		{"qr unexpected", QR("+1415"), 502, "", outcome.KindBackendError, ""},

		{"pair success", PairPhone("+1415", true), 200, `{"pair_code":"ABCD"}`, "", ""},
		{"pair already authenticated", PairPhone("+1415", true), 400, "Already authenticated", outcome.KindAlreadyAuthenticated, ""},
		{"pair phone required", PairPhone("+1415", true), 400, "Phone number is required", outcome.KindInvalidRequest, "phone number is required"},
		{"pair other 400", PairPhone("+1415", true), 400, "something else", outcome.KindInvalidRequest, "invalid phone number format"},
		{"pair session missing", PairPhone("+1415", true), 404, "", outcome.KindNotFound, "session not found"},
		{"pair unexpected", PairPhone("+1415", true), 500, "", outcome.KindBackendError, ""},

		{"logout success", Logout("+1415"), 200, "", "", ""},
		{"logout not authenticated", Logout("+1415"), 400, "", outcome.KindNotAuthenticated, ""},

		{"status success", SessionStatus("+1415"), 200, `{"status":"connected"}`, "", ""},
		{"status session missing", SessionStatus("+1415"), 404, "", outcome.KindNotFound, "session not found"},
		{"status 400 not success", SessionStatus("+1415"), 400, "", outcome.KindBackendError, ""},

		{"create success", CreateSession("+1415"), 200, `{"session_id":"x"}`, "", ""},
		{"create invalid", CreateSession("+1415"), 400, "", outcome.KindInvalidRequest, "invalid session request"},
		{"create 404 not session scoped", CreateSession("+1415"), 404, "", outcome.KindBackendError, ""},

		{"list success", ListSessions(), 200, `{"sessions":[]}`, "", ""},
		{"list unexpected", ListSessions(), 500, "", outcome.KindBackendError, ""},

		{"chat messages missing", ChatMessages("+1415", "chat@g.us", 50), 404, "", outcome.KindNotFound, "session or chat not found"},
		{"read status missing", UpdateReadStatus("+1415", "m1", true), 404, "", outcome.KindNotFound, "session or message not found"},
		{"read status invalid", UpdateReadStatus("+1415", "m1", true), 400, "", outcome.KindInvalidRequest, "invalid read status update"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := translate(tt.op, &rawResponse{status: tt.status, body: []byte(tt.body)})
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("translate() error = %v, want success", err)
				}
				if string(body) != tt.body {
					t.Errorf("body = %q, want passthrough %q", body, tt.body)
				}
				return
			}
			if err == nil {
				t.Fatal("translate() succeeded, want error")
			}
			var oe *outcome.Error
			if !errors.As(err, &oe) {
				t.Fatalf("error %T is not *outcome.Error", err)
			}
			if oe.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", oe.Kind, tt.wantKind)
			}
			if tt.wantReason != "" && oe.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", oe.Reason, tt.wantReason)
			}
		})
	}
}

func TestTranslateDeterministic(t *testing.T) {
	op := PairPhone("+1415", true)
	resp := &rawResponse{status: 400, body: []byte("Already authenticated")}
	first, firstErr := translate(op, resp)
	for i := 0; i < 10; i++ {
		body, err := translate(op, resp)
		if string(body) != string(first) || !errors.Is(err, firstErr) {
			t.Fatal("translate is not deterministic for identical input")
		}
	}
}
