package backend

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matheus3301/wppgw/internal/outcome"
)

// rule matches one backend reply shape. A nil err means the reply is a
// success and its body passes through untranslated. Rules with a
// bodyContains discriminator must precede the bare-status rule for the
// same code.
type rule struct {
	status       int
	bodyContains string
	err          *outcome.Error
}

// familyRules is the full classification table. Statuses absent from a
// family's rules fall through to BackendError; they are never treated as
// success.
var familyRules = map[Family][]rule{
	FamilySessionCreate: {
		{status: 200},
		{status: 400, err: outcome.InvalidRequest("invalid session request")},
	},
	FamilySessionList: {
		{status: 200},
	},
	FamilySessionStatus: {
		{status: 200},
	},
	FamilySessionConnect: {
		{status: 200},
	},
	FamilySessionDisconnect: {
		{status: 200},
	},
	FamilySessionDelete: {
		{status: 200},
	},
	FamilyQR: {
		{status: 200},
		{status: 400, err: outcome.AlreadyAuthenticated()},
		{status: 408, err: outcome.BackendError("timed out waiting for QR code")},
	},
	FamilyAuthStatus: {
		{status: 200},
	},
	FamilyLogout: {
		{status: 200},
		{status: 400, err: outcome.NotAuthenticated()},
	},
	FamilyPairPhone: {
		{status: 200},
		{status: 400, bodyContains: "Already authenticated", err: outcome.AlreadyAuthenticated()},
		{status: 400, bodyContains: "Phone number is required", err: outcome.InvalidRequest("phone number is required")},
		{status: 400, err: outcome.InvalidRequest("invalid phone number format")},
	},
	FamilyMessages: {
		{status: 200},
	},
	FamilyReadStatus: {
		{status: 200},
		{status: 400, err: outcome.InvalidRequest("invalid read status update")},
	},
	FamilyUnreadCount: {
		{status: 200},
	},
}

// translate classifies a backend reply. For session-scoped operations a
// 404 means the addressed session namespace is gone and wins over any
// family rule. Body substring matching is a concession to the backend's
// prose-only 400 bodies; see DESIGN.md.
func translate(op Operation, resp *rawResponse) (json.RawMessage, error) {
	if op.sessionScoped && resp.status == 404 {
		return nil, outcome.NotFound(op.missing)
	}
	for _, r := range familyRules[op.Family] {
		if r.status != resp.status {
			continue
		}
		if r.bodyContains != "" && !bytes.Contains(resp.body, []byte(r.bodyContains)) {
			continue
		}
		if r.err != nil {
			return nil, r.err
		}
		return resp.body, nil
	}
	return nil, outcome.BackendError(fmt.Sprintf("unexpected backend status %d", resp.status))
}
