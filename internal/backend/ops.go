package backend

import (
	"fmt"
	"net/url"
	"strconv"
)

// Family identifies the translation table an operation's responses go
// through.
type Family string

const (
	FamilySessionCreate     Family = "session-create"
	FamilySessionList       Family = "session-list"
	FamilySessionStatus     Family = "session-status"
	FamilySessionConnect    Family = "session-connect"
	FamilySessionDisconnect Family = "session-disconnect"
	FamilySessionDelete     Family = "session-delete"
	FamilyQR                Family = "qr-fetch"
	FamilyAuthStatus        Family = "auth-status"
	FamilyLogout            Family = "logout"
	FamilyPairPhone         Family = "pair-phone"
	FamilyMessages          Family = "messages-fetch"
	FamilyReadStatus        Family = "read-status-update"
	FamilyUnreadCount       Family = "unread-count"
)

// Operation describes one outbound backend call: the session-scoped path,
// the wire details, and how its responses are classified.
type Operation struct {
	Family Family
	Method string
	Path   string
	Query  url.Values
	Body   any

	// sessionScoped marks operations addressing a single session; their
	// 404 responses mean the session namespace itself is absent.
	sessionScoped bool
	// missing names the resource reported when a session-scoped call
	// returns 404. Defaults to "session".
	missing string
}

func sessionOp(family Family, method, phone, suffix string) Operation {
	return Operation{
		Family:        family,
		Method:        method,
		Path:          fmt.Sprintf("/sessions/%s%s", url.PathEscape(phone), suffix),
		sessionScoped: true,
		missing:       "session",
	}
}

// CreateSession registers a new session for phone.
func CreateSession(phone string) Operation {
	return Operation{
		Family: FamilySessionCreate,
		Method: "POST",
		Path:   "/sessions/create",
		Body:   map[string]string{"phone_number": phone},
	}
}

// ListSessions lists every registered session.
func ListSessions() Operation {
	return Operation{Family: FamilySessionList, Method: "GET", Path: "/sessions/list"}
}

// SessionStatus fetches connection state for one session.
func SessionStatus(phone string) Operation {
	return sessionOp(FamilySessionStatus, "GET", phone, "/status")
}

// ConnectSession asks the backend to bring the session online.
func ConnectSession(phone string) Operation {
	return sessionOp(FamilySessionConnect, "POST", phone, "/connect")
}

// DisconnectSession asks the backend to take the session offline.
func DisconnectSession(phone string) Operation {
	return sessionOp(FamilySessionDisconnect, "POST", phone, "/disconnect")
}

// DeleteSession removes the session and its data.
func DeleteSession(phone string) Operation {
	return sessionOp(FamilySessionDelete, "DELETE", phone, "/delete")
}

// QR fetches the current pairing QR payload.
func QR(phone string) Operation {
	return sessionOp(FamilyQR, "GET", phone, "/qr")
}

// AuthStatus fetches the session's authentication state.
func AuthStatus(phone string) Operation {
	return sessionOp(FamilyAuthStatus, "GET", phone, "/auth/status")
}

// Logout ends the session's authenticated state.
func Logout(phone string) Operation {
	return sessionOp(FamilyLogout, "POST", phone, "/auth/logout")
}

// PairPhone requests a pairing code for phone.
func PairPhone(phone string, showNotification bool) Operation {
	op := sessionOp(FamilyPairPhone, "POST", phone, "/auth/pair-phone")
	op.Body = map[string]any{
		"phone_number":      phone,
		"show_notification": showNotification,
	}
	return op
}

// Messages fetches the session's raw message stream. A non-positive
// limit leaves pagination to the backend's default.
func Messages(phone string, limit int) Operation {
	op := sessionOp(FamilyMessages, "GET", phone, "/messages")
	if limit > 0 {
		op.Query = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}
	return op
}

// ChatMessages fetches messages for one chat.
func ChatMessages(phone, chatID string, limit int) Operation {
	op := sessionOp(FamilyMessages, "GET", phone, "/messages/"+url.PathEscape(chatID))
	if limit > 0 {
		op.Query = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}
	op.missing = "session or chat"
	return op
}

// UpdateReadStatus marks one message read or unread.
func UpdateReadStatus(phone, messageID string, read bool) Operation {
	op := sessionOp(FamilyReadStatus, "POST", phone, "/messages/read-status")
	op.Body = map[string]any{"message_id": messageID, "read": read}
	op.missing = "session or message"
	return op
}

// UnreadCount fetches the session-wide unread message count.
func UnreadCount(phone string) Operation {
	return sessionOp(FamilyUnreadCount, "GET", phone, "/messages/unread-count")
}
