// Package chats derives per-chat summary views from a session's raw
// message stream.
package chats

import "time"

// Content is the typed message payload. Type names the message kind
// ("text", "image", "audio", ...); Text is set for text messages only.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Message is a backend-owned message, received read-only.
type Message struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	ChatID      string    `json:"chat_id"`
	SenderID    string    `json:"sender_id"`
	Content     Content   `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	IsFromMe    bool      `json:"is_from_me"`
	IsGroup     bool      `json:"is_group"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary is the derived per-chat view, recomputed on every request.
type Summary struct {
	ChatID          string    `json:"chat_id"`
	IsGroup         bool      `json:"is_group"`
	LatestMessage   string    `json:"latest_message"`
	LatestTimestamp time.Time `json:"latest_timestamp"`
	UnreadCount     int       `json:"unread_count"`
}
