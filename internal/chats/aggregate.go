package chats

import (
	"sort"

	"github.com/samber/lo"
)

// Summarize groups messages by chat and produces one Summary per chat.
//
// The latest message is the one with the maximum timestamp; on an exact
// timestamp tie the message with the greater identifier wins, so the
// result does not depend on input order. Unread counts only messages
// that are neither read nor sent by the session owner. Output is sorted
// by latest timestamp descending, chat ID ascending on equal timestamps.
func Summarize(messages []Message) []Summary {
	latest := make(map[string]Message, len(messages))
	unread := make(map[string]int, len(messages))

	for _, msg := range messages {
		cur, seen := latest[msg.ChatID]
		if !seen || newer(msg, cur) {
			latest[msg.ChatID] = msg
		}
		if !msg.IsRead && !msg.IsFromMe {
			unread[msg.ChatID]++
		}
	}

	summaries := lo.MapToSlice(latest, func(chatID string, msg Message) Summary {
		return Summary{
			ChatID:          chatID,
			IsGroup:         msg.IsGroup,
			LatestMessage:   displayText(msg.Content),
			LatestTimestamp: msg.Timestamp,
			UnreadCount:     unread[chatID],
		}
	})

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].LatestTimestamp.Equal(summaries[j].LatestTimestamp) {
			return summaries[i].LatestTimestamp.After(summaries[j].LatestTimestamp)
		}
		return summaries[i].ChatID < summaries[j].ChatID
	})

	return summaries
}

func newer(candidate, current Message) bool {
	if !candidate.Timestamp.Equal(current.Timestamp) {
		return candidate.Timestamp.After(current.Timestamp)
	}
	return candidate.ID > current.ID
}

// displayText renders the content for a chat list: the text body, or a
// bracketed kind label for non-text messages.
func displayText(c Content) string {
	if c.Text != "" {
		return c.Text
	}
	return "[" + c.Type + "]"
}
