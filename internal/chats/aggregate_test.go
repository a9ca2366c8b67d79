package chats

import (
	"testing"
	"time"
)

func ts(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func textMsg(id, chatID string, sec int64, text string) Message {
	return Message{
		ID:        id,
		ChatID:    chatID,
		Content:   Content{Type: "text", Text: text},
		Timestamp: ts(sec),
	}
}

func TestSummarizeLatestByTimestamp(t *testing.T) {
	orders := [][]Message{
		{textMsg("m1", "a", 1, "one"), textMsg("m2", "a", 2, "two"), textMsg("m3", "a", 3, "three")},
		{textMsg("m3", "a", 3, "three"), textMsg("m1", "a", 1, "one"), textMsg("m2", "a", 2, "two")},
		{textMsg("m2", "a", 2, "two"), textMsg("m3", "a", 3, "three"), textMsg("m1", "a", 1, "one")},
	}
	for i, msgs := range orders {
		got := Summarize(msgs)
		if len(got) != 1 {
			t.Fatalf("order %d: got %d summaries, want 1", i, len(got))
		}
		if !got[0].LatestTimestamp.Equal(ts(3)) {
			t.Errorf("order %d: latest timestamp = %v, want %v", i, got[0].LatestTimestamp, ts(3))
		}
		if got[0].LatestMessage != "three" {
			t.Errorf("order %d: latest message = %q, want %q", i, got[0].LatestMessage, "three")
		}
	}
}

func TestSummarizeTimestampTie(t *testing.T) {
	// Same timestamp: the greater message ID wins, in either input order.
	a := textMsg("m1", "a", 5, "first")
	b := textMsg("m9", "a", 5, "second")

	for _, msgs := range [][]Message{{a, b}, {b, a}} {
		got := Summarize(msgs)
		if got[0].LatestMessage != "second" {
			t.Errorf("latest message = %q, want %q", got[0].LatestMessage, "second")
		}
	}
}

func TestSummarizeUnreadCount(t *testing.T) {
	msgs := []Message{
		{ID: "m1", ChatID: "a", Timestamp: ts(1), IsRead: false, IsFromMe: false, Content: Content{Type: "text", Text: "hi"}},
		{ID: "m2", ChatID: "a", Timestamp: ts(2), IsRead: true, IsFromMe: false, Content: Content{Type: "text", Text: "hello"}},
		{ID: "m3", ChatID: "a", Timestamp: ts(3), IsRead: false, IsFromMe: true, Content: Content{Type: "text", Text: "mine"}},
	}
	got := Summarize(msgs)
	if len(got) != 1 {
		t.Fatalf("got %d summaries, want 1", len(got))
	}
	if got[0].UnreadCount != 1 {
		t.Errorf("unread count = %d, want 1", got[0].UnreadCount)
	}
	if !got[0].LatestTimestamp.Equal(ts(3)) {
		t.Errorf("latest timestamp = %v, want %v", got[0].LatestTimestamp, ts(3))
	}
}

func TestSummarizeNonTextPlaceholder(t *testing.T) {
	msgs := []Message{
		{ID: "m1", ChatID: "a", Timestamp: ts(1), Content: Content{Type: "image"}},
	}
	got := Summarize(msgs)
	if got[0].LatestMessage != "[image]" {
		t.Errorf("latest message = %q, want %q", got[0].LatestMessage, "[image]")
	}
}

func TestSummarizeOrdering(t *testing.T) {
	msgs := []Message{
		textMsg("m1", "old", 1, "a"),
		textMsg("m2", "new", 9, "b"),
		textMsg("m3", "mid", 5, "c"),
		textMsg("m4", "mid2", 5, "d"),
	}
	got := Summarize(msgs)
	wantOrder := []string{"new", "mid", "mid2", "old"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d summaries, want %d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].ChatID != want {
			t.Errorf("position %d: chat = %q, want %q", i, got[i].ChatID, want)
		}
	}
}

func TestSummarizeGroupFlag(t *testing.T) {
	msgs := []Message{
		{ID: "m1", ChatID: "g", Timestamp: ts(1), IsGroup: true, Content: Content{Type: "text", Text: "x"}},
	}
	got := Summarize(msgs)
	if !got[0].IsGroup {
		t.Error("IsGroup = false, want true")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); len(got) != 0 {
		t.Errorf("got %d summaries, want 0", len(got))
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	msgs := []Message{
		textMsg("m2", "a", 2, "two"),
		textMsg("m1", "a", 1, "one"),
	}
	Summarize(msgs)
	if msgs[0].ID != "m2" || msgs[1].ID != "m1" {
		t.Error("input slice was reordered")
	}
}
