package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestFeedback_TableName(t *testing.T) {
	if got := (Feedback{}).TableName(); got != "feedbacks" {
		t.Fatalf("TableName = %q, want %q", got, "feedbacks")
	}
}

func TestFeedback_JSON_NullOptionalFields(t *testing.T) {
	fb := Feedback{
		ID:        7,
		Message:   "hi",
		CreatedAt: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
	}
	b, err := json.Marshal(fb)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"name":null`) {
		t.Fatalf("name should serialize as null, got %s", s)
	}
	if !strings.Contains(s, `"email":null`) {
		t.Fatalf("email should serialize as null, got %s", s)
	}
	if !strings.Contains(s, `"created_at":"2025-03-01T10:30:00Z"`) {
		t.Fatalf("created_at should be RFC3339 with zone, got %s", s)
	}
}

func TestFeedback_JSON_PresentOptionalFields(t *testing.T) {
	name, email := "Alice", "a@b.co"
	fb := Feedback{ID: 1, Name: &name, Email: &email, Message: "ok", CreatedAt: time.Now().UTC()}

	b, err := json.Marshal(fb)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["name"] != "Alice" || got["email"] != "a@b.co" {
		t.Fatalf("unexpected payload: %v", got)
	}
}
