package services

import (
	"context"
	"testing"

	"corpassist-backend/internal/models"
)

func TestReply(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{"greeting", "Hi there", greetingReply},
		{"hello uppercase", "HELLO?", greetingReply},
		{"hi inside word", "this is something", greetingReply},
		{"hr question", "Who do I contact for HR issues?", hrReply},
		{"hr inside word", "three", hrReply},
		{"it support", "My PC is broken, IT please help", itReply},
		{"it inside word", "wait", itReply},
		{"greeting beats hr", "hi, hr question", greetingReply},
		{"greeting beats it", "Hello IT", greetingReply},
		{"hr beats it", "HR and IT", hrReply},
		{"fallback", "What's the weather?", "I don't have an answer for 'What's the weather?' yet, but I'm learning."},
		{"fallback keeps casing", "Parking LOT", "I don't have an answer for 'Parking LOT' yet, but I'm learning."},
		{"empty prompt", "", "I don't have an answer for '' yet, but I'm learning."},
		// strings.ToLower maps U+0130 to a plain "i", so "İT" contains "it".
		{"dotted capital I", "İT", itReply},
		{"dotted capital I greeting", "Hİ", greetingReply},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Reply(tc.prompt); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestKeywordResponder_IgnoresHistory(t *testing.T) {
	r := NewKeywordResponder()

	histories := [][]models.Message{
		nil,
		{},
		{{Role: "user", Content: "hello"}, {Role: "assistant", Content: "Contact HR"}},
		{{Role: "", Content: ""}, {Role: "system", Content: "IT IT IT"}},
	}

	for i, history := range histories {
		reply, err := r.Respond(context.Background(), models.ChatRequest{Prompt: "What's the weather?", History: history})
		if err != nil {
			t.Fatalf("history %d: unexpected error: %v", i, err)
		}
		if reply != "I don't have an answer for 'What's the weather?' yet, but I'm learning." {
			t.Fatalf("history %d: history changed the reply: %q", i, reply)
		}
	}
}
