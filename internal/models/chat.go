package models

// Message is a single prior turn supplied by the caller.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Prompt  string    `json:"prompt"`
	History []Message `json:"history"`
}

// ChatReply is the data carried by a successful chat response.
type ChatReply struct {
	Reply string `json:"reply"`
}
