package models

import "encoding/json"

// Roles used in a prompt sequence.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message             string        `json:"message"`
	Context             string        `json:"context,omitempty"`
	ConversationHistory []ChatMessage `json:"conversationHistory,omitempty"`
}

// ChatResponse is the reply relayed from the completion provider. Response
// holds the provider's content as sent, usually a JSON string.
type ChatResponse struct {
	Response json.RawMessage `json:"response"`
	Status   string          `json:"status"`
}

const StatusSuccess = "success"
