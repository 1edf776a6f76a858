package conversation

import "time"

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

type Message struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	// Fallback marks replies produced locally after a provider failure.
	Fallback bool `json:"fallback,omitempty"`
}
