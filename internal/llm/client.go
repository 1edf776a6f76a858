package llm

import "context"

// Message is one turn handed to a provider. Role follows the OpenAI
// convention ("system", "user", "assistant").
type Message struct {
	Role    string
	Content string
}

// Usage is the provider-reported token accounting for one completion.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Response is one completed generation.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}

type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
