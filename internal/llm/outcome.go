package llm

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

type FailureKind int

const (
	FailureUnavailable FailureKind = iota
	FailureRateLimited
	FailureUnauthorized
	FailureBadRequest
)

func (k FailureKind) String() string {
	switch k {
	case FailureRateLimited:
		return "rate_limited"
	case FailureUnauthorized:
		return "unauthorized"
	case FailureBadRequest:
		return "bad_request"
	default:
		return "unavailable"
	}
}

// Failure is a classified provider error.
type Failure struct {
	Kind       FailureKind
	HTTPStatus int
	Err        error
}

// Outcome is the result of one chat turn against the provider: either the
// reply text or a classified failure, never both.
type Outcome struct {
	Text    string
	Failure *Failure
}

func (o Outcome) OK() bool { return o.Failure == nil }

// Chat sends composed prompts to a fixed model through a Client. One
// outbound call per turn, no retry: errors are classified and handed to
// the fallback path instead of being re-sent, so a bad credential or a
// persistent 429 never loops.
type Chat struct {
	client Client
}

func NewChat(client Client) *Chat {
	return &Chat{client: client}
}

func (c *Chat) Send(ctx context.Context, prompt string) Outcome {
	resp, err := c.client.Generate(ctx, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		return Outcome{Failure: Classify(err)}
	}
	log.Printf("LLM response [model=%s, tokens: prompt=%d, completion=%d, total=%d]",
		resp.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
	return Outcome{Text: resp.Content}
}

// Classify maps a provider error onto the failure taxonomy. HTTP status
// codes win when the provider reports one; anything else (transport
// errors, DNS, timeouts, empty responses) is Unavailable.
func Classify(err error) *Failure {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	kind := FailureUnavailable
	switch {
	case status == http.StatusTooManyRequests:
		kind = FailureRateLimited
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = FailureUnauthorized
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = FailureBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		kind = FailureUnavailable
	}
	return &Failure{Kind: kind, HTTPStatus: status, Err: err}
}
