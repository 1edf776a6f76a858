// Package assistant drives one conversation turn end to end: record the
// user message, compose the grounded prompt, call the model, and append
// either the reply or a local fallback.
package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"bookbot/internal/catalog"
	"bookbot/internal/conversation"
	"bookbot/internal/fallback"
	"bookbot/internal/llm"
	"bookbot/internal/prompt"
)

// Sender is the single outbound call per turn.
type Sender interface {
	Send(ctx context.Context, prompt string) llm.Outcome
}

// Service owns one session. The catalog view is captured once at session
// start; later snapshot refreshes only affect sessions created after them.
// The mutex keeps at most one send in flight and serializes Clear against
// it, so a reset can never interleave with a turn being appended.
type Service struct {
	mu           sync.Mutex
	conv         *conversation.Store
	chat         Sender
	books        []catalog.Book
	catalogBlock string
	accountBlock string

	truncated bool
}

func New(conv *conversation.Store, chat Sender, snap *catalog.Snapshot, accountBlock string) *Service {
	return &Service{
		conv:         conv,
		chat:         chat,
		books:        snap.Books(),
		catalogBlock: snap.Block(),
		accountBlock: accountBlock,
	}
}

// Send runs the full pipeline for one user message and returns the
// assistant message that was appended. Every failure path still ends in a
// renderable reply; the returned error covers only unusable input.
func (s *Service) Send(ctx context.Context, text string) (conversation.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return conversation.Message{}, fmt.Errorf("empty message")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.conv.Append(conversation.Message{Sender: conversation.SenderUser, Text: text}); err != nil {
		log.Printf("failed to persist user message: %v", err)
	}

	windowed, truncated := s.conv.Windowed()
	s.truncated = truncated

	out := s.chat.Send(ctx, prompt.Compose(s.catalogBlock, s.accountBlock, windowed))

	var msg conversation.Message
	if out.OK() && strings.TrimSpace(out.Text) != "" {
		msg = conversation.Message{Sender: conversation.SenderAssistant, Text: out.Text}
	} else {
		kind := llm.FailureUnavailable
		if out.Failure != nil {
			kind = out.Failure.Kind
			log.Printf("provider failure (%s, http %d): %v", kind, out.Failure.HTTPStatus, out.Failure.Err)
		}
		msg = conversation.Message{
			Sender:   conversation.SenderAssistant,
			Text:     fallback.Reply(kind, s.books, text),
			Fallback: true,
		}
	}

	if err := s.conv.Append(msg); err != nil {
		log.Printf("failed to persist assistant message: %v", err)
	}
	return msg, nil
}

// Messages returns the visible log in insertion order.
func (s *Service) Messages() []conversation.Message {
	return s.conv.Messages()
}

// Clear resets the conversation back to the seed greeting. It waits for
// any in-flight send to finish first.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.truncated = false
	return s.conv.Reset()
}

// Truncated reports whether the last composed prompt dropped older
// messages; the UI surfaces this as a context notice.
func (s *Service) Truncated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.truncated
}
