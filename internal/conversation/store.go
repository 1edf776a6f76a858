package conversation

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"bookbot/internal/storage"
)

// Store owns the ordered message log for one session. The full log is
// persisted as a JSON snapshot after every append; only the most recent
// maxContext messages are handed to prompt composition.
type Store struct {
	mu         sync.Mutex
	storage    storage.Storage
	key        string
	greeting   string
	maxContext int
	msgs       []Message
	now        func() time.Time
}

// NewStore restores the persisted log for key, falling back to a single
// seed greeting when there is no snapshot or it cannot be decoded. The log
// therefore always holds at least one message.
func NewStore(st storage.Storage, key, greeting string, maxContext int) *Store {
	s := &Store{
		storage:    st,
		key:        key,
		greeting:   greeting,
		maxContext: maxContext,
		now:        time.Now,
	}
	s.restore()
	return s
}

func (s *Store) restore() {
	data, err := s.storage.Get(s.key)
	if err == nil {
		var msgs []Message
		if jerr := json.Unmarshal(data, &msgs); jerr == nil && len(msgs) > 0 {
			s.msgs = msgs
			return
		}
		log.Printf("discarding unreadable conversation snapshot for %q", s.key)
	}
	s.msgs = []Message{s.seed()}
	if err := s.persist(); err != nil {
		log.Printf("failed to persist seed greeting: %v", err)
	}
}

func (s *Store) seed() Message {
	return Message{Sender: SenderAssistant, Text: s.greeting, CreatedAt: s.now()}
}

// Append adds a message to the log and persists the snapshot before
// returning. The message stays in the log even if persistence fails.
func (s *Store) Append(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.now()
	}
	s.msgs = append(s.msgs, msg)
	if err := s.persist(); err != nil {
		return fmt.Errorf("persist conversation: %w", err)
	}
	return nil
}

// Messages returns the full log in insertion order.
func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Windowed returns the last maxContext messages in original order. The
// second return reports whether older messages were cut off; callers must
// surface that to the user.
func (s *Store) Windowed() ([]Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxContext <= 0 || len(s.msgs) <= s.maxContext {
		out := make([]Message, len(s.msgs))
		copy(out, s.msgs)
		return out, false
	}
	tail := s.msgs[len(s.msgs)-s.maxContext:]
	out := make([]Message, len(tail))
	copy(out, tail)
	return out, true
}

// Reset replaces the log with the seed greeting. Idempotent.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = []Message{s.seed()}
	if err := s.persist(); err != nil {
		return fmt.Errorf("persist reset: %w", err)
	}
	return nil
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.msgs)
	if err != nil {
		return err
	}
	return s.storage.Set(s.key, data)
}
