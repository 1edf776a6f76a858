package telegram

import (
	"context"
	"fmt"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bookbot/internal/account"
	"bookbot/internal/assistant"
	"bookbot/internal/catalog"
	"bookbot/internal/conversation"
	"bookbot/internal/storage"
)

const clearCmd = "clear_history"

type Bot struct {
	api      *tgbotapi.BotAPI
	store    storage.Storage
	chat     assistant.Sender
	snapshot *catalog.Snapshot

	accounts     *account.Client
	accountToken string

	greeting   string
	maxContext int

	mu       sync.Mutex
	sessions map[int64]*session
}

// session pairs one chat with its assistant. busy implements the UI
// contract that a send blocks further input until it resolves.
type session struct {
	svc  *assistant.Service
	busy bool
}

func New(botToken string, store storage.Storage, chat assistant.Sender, snapshot *catalog.Snapshot, accounts *account.Client, accountToken string, greeting string, maxContext int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:          api,
		store:        store,
		chat:         chat,
		snapshot:     snapshot,
		accounts:     accounts,
		accountToken: accountToken,
		greeting:     greeting,
		maxContext:   maxContext,
		sessions:     make(map[int64]*session),
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			b.handleIncomingMessage(ctx, update.Message)
			continue
		}
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
	}
}

func (b *Bot) session(chatID int64) *session {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.sessions[chatID]; ok {
		return s
	}
	conv := conversation.NewStore(b.store, fmt.Sprintf("chat_%d", chatID), b.greeting, b.maxContext)
	// Order/cart context is fetched once at session start, and only when
	// the deployment carries a shopper token; otherwise the block stays in
	// its unauthenticated form.
	acct := account.Context{}
	if b.accounts != nil && b.accountToken != "" {
		acct = b.accounts.Load(context.Background(), b.accountToken)
	}
	s := &session{svc: assistant.New(conv, b.chat, b.snapshot, account.ContextBlock(acct))}
	b.sessions[chatID] = s
	return s
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("Incoming message from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	s := b.session(msg.Chat.ID)

	if msg.IsCommand() {
		b.handleCommand(s, msg)
		return
	}

	b.mu.Lock()
	if s.busy {
		b.mu.Unlock()
		b.sendPlain(msg.Chat.ID, "One moment, I'm still answering your previous message.")
		return
	}
	s.busy = true
	b.mu.Unlock()

	go func() {
		defer func() {
			b.mu.Lock()
			s.busy = false
			b.mu.Unlock()
		}()

		reply, err := s.svc.Send(ctx, msg.Text)
		if err != nil {
			log.Printf("send failed for chat %d: %v", msg.Chat.ID, err)
			return
		}
		b.sendReply(msg.Chat.ID, reply.Text)
		if s.svc.Truncated() {
			b.sendPlain(msg.Chat.ID, fmt.Sprintf("Note: only the last %d messages are used to maintain context.", b.maxContext))
		}
	}()
}

func (b *Bot) handleCommand(s *session, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendReply(msg.Chat.ID, b.greeting)
	case "clear":
		if err := s.svc.Clear(); err != nil {
			log.Printf("failed to clear history for chat %d: %v", msg.Chat.ID, err)
		}
		b.sendPlain(msg.Chat.ID, "Chat history cleared.")
	default:
		b.sendPlain(msg.Chat.ID, "I only understand /start and /clear. Just ask me about books!")
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Data == clearCmd {
		s := b.session(cb.Message.Chat.ID)
		if err := s.svc.Clear(); err != nil {
			log.Printf("failed to clear history for chat %d: %v", cb.Message.Chat.ID, err)
		}
		b.sendPlain(cb.Message.Chat.ID, "Chat history cleared.")
	}
}

// sendReply renders the assistant text through the markup pipeline and
// ships it as Telegram HTML with the clear-history button attached.
func (b *Bot) sendReply(chatID int64, text string) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Clear history", clearCmd),
		),
	)
	msgOut := tgbotapi.NewMessage(chatID, formatHTML(text))
	msgOut.ParseMode = tgbotapi.ModeHTML
	msgOut.ReplyMarkup = kb
	if _, err := b.api.Send(msgOut); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendPlain(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
