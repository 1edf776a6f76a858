package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"bookbot/internal/account"
	"bookbot/internal/catalog"
	"bookbot/internal/config"
	"bookbot/internal/llm"
	"bookbot/internal/scheduler"
	"bookbot/internal/storage"
	"bookbot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	store, err := storage.NewFileStorage(cfg.HistoryDir)
	if err != nil {
		log.Fatalf("failed to init history storage: %v", err)
	}

	factory := llm.NewFactory(cfg)
	client, err := factory.CreateClient(string(cfg.LLMProvider), cfg.ChatModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}
	chat := llm.NewChat(client)

	snapshot := catalog.NewSnapshot(catalog.NewClient(cfg.GatewayBaseURL), cfg.ReviewsPerItem)
	if err := snapshot.Refresh(context.Background()); err != nil {
		// Bot still starts; the advisor path covers an empty catalog until
		// the next scheduled refresh succeeds.
		log.Printf("initial catalog fetch failed: %v", err)
	}

	if cfg.SnapshotRefreshSpec != "" {
		sched := scheduler.New(snapshot.Refresh)
		if err := sched.Start(cfg.SnapshotRefreshSpec); err != nil {
			log.Printf("failed to start snapshot refresh job: %v", err)
		}
		defer sched.Stop()
	}

	accounts := account.NewClient(cfg.GatewayBaseURL)

	bot, err := telegram.New(cfg.TelegramBotToken, store, chat, snapshot, accounts, cfg.GatewayToken, cfg.Greeting, cfg.MaxContextMessages)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	bot.Start(context.Background())
}
