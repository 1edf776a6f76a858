package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`

	// Bookstore gateway. The token marks the deployment as an
	// authenticated shopper session; empty means signed-out and the
	// order/cart APIs are never called.
	GatewayBaseURL string `env:"GATEWAY_BASE_URL" envDefault:"http://localhost:9000"`
	GatewayToken   string `env:"GATEWAY_TOKEN"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	ChatModel        string      `env:"CHAT_MODEL" envDefault:"gemini-2.0-flash"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Conversation context
	MaxContextMessages int    `env:"MAX_CONTEXT_MESSAGES" envDefault:"20"`
	ReviewsPerItem     int    `env:"REVIEWS_PER_ITEM" envDefault:"3"`
	Greeting           string `env:"CHAT_GREETING" envDefault:"Hello! I'm your personal book advisor. I can help you find books from our current inventory. What kind of books are you interested in?"`

	// Storage
	HistoryDir string `env:"HISTORY_DIR" envDefault:"data/history"`

	// Catalog snapshot refresh; empty disables the cron job
	SnapshotRefreshSpec string `env:"SNAPSHOT_REFRESH_SPEC" envDefault:"0 4 * * *"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
