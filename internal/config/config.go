package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Intake auth
	WebAPIKey       string
	IntakeJWTSecret string

	// Telegram
	TelegramBotToken   string
	TelegramAPIBaseURL string
	ChannelChatID      int64

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	// .env is optional; deployments normally inject env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		WebAPIKey:       getEnv("WEB_API_KEY", ""),
		IntakeJWTSecret: getEnv("INTAKE_JWT_SECRET", ""),

		TelegramBotToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAPIBaseURL: getEnv("TELEGRAM_API_BASE_URL", "https://api.telegram.org"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "3001"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if raw := os.Getenv("CHANNEL_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CHANNEL_CHAT_ID %q: %w", raw, err)
		}
		cfg.ChannelChatID = chatID
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.WebAPIKey == "" {
		return fmt.Errorf("WEB_API_KEY is required")
	}
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if c.ChannelChatID == 0 {
		return fmt.Errorf("CHANNEL_CHAT_ID is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
