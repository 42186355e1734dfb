package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the process needs, read once at startup.
// All credentials come from the environment; main loads a .env file
// beforehand so local runs work the same way.
type Config struct {
	// TelegramToken is the bot token issued by BotFather.
	TelegramToken string

	// OpenAIKey authenticates both the transcription and the
	// chat-completion calls.
	OpenAIKey string

	// OpenAIModel is the chat model used for event extraction.
	OpenAIModel string

	// CalendarID is the Google Calendar the events are written to.
	CalendarID string

	// ServiceAccountEmail and PrivateKey drive the service-account JWT
	// flow. The key arrives newline-escaped (\n) in the env var and is
	// unescaped here.
	ServiceAccountEmail string
	PrivateKey          string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads the configuration from the environment. A missing required
// variable is a startup error; the caller is expected to abort before
// attaching any listener.
func Load() (*Config, error) {
	cfg := &Config{
		TelegramToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:         os.Getenv("OPENAI_MODEL"),
		CalendarID:          os.Getenv("GOOGLE_CALENDAR_ID"),
		ServiceAccountEmail: os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
		PrivateKey:          strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
	}

	var missing []string
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if cfg.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if cfg.ServiceAccountEmail == "" {
		missing = append(missing, "GOOGLE_SERVICE_ACCOUNT_EMAIL")
	}
	if cfg.PrivateKey == "" {
		missing = append(missing, "GOOGLE_PRIVATE_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
