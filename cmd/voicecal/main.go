package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"github.com/natindo/voicecal/internal/bot"
	"github.com/natindo/voicecal/internal/config"
	"github.com/natindo/voicecal/internal/services"
)

func main() {
	// Load .env first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.LogLevel)
	ctx := context.Background()

	api, err := bot.NewBot(cfg.TelegramToken, logger)
	if err != nil {
		logger.Error("Failed to initialize bot", "error", err)
		os.Exit(1)
	}

	openaiClient := openai.NewClient(cfg.OpenAIKey)

	writer, err := services.NewCalendarWriter(ctx, cfg.ServiceAccountEmail, cfg.PrivateKey, cfg.CalendarID, logger)
	if err != nil {
		logger.Error("Failed to initialize calendar writer", "error", err)
		os.Exit(1)
	}

	handler := bot.NewHandler(
		api,
		services.NewDownloader(nil, logger),
		services.NewTranscriber(openaiClient, logger),
		services.NewExtractor(openaiClient, cfg.OpenAIModel, logger),
		writer,
		logger,
	)

	logger.Info("Listening for updates.")
	if err := bot.Run(api, handler); err != nil {
		logger.Error("Bot stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
