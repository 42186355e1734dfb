package bot

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NewBot initializes the Telegram client and registers the bot commands.
func NewBot(token string, logger *slog.Logger) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	api.Debug = false

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "help", Description: "How to use the bot"},
	}
	if _, err := api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		return nil, fmt.Errorf("failed to set commands: %w", err)
	}

	logger.Info("Bot initialized.", "username", api.Self.UserName)
	return api, nil
}

// Run reads updates until the channel closes. Each update is handled in
// its own goroutine; handlers share only immutable clients, so updates
// from different chats never block each other.
func Run(api *tgbotapi.BotAPI, handler *Handler) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := api.GetUpdatesChan(u)
	for update := range updates {
		go handler.HandleUpdate(update)
	}
	return nil
}
