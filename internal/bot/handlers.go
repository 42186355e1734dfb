package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"

	"github.com/natindo/voicecal/internal/models"
)

const (
	helpText = "Send me a voice message describing an event " +
		"(e.g. \"Lunch with Bob tomorrow at noon\") and I will add it to your calendar.\n" +
		"/help — show this message"

	fallbackText = "Please send me a voice message describing the event you want on your calendar."

	apologyText = "Sorry, I couldn't process that voice message. Please try again."
)

// transport is the slice of *tgbotapi.BotAPI the handler actually uses.
type transport interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

type downloader interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

type extractor interface {
	Extract(ctx context.Context, transcript string) (models.EventProposal, error)
}

type calendarWriter interface {
	Insert(ctx context.Context, p models.EventProposal) (*calendar.Event, error)
}

// Handler dispatches inbound updates. Stateless: every invocation is
// self-contained and nothing carries over between messages.
type Handler struct {
	api         transport
	downloader  downloader
	transcriber transcriber
	extractor   extractor
	calendar    calendarWriter
	logger      *slog.Logger
}

// NewHandler wires the pipeline stages together.
func NewHandler(api transport, d downloader, t transcriber, e extractor, c calendarWriter, logger *slog.Logger) *Handler {
	return &Handler{
		api:         api,
		downloader:  d,
		transcriber: t,
		extractor:   e,
		calendar:    c,
		logger:      logger,
	}
}

// HandleUpdate routes one update to the matching handler: /start greets,
// a voice attachment runs the full pipeline, anything else gets the
// fallback prompt.
func (h *Handler) HandleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	logger := h.logger.With("correlationID", uuid.NewString(), "chatID", msg.Chat.ID)

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		h.greet(msg)
	case msg.IsCommand() && msg.Command() == "help":
		h.reply(msg.Chat.ID, helpText)
	case msg.Voice != nil:
		h.handleVoice(logger, msg)
	default:
		h.reply(msg.Chat.ID, fallbackText)
	}
}

func (h *Handler) greet(msg *tgbotapi.Message) {
	text := fmt.Sprintf("Hi, %s! Send me a voice message describing an event and I will add it to your calendar.",
		SenderName(msg.From))
	h.reply(msg.Chat.ID, text)
}

// handleVoice runs Retrieval → Transcription → Extraction → Calendar
// write for one voice message. Any failure anywhere in the chain is
// logged once and answered with a single fixed apology; the user never
// sees stage-specific errors.
func (h *Handler) handleVoice(logger *slog.Logger, msg *tgbotapi.Message) {
	ctx := context.Background()

	if _, err := h.api.Request(tgbotapi.NewChatAction(msg.Chat.ID, tgbotapi.ChatTyping)); err != nil {
		logger.Warn("Failed to send typing action.", "error", err)
	}

	url, err := h.api.GetFileDirectURL(msg.Voice.FileID)
	if err != nil {
		h.apologize(logger, msg.Chat.ID, &models.RetrievalError{Err: err})
		return
	}

	audio, err := h.downloader.Fetch(ctx, url)
	if err != nil {
		h.apologize(logger, msg.Chat.ID, err)
		return
	}

	transcript, err := h.transcriber.Transcribe(ctx, audio, "voice.ogg")
	if err != nil {
		h.apologize(logger, msg.Chat.ID, err)
		return
	}

	proposal, err := h.extractor.Extract(ctx, transcript)
	if err != nil {
		h.apologize(logger, msg.Chat.ID, err)
		return
	}

	created, err := h.calendar.Insert(ctx, proposal)
	if err != nil {
		h.apologize(logger, msg.Chat.ID, err)
		return
	}

	logger.Info("Created calendar event from voice message.", "title", created.Summary)
	h.reply(msg.Chat.ID, fmt.Sprintf("You said:\n%s\n\nCreated event: %s", transcript, created.Summary))
}

func (h *Handler) apologize(logger *slog.Logger, chatID int64, err error) {
	logger.Error("Voice pipeline failed.", "error", err)
	h.reply(chatID, apologyText)
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.logger.Error("Failed to send reply.", "chatID", chatID, "error", err)
	}
}

// SenderName derives a display name from the Telegram user record:
// first name, optionally with last name, else username, else "there".
func SenderName(user *tgbotapi.User) string {
	if user == nil {
		return "there"
	}
	if user.FirstName != "" {
		if user.LastName != "" {
			return user.FirstName + " " + user.LastName
		}
		return user.FirstName
	}
	if user.UserName != "" {
		return user.UserName
	}
	return "there"
}
