package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/natindo/voicecal/internal/models"
)

// Transcriber converts voice-message audio into text via the Whisper API.
type Transcriber struct {
	client *openai.Client
	logger *slog.Logger
}

// NewTranscriber creates a Transcriber on top of an existing OpenAI client.
func NewTranscriber(client *openai.Client, logger *slog.Logger) *Transcriber {
	return &Transcriber{client: client, logger: logger}
}

// Transcribe sends the raw audio payload to the transcription endpoint
// and returns the recognized text. An empty transcript is a valid
// result and is returned as-is. The filename only communicates the
// audio container format to the provider.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   bytes.NewReader(audio),
		FilePath: filename,
	})
	if err != nil {
		return "", &models.TranscriptionError{Err: fmt.Errorf("create transcription: %w", err)}
	}

	t.logger.Debug("Transcribed voice message.", "chars", len(resp.Text))
	return resp.Text, nil
}
