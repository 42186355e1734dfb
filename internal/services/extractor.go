package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/natindo/voicecal/internal/models"
)

// extractionPrompt is the fixed system instruction for the extraction
// call. The response_format constraint guarantees a JSON object, but
// not that it matches the proposal schema, so decoding stays guarded.
const extractionPrompt = `You extract calendar events from transcribed voice messages.
Respond with a single JSON object with these keys:
  "title": short event title (string, required),
  "start": event start as ISO-8601 (string),
  "end": event end as ISO-8601 (string),
  "description": extra details (string, optional),
  "timezone": IANA timezone name if the speaker implies one (string, optional).
If the message gives no timing, default to the next full hour today in
the speaker's timezone, or UTC if none is implied. Omit keys you cannot
fill rather than inventing values.`

// Extractor turns a transcript into a structured event proposal using
// a single chat-completion call.
type Extractor struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewExtractor creates an Extractor on top of an existing OpenAI client.
func NewExtractor(client *openai.Client, model string, logger *slog.Logger) *Extractor {
	return &Extractor{client: client, model: model, logger: logger}
}

// Extract asks the model for an event proposal. All proposal fields are
// optional; the caller decides how to fill the gaps. A response that is
// not valid JSON for the proposal shape is an ExtractionError, not a
// crash.
func (e *Extractor) Extract(ctx context.Context, transcript string) (models.EventProposal, error) {
	var proposal models.EventProposal

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionPrompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		return proposal, &models.ExtractionError{Err: fmt.Errorf("chat completion: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return proposal, &models.ExtractionError{Err: fmt.Errorf("response contains no choices")}
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &proposal); err != nil {
		return proposal, &models.ExtractionError{Err: fmt.Errorf("decode proposal: %w", err)}
	}

	e.logger.Debug("Extracted event proposal.", "title", proposal.Title, "start", proposal.Start, "end", proposal.End)
	return proposal, nil
}
