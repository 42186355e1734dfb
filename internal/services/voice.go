package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/natindo/voicecal/internal/models"
)

// Downloader fetches voice-message payloads from the temporary URLs the
// transport resolves for a file id.
type Downloader struct {
	client *http.Client
	logger *slog.Logger
}

// NewDownloader creates a Downloader. A nil client falls back to
// http.DefaultClient.
func NewDownloader(client *http.Client, logger *slog.Logger) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Downloader{client: client, logger: logger}
}

// Fetch downloads the audio at url and returns the raw payload.
// Telegram serves voice notes as OGG/Opus; the caller attaches the
// filename when handing the bytes to the transcriber.
func (d *Downloader) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &models.RetrievalError{Err: err}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &models.RetrievalError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &models.RetrievalError{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.RetrievalError{Err: fmt.Errorf("read body: %w", err)}
	}

	d.logger.Debug("Downloaded voice payload.", "bytes", len(payload))
	return payload, nil
}
