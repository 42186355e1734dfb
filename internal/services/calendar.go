package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/natindo/voicecal/internal/models"
)

const (
	defaultTitle       = "New event"
	defaultDescription = "Created from a voice message."
)

// CalendarWriter inserts extracted events into a single Google Calendar
// using the service-account JWT flow. It holds no per-message state.
type CalendarWriter struct {
	service    *calendar.Service
	calendarID string
	logger     *slog.Logger
	now        func() time.Time
}

// NewCalendarWriter authenticates with the service-account credentials
// and prepares a writer for the given calendar id.
func NewCalendarWriter(ctx context.Context, email, privateKey, calendarID string, logger *slog.Logger) (*CalendarWriter, error) {
	conf := &jwt.Config{
		Email:      email,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{calendar.CalendarEventsScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &CalendarWriter{
		service:    service,
		calendarID: calendarID,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Insert normalizes the proposal's timing and writes the event.
// Empty title and description fall back to fixed literals. There is no
// idempotency key: inserting the same proposal twice creates two entries.
func (w *CalendarWriter) Insert(ctx context.Context, p models.EventProposal) (*calendar.Event, error) {
	normalized, err := Normalize(p, w.now())
	if err != nil {
		return nil, &models.CalendarError{Err: fmt.Errorf("normalize timing: %w", err)}
	}

	title := p.Title
	if title == "" {
		title = defaultTitle
	}
	description := p.Description
	if description == "" {
		description = defaultDescription
	}

	event := &calendar.Event{
		Summary:     title,
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: normalized.Start.Format(time.RFC3339),
			TimeZone: normalized.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: normalized.End.Format(time.RFC3339),
			TimeZone: normalized.Timezone,
		},
	}

	created, err := w.service.Events.Insert(w.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, &models.CalendarError{Err: err}
	}

	w.logger.Info("Inserted calendar event.", "title", title, "start", event.Start.DateTime, "calendarID", w.calendarID)
	return created, nil
}
