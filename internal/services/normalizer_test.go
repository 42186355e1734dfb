package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/natindo/voicecal/internal/models"
	"github.com/natindo/voicecal/internal/services"
)

func TestNormalizeKeepsExplicitRange(t *testing.T) {
	p := models.EventProposal{
		Start: "2024-01-01T10:00:00Z",
		End:   "2024-01-01T12:30:00Z",
	}

	ev, err := services.Normalize(p, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC), ev.End)
	assert.Equal(t, "UTC", ev.Timezone)
}

func TestNormalizeKeepsSuppliedTimezone(t *testing.T) {
	p := models.EventProposal{
		Start:    "2024-01-01T10:00:00Z",
		Timezone: "Europe/Berlin",
	}

	ev, err := services.Normalize(p, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", ev.Timezone)
}

func TestNormalizeDefaultsEndToOneHourAfterStart(t *testing.T) {
	p := models.EventProposal{Start: "2024-01-01T10:00:00Z"}

	ev, err := services.Normalize(p, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC), ev.End)
}

func TestNormalizeEmptyProposalStartsAtNextFullHour(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 27, 42, 123456789, time.UTC)

	ev, err := services.Normalize(models.EventProposal{}, now)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC), ev.End)
	assert.Equal(t, "UTC", ev.Timezone)
}

func TestNormalizeOnTheHourStillAdvances(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	ev, err := services.Normalize(models.EventProposal{}, now)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), ev.Start)
}

func TestNormalizeIsIdempotentForFullProposals(t *testing.T) {
	p := models.EventProposal{
		Start:    "2024-06-01T08:00:00Z",
		End:      "2024-06-01T09:15:00Z",
		Timezone: "America/New_York",
	}

	// now differs between calls; a fully specified proposal must not
	// depend on it.
	first, err1 := services.Normalize(p, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	second, err2 := services.Normalize(p, time.Date(2030, 12, 31, 23, 59, 0, 0, time.UTC))

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestNormalizeAcceptsZonelessLayouts(t *testing.T) {
	cases := []string{
		"2024-01-02T15:04:05",
		"2024-01-02 15:04:05",
		"2024-01-02T15:04",
		"2024-01-02 15:04",
		"2024-01-02",
	}
	for _, c := range cases {
		_, err := services.Normalize(models.EventProposal{Start: c}, time.Now())
		assert.NoError(t, err, "layout %q", c)
	}
}

func TestNormalizeRejectsInvertedRange(t *testing.T) {
	p := models.EventProposal{
		Start: "2024-01-01T12:00:00Z",
		End:   "2024-01-01T10:00:00Z",
	}

	_, err := services.Normalize(p, time.Now())

	assert.Error(t, err)
}

func TestNormalizeRejectsZeroLengthRange(t *testing.T) {
	p := models.EventProposal{
		Start: "2024-01-01T12:00:00Z",
		End:   "2024-01-01T12:00:00Z",
	}

	_, err := services.Normalize(p, time.Now())

	assert.Error(t, err)
}

func TestNormalizeRejectsUnparseableDates(t *testing.T) {
	_, err := services.Normalize(models.EventProposal{Start: "next Tuesday-ish"}, time.Now())
	assert.Error(t, err)

	_, err = services.Normalize(models.EventProposal{Start: "2024-01-01T10:00:00Z", End: "garbage"}, time.Now())
	assert.Error(t, err)
}
