package services

import (
	"fmt"
	"time"

	"github.com/natindo/voicecal/internal/models"
)

// Layouts the model is allowed to answer in. RFC 3339 first since the
// prompt asks for it; the rest cover the zone-less and date-only forms
// models fall back to anyway.
var proposalLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Normalize resolves a proposal's timing into a complete range.
// Pure function; now supplies the clock for the no-start default.
//
// Missing timezone defaults to UTC. A missing start becomes the next
// full hour after now; a missing end becomes start plus one hour. An
// explicitly supplied end must be strictly after start.
func Normalize(p models.EventProposal, now time.Time) (models.NormalizedEvent, error) {
	tz := p.Timezone
	if tz == "" {
		tz = "UTC"
	}

	var (
		ev       models.NormalizedEvent
		start    time.Time
		endGiven bool
	)

	if p.Start != "" {
		t, err := parseProposalTime(p.Start)
		if err != nil {
			return ev, fmt.Errorf("start %q: %w", p.Start, err)
		}
		start = t
	} else {
		start = nextFullHour(now)
	}

	end := start.Add(time.Hour)
	if p.End != "" {
		t, err := parseProposalTime(p.End)
		if err != nil {
			return ev, fmt.Errorf("end %q: %w", p.End, err)
		}
		end = t
		endGiven = true
	}

	if endGiven && !end.After(start) {
		return ev, fmt.Errorf("end %s is not after start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	ev.Start = start.UTC()
	ev.End = end.UTC()
	ev.Timezone = tz
	return ev, nil
}

// nextFullHour zeroes the sub-hour part of t's wall clock and advances
// one hour. Works on the wall clock rather than the absolute timeline
// so zones with fractional-hour offsets still land on :00.
func nextFullHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location()).Add(time.Hour)
}

func parseProposalTime(s string) (time.Time, error) {
	for _, layout := range proposalLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}
