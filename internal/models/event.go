package models

import "time"

// EventProposal is what the language model extracts from a transcript.
// Every field is optional: the model may omit anything it could not
// infer from the spoken text. Proposals live only for the duration of
// one message-handling invocation and are never persisted.
type EventProposal struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// NormalizedEvent is a proposal with its timing fully resolved.
// Invariants: End is strictly after Start, Timezone is non-empty.
// Start and End are UTC instants; Timezone is carried separately as
// display metadata for the calendar entry and does not offset them.
type NormalizedEvent struct {
	Start    time.Time
	End      time.Time
	Timezone string
}
