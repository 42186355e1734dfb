package models

// Stage errors for the voice pipeline. Each wraps the underlying cause
// so the top-level handler can log it; the user only ever sees one
// fixed apology regardless of which stage failed.

// RetrievalError means the voice file could not be resolved or downloaded.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string { return "voice retrieval: " + e.Err.Error() }
func (e *RetrievalError) Unwrap() error { return e.Err }

// TranscriptionError means the speech-to-text service refused the request.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string { return "transcription: " + e.Err.Error() }
func (e *TranscriptionError) Unwrap() error { return e.Err }

// ExtractionError means the language model call failed or returned
// something that does not decode as an event proposal.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string { return "event extraction: " + e.Err.Error() }
func (e *ExtractionError) Unwrap() error { return e.Err }

// CalendarError means the calendar service rejected the insert.
type CalendarError struct {
	Err error
}

func (e *CalendarError) Error() string { return "calendar insert: " + e.Err.Error() }
func (e *CalendarError) Unwrap() error { return e.Err }
