// Package sessions tracks voice listening sessions through transcription and
// parsing. A session is the asynchronous counterpart of one microphone
// press: audio goes in, and exactly one terminal outcome comes out - a
// parsed transaction or a failure reason.
package sessions

import (
	"context"
	"time"

	"github.com/dvloznov/voice-ledger/internal/parser"
)

// Status represents the lifecycle state of a listening session.
type Status string

const (
	// StatusPending indicates the session is waiting to be processed.
	StatusPending Status = "pending"
	// StatusRunning indicates transcription/parsing is in progress.
	StatusRunning Status = "running"
	// StatusCompleted indicates a transaction was produced.
	StatusCompleted Status = "completed"
	// StatusFailed indicates recognition or parsing failed.
	StatusFailed Status = "failed"
)

// Session is one listening session from audio submission to terminal state.
type Session struct {
	// ID is the unique identifier for this session.
	ID string `json:"session_id"`

	// Language is the BCP-47 tag the audio should be recognized in.
	Language string `json:"language"`

	// Audio is the submitted clip. Never serialized back to clients.
	Audio []byte `json:"-"`

	// Categories is the caller's category set, threaded through to the
	// parser's Tier-1 matching.
	Categories []parser.Category `json:"-"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// Transcript is the recognized text, set once recognition succeeds.
	Transcript string `json:"transcript,omitempty"`

	// Transaction is the parse result for completed sessions.
	Transaction *parser.ParsedTransaction `json:"transaction,omitempty"`

	// Error holds the failure reason for failed sessions.
	Error string `json:"error,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Publisher enqueues sessions for asynchronous processing.
type Publisher interface {
	Publish(ctx context.Context, session *Session) error
	Close() error
}

// Consumer processes enqueued sessions.
type Consumer interface {
	// Start begins consuming sessions; the handler is called for each one.
	Start(ctx context.Context, handler Handler) error

	// Stop stops consuming and waits for in-flight sessions to finish.
	Stop(ctx context.Context) error
}

// Handler transcribes and parses one session. It fills Transcript and
// Transaction on the session in place; a returned error marks the session
// failed with that reason.
type Handler func(ctx context.Context, session *Session) error

// Store tracks session state for status polling.
type Store interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context, filter Filter) ([]*Session, error)
	UpdateStatus(ctx context.Context, id string, status Status, errorMsg string) error
	Delete(ctx context.Context, id string) error
}

// Filter defines criteria for listing sessions.
type Filter struct {
	// Status filters sessions by lifecycle state.
	Status Status

	// Limit limits the number of results.
	Limit int

	// Offset for pagination.
	Offset int
}
