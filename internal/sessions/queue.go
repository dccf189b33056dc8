package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dvloznov/voice-ledger/internal/logger"
)

// Queue is an in-memory session queue backed by a buffered channel. It
// implements both Publisher and Consumer, with a worker pool draining the
// channel and a store recording lifecycle transitions for polling.
//
// The session channel is never closed; shutdown is signalled through a
// separate close channel so that a Publish racing with Close can never send
// on a closed channel.
type Queue struct {
	ch      chan *Session
	closeCh chan struct{}
	store   Store
	workers int

	mu      sync.RWMutex
	started bool
	closed  bool

	wg sync.WaitGroup
}

// NewQueue creates a queue with the given buffer size and worker count.
func NewQueue(store Store, bufferSize, workers int) *Queue {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	if workers <= 0 {
		workers = 1
	}
	return &Queue{
		ch:      make(chan *Session, bufferSize),
		closeCh: make(chan struct{}),
		store:   store,
		workers: workers,
	}
}

// Publish assigns the session an ID, records it as pending and enqueues it.
// The read lock is held across the send so Close cannot slip in between the
// closed check and the enqueue.
func (q *Queue) Publish(ctx context.Context, session *Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return fmt.Errorf("queue is closed")
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	session.Status = StatusPending
	session.CreatedAt = time.Now().UTC()

	if err := q.store.Save(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	select {
	case q.ch <- session:
		return nil
	default:
		// No worker will ever see this session; don't leave it pending.
		_ = q.store.Delete(ctx, session.ID)
		return fmt.Errorf("queue is full")
	}
}

// Start launches the worker pool. It returns immediately; workers run until
// the context is cancelled or the queue is stopped.
func (q *Queue) Start(ctx context.Context, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("handler is nil")
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return fmt.Errorf("queue is closed")
	}
	if q.started {
		q.mu.Unlock()
		return fmt.Errorf("queue already started")
	}
	q.started = true
	q.mu.Unlock()

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i, handler)
	}
	return nil
}

func (q *Queue) worker(ctx context.Context, id int, handler Handler) {
	defer q.wg.Done()

	log := logger.FromContext(ctx).With().Int("worker", id).Logger()

	for {
		select {
		case session := <-q.ch:
			q.process(ctx, log, session, handler)
		case <-q.closeCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (q *Queue) process(ctx context.Context, log zerolog.Logger, session *Session, handler Handler) {
	log.Info().Str("session_id", session.ID).Msg("Processing session")

	// 1. Mark the session as running
	now := time.Now().UTC()
	session.Status = StatusRunning
	session.StartedAt = &now
	if err := q.store.Save(ctx, session); err != nil {
		log.Error().Err(err).Str("session_id", session.ID).Msg("Failed to mark session running")
	}

	// 2. Run the handler
	err := handler(ctx, session)

	// 3. Record the terminal state
	done := time.Now().UTC()
	session.CompletedAt = &done
	if err != nil {
		session.Status = StatusFailed
		session.Error = err.Error()
		log.Warn().Err(err).Str("session_id", session.ID).Msg("Session failed")
	} else {
		session.Status = StatusCompleted
		log.Info().Str("session_id", session.ID).Msg("Session completed")
	}

	if saveErr := q.store.Save(ctx, session); saveErr != nil {
		log.Error().Err(saveErr).Str("session_id", session.ID).Msg("Failed to save session result")
	}
}

// Stop signals shutdown and waits for workers to finish their in-flight
// sessions, up to the context deadline.
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.closeCh)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for workers: %w", ctx.Err())
	}
}

// Close stops the queue. Safe to call more than once.
func (q *Queue) Close() error {
	return q.Stop(context.Background())
}

var (
	_ Publisher = (*Queue)(nil)
	_ Consumer  = (*Queue)(nil)
)
