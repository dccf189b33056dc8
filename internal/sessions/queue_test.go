package sessions

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForStatus(t *testing.T, store Store, id string, want Status) *Session {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatalf("session %s never reached status %s", id, want)
		default:
		}
		got, err := store.Get(context.Background(), id)
		if err == nil && got.Status == want {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestQueue_PublishAssignsID(t *testing.T) {
	store := NewInMemoryStore()
	q := NewQueue(store, 10, 1)
	defer q.Close()

	session := &Session{Language: "en-US"}
	require.NoError(t, q.Publish(context.Background(), session))

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, StatusPending, session.Status)
	assert.False(t, session.CreatedAt.IsZero())

	got, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestQueue_PublishValidation(t *testing.T) {
	q := NewQueue(NewInMemoryStore(), 10, 1)
	defer q.Close()

	assert.Error(t, q.Publish(context.Background(), nil))
}

func TestQueue_PublishFull(t *testing.T) {
	store := NewInMemoryStore()
	q := NewQueue(store, 1, 1)
	defer q.Close()

	require.NoError(t, q.Publish(context.Background(), &Session{}))

	rejected := &Session{}
	err := q.Publish(context.Background(), rejected)
	assert.ErrorContains(t, err, "queue is full")

	// A rejected session must not linger as pending in the store.
	_, err = store.Get(context.Background(), rejected.ID)
	assert.Error(t, err)

	all, err := store.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestQueue_PublishAfterClose(t *testing.T) {
	q := NewQueue(NewInMemoryStore(), 10, 1)
	require.NoError(t, q.Close())

	err := q.Publish(context.Background(), &Session{})
	assert.ErrorContains(t, err, "queue is closed")
}

func TestQueue_ProcessSuccess(t *testing.T) {
	store := NewInMemoryStore()
	q := NewQueue(store, 10, 2)

	handler := func(ctx context.Context, s *Session) error {
		s.Transcript = "spent 25 dollars on lunch"
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, q.Start(ctx, handler))

	session := &Session{Language: "en-US", Audio: []byte{1, 2, 3}}
	require.NoError(t, q.Publish(ctx, session))

	got := waitForStatus(t, store, session.ID, StatusCompleted)
	assert.Equal(t, "spent 25 dollars on lunch", got.Transcript)
	assert.NotNil(t, got.StartedAt)
	assert.NotNil(t, got.CompletedAt)
	assert.Empty(t, got.Error)

	require.NoError(t, q.Stop(context.Background()))
}

func TestQueue_ProcessFailure(t *testing.T) {
	store := NewInMemoryStore()
	q := NewQueue(store, 10, 1)

	handler := func(ctx context.Context, s *Session) error {
		return errors.New("no speech input was recognized")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, q.Start(ctx, handler))

	session := &Session{}
	require.NoError(t, q.Publish(ctx, session))

	got := waitForStatus(t, store, session.ID, StatusFailed)
	assert.Equal(t, "no speech input was recognized", got.Error)
	assert.NotNil(t, got.CompletedAt)

	require.NoError(t, q.Stop(context.Background()))
}

func TestQueue_StartTwice(t *testing.T) {
	q := NewQueue(NewInMemoryStore(), 10, 1)
	defer q.Close()

	handler := func(ctx context.Context, s *Session) error { return nil }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, q.Start(ctx, handler))
	assert.Error(t, q.Start(ctx, handler))
	assert.Error(t, q.Start(ctx, nil))
}

func TestQueue_StopDrainsInFlight(t *testing.T) {
	store := NewInMemoryStore()
	q := NewQueue(store, 10, 1)

	var processed atomic.Int32
	handler := func(ctx context.Context, s *Session) error {
		time.Sleep(20 * time.Millisecond)
		processed.Add(1)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, q.Start(ctx, handler))

	session := &Session{}
	require.NoError(t, q.Publish(ctx, session))
	waitForStatus(t, store, session.ID, StatusRunning)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	require.NoError(t, q.Stop(stopCtx))
	assert.Equal(t, int32(1), processed.Load())
}

func TestQueue_ConcurrentPublishAndClose(t *testing.T) {
	store := NewInMemoryStore()
	q := NewQueue(store, 4, 1)

	// Publishers racing Close must only ever see "queue is closed" (or
	// "queue is full"), never a send on a closed channel.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if err := q.Publish(context.Background(), &Session{}); err != nil {
					if strings.Contains(err.Error(), "queue is closed") {
						return
					}
				}
			}
		}()
	}

	require.NoError(t, q.Close())
	wg.Wait()
}
