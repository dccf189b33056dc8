package speech

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecognizer is a test double for the upstream engine.
type fakeRecognizer struct {
	available bool
	text      string
	err       error
	blockOn   context.Context // when set, Recognize waits for ctx cancellation
}

func (f *fakeRecognizer) Available(ctx context.Context) bool {
	return f.available
}

func (f *fakeRecognizer) Recognize(ctx context.Context, audio []byte, languageTag string) (string, error) {
	if f.blockOn != nil {
		<-ctx.Done()
		return "", &RecognitionError{Reason: "cancelled", Err: ctx.Err()}
	}
	return f.text, f.err
}

func collectEvents(t *testing.T, s *Session) []Event {
	t.Helper()
	var events []Event
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("session did not terminate")
		}
	}
}

func TestStartListening_Success(t *testing.T) {
	r := &fakeRecognizer{available: true, text: "spent 25 dollars on lunch"}
	s := StartListening(context.Background(), r, []byte{1, 2, 3}, "en-US")

	events := collectEvents(t, s)
	require.Len(t, events, 1, "exactly one terminal event")
	assert.Equal(t, "spent 25 dollars on lunch", events[0].Text)
	assert.NoError(t, events[0].Err)
}

func TestStartListening_RecognitionError(t *testing.T) {
	wantErr := &RecognitionError{Reason: "network error"}
	r := &fakeRecognizer{available: true, err: wantErr}
	s := StartListening(context.Background(), r, []byte{1}, "en-US")

	events := collectEvents(t, s)
	require.Len(t, events, 1)
	var recErr *RecognitionError
	assert.ErrorAs(t, events[0].Err, &recErr)
	assert.Equal(t, "network error", recErr.Reason)
}

func TestStartListening_Unavailable(t *testing.T) {
	r := &fakeRecognizer{available: false}
	s := StartListening(context.Background(), r, []byte{1}, "en-US")

	events := collectEvents(t, s)
	require.Len(t, events, 1)
	require.Error(t, events[0].Err)
	assert.Contains(t, events[0].Err.Error(), "not available")
}

func TestStartListening_CancelReleasesCall(t *testing.T) {
	r := &fakeRecognizer{available: true, blockOn: context.Background()}
	s := StartListening(context.Background(), r, []byte{1}, "en-US")

	s.Cancel()
	s.Cancel() // idempotent

	events := collectEvents(t, s)
	require.Len(t, events, 1)
	require.Error(t, events[0].Err)
	assert.ErrorIs(t, events[0].Err, context.Canceled)
}

func TestRecognitionError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &RecognitionError{Reason: "request failed", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "request failed")
	assert.Contains(t, err.Error(), "boom")
}

func TestGoogleRecognizer_EmptyAudio(t *testing.T) {
	g := &GoogleRecognizer{}
	_, err := g.Recognize(context.Background(), nil, "en-US")

	var recErr *RecognitionError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "no audio captured", recErr.Reason)
}

func TestGoogleRecognizer_AvailableNilService(t *testing.T) {
	var g *GoogleRecognizer
	assert.False(t, g.Available(context.Background()))
}
