package speech

import "context"

// Event is the terminal outcome of a listening session. Exactly one of Text
// or Err is meaningful.
type Event struct {
	Text string
	Err  error
}

// Session is a single-shot listening session: it emits exactly one terminal
// event on Events and then closes the channel. Cancel releases the
// underlying recognition call; it is safe to call more than once.
type Session struct {
	events chan Event
	cancel context.CancelFunc
}

// StartListening begins one recognition pass over the clip. The recognizer
// call is released on every exit path, including cancellation.
func StartListening(ctx context.Context, r Recognizer, audio []byte, languageTag string) *Session {
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		events: make(chan Event, 1),
		cancel: cancel,
	}

	go func() {
		defer close(s.events)
		defer cancel()

		if !r.Available(ctx) {
			s.events <- Event{Err: &RecognitionError{Reason: "speech recognition not available"}}
			return
		}

		text, err := r.Recognize(ctx, audio, languageTag)
		if err != nil {
			s.events <- Event{Err: err}
			return
		}
		s.events <- Event{Text: text}
	}()

	return s
}

// Events delivers the single terminal event and then closes.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Cancel aborts the in-flight recognition call.
func (s *Session) Cancel() {
	s.cancel()
}
