// Package speech integrates the upstream speech-to-text engine. The engine
// is an external collaborator: it turns one audio clip into one transcript
// (or one error) and is never consulted by the parser itself.
package speech

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/option"
	speechv1 "google.golang.org/api/speech/v1"
)

// DefaultLanguage is used when a session does not specify a language tag.
const DefaultLanguage = "en-US"

// RecognitionError reports a failure of the upstream engine. It is surfaced
// to users separately from parse failures: a recognition error means the
// parser never ran.
type RecognitionError struct {
	Reason string
	Err    error
}

func (e *RecognitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("speech recognition: %s: %v", e.Reason, e.Err)
	}
	return "speech recognition: " + e.Reason
}

func (e *RecognitionError) Unwrap() error {
	return e.Err
}

// Recognizer transcribes a single audio clip into text.
type Recognizer interface {
	// Available reports whether recognition can be attempted at all.
	Available(ctx context.Context) bool

	// Recognize returns the transcript for the clip. Errors are of type
	// *RecognitionError.
	Recognize(ctx context.Context, audio []byte, languageTag string) (string, error)
}

// GoogleRecognizer implements Recognizer on the Google Cloud Speech-to-Text
// REST API.
type GoogleRecognizer struct {
	svc *speechv1.Service
}

// NewGoogleRecognizer creates a recognizer using application-default
// credentials unless overridden through opts.
func NewGoogleRecognizer(ctx context.Context, opts ...option.ClientOption) (*GoogleRecognizer, error) {
	svc, err := speechv1.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech: creating service: %w", err)
	}
	return &GoogleRecognizer{svc: svc}, nil
}

// Available reports whether the underlying service client was constructed.
func (g *GoogleRecognizer) Available(ctx context.Context) bool {
	return g != nil && g.svc != nil
}

// Recognize submits one synchronous recognition request. The clip must be
// LINEAR16 PCM at 16 kHz, matching what the mobile capture layer records.
func (g *GoogleRecognizer) Recognize(ctx context.Context, audio []byte, languageTag string) (string, error) {
	if len(audio) == 0 {
		return "", &RecognitionError{Reason: "no audio captured"}
	}
	if languageTag == "" {
		languageTag = DefaultLanguage
	}

	req := &speechv1.RecognizeRequest{
		Config: &speechv1.RecognitionConfig{
			Encoding:        "LINEAR16",
			SampleRateHertz: 16000,
			LanguageCode:    languageTag,
			MaxAlternatives: 1,
		},
		Audio: &speechv1.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	resp, err := g.svc.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", &RecognitionError{Reason: "recognition request failed", Err: err}
	}

	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 && result.Alternatives[0].Transcript != "" {
			return result.Alternatives[0].Transcript, nil
		}
	}
	return "", &RecognitionError{Reason: "no speech input was recognized"}
}
