package transcribe

import (
	"context"

	"github.com/ptquang2000/voice-summarizer/internal/audio"
)

// NoSpeechMessage is the sentinel transcript text for audio with no
// recognizable speech. It is a valid terminal state, not a failure.
const NoSpeechMessage = "No speech detected in the audio file."

// Transcript is the immutable output of a transcription run.
type Transcript struct {
	Text     string
	Language string // ISO code, empty when unknown
	NoSpeech bool
}

// SpeechModel is an injected speech-recognition capability. It returns
// the recognized text and, when known, the detected language code.
type SpeechModel interface {
	Transcribe(ctx context.Context, audioPath, languageHint string) (text, language string, err error)
}

// AcquireFunc acquires the speech model, typically through the
// process-wide registry.
type AcquireFunc func(ctx context.Context) (SpeechModel, error)

// Adapter turns a normalized audio asset into a Transcript.
type Adapter interface {
	Transcribe(ctx context.Context, asset audio.Asset, languageHint string) (Transcript, error)
}
