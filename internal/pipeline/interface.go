package pipeline

import (
	"context"
	"time"

	"github.com/ptquang2000/voice-summarizer/internal/summarize"
	"github.com/ptquang2000/voice-summarizer/internal/transcribe"
)

// Report describes a completed pipeline run.
type Report struct {
	RunID        string
	Input        string
	Transcript   transcribe.Transcript
	Summary      summarize.Result
	DocumentPath string
	// Degraded marks best-effort output, currently only from a failed
	// audio-normalization chain.
	Degraded bool
	Elapsed  time.Duration
}

// Runner executes the full pipeline for one audio file.
type Runner interface {
	Process(ctx context.Context, audioPath string) (Report, error)
}
