package summarize

import "context"

// Model is an injected summarization model capability. Generate returns
// one summary for the given text, decoded deterministically within the
// token bounds.
type Model interface {
	Generate(ctx context.Context, text string, bounds Bounds) (string, error)
}

// AcquireFunc acquires the summarization model, typically through the
// process-wide registry.
type AcquireFunc func(ctx context.Context) (Model, error)

// Result is a final summary, traceable to the config that produced it.
type Result struct {
	Text   string
	Config Config
}

// Adapter turns a transcript into a styled, focused summary.
type Adapter interface {
	Summarize(ctx context.Context, transcript string, cfg Config) (Result, error)
}
