package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteCapture returns stdout and stderr separately. FFmpeg and
	// whisper.cpp report analysis results on stderr even on success.
	ExecuteCapture(ctx context.Context, name string, args ...string) (string, string, error)
	// LookPath resolves a binary on PATH, or verifies an explicit path.
	LookPath(name string) (string, error)
}
