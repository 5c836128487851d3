package transcribe

import (
	"github.com/ptquang2000/voice-summarizer/internal/logger"
)

type implAdapter struct {
	acquire AcquireFunc
	logger  logger.Logger
}

// New creates a transcription Adapter around an injected speech model.
func New(acquire AcquireFunc, log logger.Logger) Adapter {
	return &implAdapter{
		acquire: acquire,
		logger:  log,
	}
}
