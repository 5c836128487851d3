package summarize

import (
	"github.com/ptquang2000/voice-summarizer/internal/logger"
	"github.com/ptquang2000/voice-summarizer/internal/textproc"
)

type implAdapter struct {
	acquire AcquireFunc
	chunker *textproc.Chunker
	logger  logger.Logger
}

// New creates a summarization Adapter. The model is acquired lazily per
// run through acquire; chunking uses the supplied chunker.
func New(acquire AcquireFunc, chunker *textproc.Chunker, log logger.Logger) Adapter {
	return &implAdapter{
		acquire: acquire,
		chunker: chunker,
		logger:  log,
	}
}
