package document

import (
	"github.com/ptquang2000/voice-summarizer/internal/logger"
)

type implAssembler struct {
	logger logger.Logger
}

// New creates a DOCX Assembler.
func New(log logger.Logger) Assembler {
	return &implAssembler{logger: log}
}
