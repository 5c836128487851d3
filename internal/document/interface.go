package document

import (
	"context"

	"github.com/ptquang2000/voice-summarizer/internal/summarize"
)

// Assembler renders a finished pipeline run into a formatted document.
type Assembler interface {
	// Assemble writes transcript + summary + run metadata to outPath and
	// returns the path of the generated document.
	Assemble(ctx context.Context, transcript, summary string, cfg summarize.Config, outPath string) (string, error)
}
