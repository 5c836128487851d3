package pipeline

import (
	"fmt"

	"github.com/ptquang2000/voice-summarizer/internal/audio"
	"github.com/ptquang2000/voice-summarizer/internal/config"
	"github.com/ptquang2000/voice-summarizer/internal/document"
	"github.com/ptquang2000/voice-summarizer/internal/logger"
	"github.com/ptquang2000/voice-summarizer/internal/summarize"
	"github.com/ptquang2000/voice-summarizer/internal/transcribe"
)

type implRunner struct {
	cfg         *config.Config
	sumCfg      summarize.Config
	normalizer  audio.Normalizer
	transcriber transcribe.Adapter
	summarizer  summarize.Adapter
	assembler   document.Assembler
	logger      logger.Logger
}

// New creates a Runner wiring the pipeline stages together. The summary
// directives are parsed once from the configuration and applied to every
// run.
func New(
	cfg *config.Config,
	normalizer audio.Normalizer,
	transcriber transcribe.Adapter,
	summarizer summarize.Adapter,
	assembler document.Assembler,
	log logger.Logger,
) (Runner, error) {
	sumCfg, err := summarize.ParseConfig(cfg.Summary.Length, cfg.Summary.Style, cfg.Summary.Focus)
	if err != nil {
		return nil, fmt.Errorf("summary config: %w", err)
	}

	return &implRunner{
		cfg:         cfg,
		sumCfg:      sumCfg,
		normalizer:  normalizer,
		transcriber: transcriber,
		summarizer:  summarizer,
		assembler:   assembler,
		logger:      log,
	}, nil
}
