package audio

import (
	"github.com/ptquang2000/voice-summarizer/internal/config"
	"github.com/ptquang2000/voice-summarizer/internal/logger"
	"github.com/ptquang2000/voice-summarizer/pkg/executor"
)

type implNormalizer struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Normalizer backed by ffmpeg/ffprobe.
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Normalizer {
	return &implNormalizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
