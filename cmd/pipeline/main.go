package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ptquang2000/voice-summarizer/internal/audio"
	"github.com/ptquang2000/voice-summarizer/internal/config"
	"github.com/ptquang2000/voice-summarizer/internal/document"
	"github.com/ptquang2000/voice-summarizer/internal/logger"
	"github.com/ptquang2000/voice-summarizer/internal/pipeline"
	"github.com/ptquang2000/voice-summarizer/internal/registry"
	"github.com/ptquang2000/voice-summarizer/internal/summarize"
	"github.com/ptquang2000/voice-summarizer/internal/textproc"
	"github.com/ptquang2000/voice-summarizer/internal/transcribe"
	"github.com/ptquang2000/voice-summarizer/internal/watcher"
	"github.com/ptquang2000/voice-summarizer/pkg/executor"
)

const (
	speechModelName  = "speech"
	summaryModelName = "summary"
)

func main() {
	ctx := context.Background()

	// Secrets live in .env, everything else in config.yaml
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Voice Summarizer Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()

	// Models are expensive; the registry loads each one lazily and at
	// most once for the life of the process.
	reg := registry.New()
	reg.Register(speechModelName, func(ctx context.Context) (any, error) {
		return transcribe.NewWhisperModel(cfg.Whisper, exec, log)
	})
	reg.Register(summaryModelName, func(ctx context.Context) (any, error) {
		return summarize.NewGeminiModel(geminiKeys(), cfg.Gemini.Model, log)
	})
	defer func() {
		if err := reg.Shutdown(); err != nil {
			log.Warn(ctx, "Registry shutdown: %v", err)
		}
	}()

	acquireSpeech := func(ctx context.Context) (transcribe.SpeechModel, error) {
		v, err := reg.Get(ctx, speechModelName)
		if err != nil {
			return nil, err
		}
		return v.(transcribe.SpeechModel), nil
	}
	acquireSummary := func(ctx context.Context) (summarize.Model, error) {
		v, err := reg.Get(ctx, summaryModelName)
		if err != nil {
			return nil, err
		}
		return v.(summarize.Model), nil
	}

	normalizer := audio.New(cfg.FFmpeg, exec, log)
	transcriber := transcribe.New(acquireSpeech, log)
	chunker := textproc.NewChunker(textproc.NewWordTokenizer(), cfg.Summary.MaxChunkTokens)
	summarizer := summarize.New(acquireSummary, chunker, log)
	assembler := document.New(log)

	runner, err := pipeline.New(cfg, normalizer, transcriber, summarizer, assembler, log)
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, filePath string) error {
		_, err := runner.Process(ctx, filePath)
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Voice Summarizer is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Summary: %s / %s / %s", cfg.Summary.Length, cfg.Summary.Style, cfg.Summary.Focus)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Voice Summarizer stopped")
}

// geminiKeys reads the comma-separated GEMINI_API_KEYS environment
// variable, falling back to GEMINI_API_KEY.
func geminiKeys() []string {
	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		raw = os.Getenv("GEMINI_API_KEY")
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
