package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ptquang2000/voice-summarizer/internal/config"
	"github.com/ptquang2000/voice-summarizer/internal/logger"
	"github.com/ptquang2000/voice-summarizer/pkg/executor"
)

var reDetectedLanguage = regexp.MustCompile(`auto-detected language: ([a-z]{2})`)

// WhisperModel implements SpeechModel on a whisper.cpp binary. One
// process is spawned per call, so concurrent use is safe.
type WhisperModel struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperModel verifies the binary and model weights exist and
// returns the model. The check runs at load time so a misconfigured
// setup surfaces as a model-acquisition failure, not mid-run.
func NewWhisperModel(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) (*WhisperModel, error) {
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("whisper model weights: %w", err)
	}
	if _, err := exec.LookPath(cfg.BinaryPath); err != nil {
		return nil, fmt.Errorf("whisper binary: %w", err)
	}
	return &WhisperModel{cfg: cfg, executor: exec, logger: log}, nil
}

// Transcribe runs whisper.cpp over the audio file and reads back the
// plain-text output it writes next to the input.
func (m *WhisperModel) Transcribe(ctx context.Context, audioPath, languageHint string) (string, string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	language := languageHint
	if language == "" {
		language = "auto"
	}

	// -ml/-mc 0 lifts segment and context limits, -bo 5 trades time for
	// accuracy on long recordings.
	args := []string{
		"-m", m.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", language,
		"-t", strconv.Itoa(m.cfg.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--output-file", outputPrefix,
	}

	m.logger.Debug(ctx, "Running whisper with %d threads: %s", m.cfg.Threads, audioPath)

	_, stderr, err := m.executor.ExecuteCapture(ctx, m.cfg.BinaryPath, args...)
	if err != nil {
		return "", "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", "", fmt.Errorf("read whisper output: %w", err)
	}

	detected := languageHint
	if languageHint == "" {
		// whisper.cpp reports the detected language on stderr.
		if match := reDetectedLanguage.FindStringSubmatch(stderr); match != nil {
			detected = match[1]
		}
	}

	return strings.TrimSpace(string(data)), detected, nil
}
