package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ptquang2000/voice-summarizer/internal/audio"
	"github.com/ptquang2000/voice-summarizer/internal/config"
	"github.com/ptquang2000/voice-summarizer/internal/logger"
	"github.com/ptquang2000/voice-summarizer/internal/summarize"
	"github.com/ptquang2000/voice-summarizer/internal/transcribe"
)

type fakeNormalizer struct {
	degraded     bool
	normalizeErr error
}

func (f *fakeNormalizer) Probe(ctx context.Context, path string) (audio.Asset, error) {
	return audio.Asset{Path: path, Format: "wav", SampleRate: 44100, Channels: 2}, nil
}

func (f *fakeNormalizer) Normalize(ctx context.Context, asset audio.Asset, scratchDir string) (audio.Asset, bool, error) {
	if f.normalizeErr != nil {
		return audio.Asset{}, false, f.normalizeErr
	}
	out := filepath.Join(scratchDir, "normalized.wav")
	if err := os.WriteFile(out, []byte("RIFF"), 0644); err != nil {
		return audio.Asset{}, false, err
	}
	return audio.Asset{Path: out, Format: "wav", SampleRate: 16000, Channels: 1}, f.degraded, nil
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, asset audio.Asset, languageHint string) (transcribe.Transcript, error) {
	if f.err != nil {
		return transcribe.Transcript{}, f.err
	}
	return transcribe.Transcript{Text: f.text, Language: "en"}, nil
}

type fakeSummarizer struct {
	err error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, transcript string, cfg summarize.Config) (summarize.Result, error) {
	if f.err != nil {
		return summarize.Result{}, f.err
	}
	return summarize.Result{Text: "a fine summary", Config: cfg}, nil
}

type fakeAssembler struct {
	calls int
}

func (f *fakeAssembler) Assemble(ctx context.Context, transcript, summary string, cfg summarize.Config, outPath string) (string, error) {
	f.calls++
	if err := os.WriteFile(outPath, []byte("docx"), 0644); err != nil {
		return "", err
	}
	return outPath, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := &config.Config{
		Whisper: config.WhisperConfig{ModelPath: "m.bin", BinaryPath: "whisper"},
		Paths: config.PathsConfig{
			Input:    filepath.Join(base, "input"),
			Output:   filepath.Join(base, "output"),
			Archived: filepath.Join(base, "archived"),
			Temp:     filepath.Join(base, "temp"),
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived, cfg.Paths.Temp} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

func writeInput(t *testing.T, cfg *config.Config) string {
	t.Helper()
	path := filepath.Join(cfg.Paths.Input, "meeting.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestRunner(t *testing.T, cfg *config.Config, n *fakeNormalizer, tr *fakeTranscriber, s *fakeSummarizer, a *fakeAssembler) Runner {
	t.Helper()
	r, err := New(cfg, n, tr, s, a, logger.New("error"))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestProcess(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, cfg)
	assembler := &fakeAssembler{}

	r := newTestRunner(t, cfg,
		&fakeNormalizer{},
		&fakeTranscriber{text: "we talked about many things"},
		&fakeSummarizer{},
		assembler,
	)

	rep, err := r.Process(context.Background(), input)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if rep.RunID == "" {
		t.Error("RunID is empty")
	}
	if rep.Summary.Text != "a fine summary" {
		t.Errorf("Summary.Text = %q", rep.Summary.Text)
	}
	if !strings.HasPrefix(filepath.Base(rep.DocumentPath), "meeting_summary_") {
		t.Errorf("DocumentPath = %q, want stem + run id naming", rep.DocumentPath)
	}
	if _, err := os.Stat(rep.DocumentPath); err != nil {
		t.Errorf("output document missing: %v", err)
	}

	// Input archived out of the watch folder.
	if _, err := os.Stat(input); !os.IsNotExist(err) {
		t.Error("input still present in watch folder after success")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "meeting.wav")); err != nil {
		t.Errorf("archived input missing: %v", err)
	}
}

func TestProcessCleansScratchDir(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, cfg)

	r := newTestRunner(t, cfg,
		&fakeNormalizer{},
		&fakeTranscriber{text: "short chat"},
		&fakeSummarizer{},
		&fakeAssembler{},
	)

	if _, err := r.Process(context.Background(), input); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	entries, err := os.ReadDir(cfg.Paths.Temp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("scratch dirs left behind: %v", entries)
	}
}

func TestProcessScratchCleanedOnFailure(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, cfg)

	r := newTestRunner(t, cfg,
		&fakeNormalizer{},
		&fakeTranscriber{err: errors.New("model exploded")},
		&fakeSummarizer{},
		&fakeAssembler{},
	)

	if _, err := r.Process(context.Background(), input); err == nil {
		t.Fatal("Process() error = nil, want transcription failure")
	}

	entries, err := os.ReadDir(cfg.Paths.Temp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("scratch dirs left behind after failure: %v", entries)
	}
}

func TestProcessNoPartialDocumentOnFailure(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, cfg)
	assembler := &fakeAssembler{}

	r := newTestRunner(t, cfg,
		&fakeNormalizer{},
		&fakeTranscriber{text: "plenty of speech to summarize"},
		&fakeSummarizer{err: errors.New("all chunks failed")},
		assembler,
	)

	if _, err := r.Process(context.Background(), input); err == nil {
		t.Fatal("Process() error = nil, want summarization failure")
	}

	if assembler.calls != 0 {
		t.Errorf("assembler called %d times after upstream failure, want 0", assembler.calls)
	}
	if _, err := os.Stat(input); err != nil {
		t.Error("failed input should stay in the watch folder, not be archived")
	}
}

func TestProcessReportsDegradedAudio(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, cfg)

	r := newTestRunner(t, cfg,
		&fakeNormalizer{degraded: true},
		&fakeTranscriber{text: "noisy recording"},
		&fakeSummarizer{},
		&fakeAssembler{},
	)

	rep, err := r.Process(context.Background(), input)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !rep.Degraded {
		t.Error("Report.Degraded = false, want true")
	}
}

func TestNewRejectsBadSummaryConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Summary.Style = "interpretive-dance"

	_, err := New(cfg, &fakeNormalizer{}, &fakeTranscriber{}, &fakeSummarizer{}, &fakeAssembler{}, logger.New("error"))
	if err == nil {
		t.Error("New() error = nil, want invalid summary config rejected")
	}
}
