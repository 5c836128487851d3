package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	apperr "github.com/ptquang2000/voice-summarizer/internal/errors"
	"github.com/ptquang2000/voice-summarizer/internal/logger"
	"github.com/ptquang2000/voice-summarizer/internal/summarize"
)

func TestAssemble(t *testing.T) {
	a := New(logger.New("error"))
	outPath := filepath.Join(t.TempDir(), "result.docx")

	cfg := summarize.Config{Length: summarize.LengthMedium, Style: summarize.StyleBullet, Focus: summarize.FocusGeneral}
	summary := "• The team reviewed the roadmap\n• **Action Items:** follow up on hiring"
	transcript := "We spent the first half of the meeting on the roadmap."

	path, err := a.Assemble(context.Background(), transcript, summary, cfg, outPath)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if path != outPath {
		t.Errorf("path = %q, want %q", path, outPath)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("generated document missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("generated document is empty")
	}
}

func TestAssembleBadOutputPath(t *testing.T) {
	a := New(logger.New("error"))

	_, err := a.Assemble(context.Background(), "transcript", "summary", summarize.Config{}, "/nonexistent-dir/result.docx")
	if !apperr.IsKind(err, apperr.KindAssembly) {
		t.Errorf("Assemble() error = %v, want KindAssembly", err)
	}
}
