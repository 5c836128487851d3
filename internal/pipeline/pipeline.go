package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Process runs the full pipeline for one audio file: probe → normalize →
// transcribe → summarize → assemble, each stage blocking until complete.
//
// Scratch audio lives in a per-run directory removed on every exit path.
// A stage that leaves no usable output aborts the run with its typed
// error; no partial document is assembled.
func (r *implRunner) Process(ctx context.Context, audioPath string) (Report, error) {
	startTime := time.Now()
	runID := uuid.NewString()[:8]

	rep := Report{RunID: runID, Input: audioPath}

	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "[%s] Processing recording: %s", runID, audioPath)
	r.logger.Info(ctx, "========================================")

	asset, err := r.normalizer.Probe(ctx, audioPath)
	if err != nil {
		return rep, fmt.Errorf("probe audio: %w", err)
	}
	r.logger.Info(ctx, "[%s] Input: %s, %dHz, %d channel(s), %s",
		runID, asset.Format, asset.SampleRate, asset.Channels, asset.Duration.Round(time.Second))

	scratchDir, err := os.MkdirTemp(r.cfg.Paths.Temp, "run-"+runID+"-*")
	if err != nil {
		return rep, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratchDir)

	normalized, degraded, err := r.normalizer.Normalize(ctx, asset, scratchDir)
	if err != nil {
		return rep, fmt.Errorf("normalize audio: %w", err)
	}
	rep.Degraded = degraded

	transcript, err := r.transcriber.Transcribe(ctx, normalized, r.cfg.Whisper.Language)
	if err != nil {
		return rep, fmt.Errorf("transcribe: %w", err)
	}
	rep.Transcript = transcript

	summary, err := r.summarizer.Summarize(ctx, transcript.Text, r.sumCfg)
	if err != nil {
		return rep, fmt.Errorf("summarize: %w", err)
	}
	rep.Summary = summary

	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	outPath := filepath.Join(r.cfg.Paths.Output, fmt.Sprintf("%s_summary_%s.docx", stem, runID))

	docPath, err := r.assembler.Assemble(ctx, transcript.Text, summary.Text, summary.Config, outPath)
	if err != nil {
		return rep, fmt.Errorf("assemble document: %w", err)
	}
	rep.DocumentPath = docPath

	if err := r.archive(ctx, audioPath); err != nil {
		r.logger.Warn(ctx, "[%s] Failed to archive input: %v", runID, err)
	}

	rep.Elapsed = time.Since(startTime)
	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "[%s] Processing completed in %s", runID, rep.Elapsed.Round(time.Millisecond))
	r.logger.Info(ctx, "[%s] Output document: %s", runID, docPath)
	if rep.Degraded {
		r.logger.Info(ctx, "[%s] Audio quality degraded, summary is best-effort", runID)
	}
	r.logger.Info(ctx, "========================================")

	return rep, nil
}

// archive moves the processed input out of the watch folder so it is not
// picked up again.
func (r *implRunner) archive(ctx context.Context, audioPath string) error {
	destPath := filepath.Join(r.cfg.Paths.Archived, filepath.Base(audioPath))
	r.logger.Debug(ctx, "Archiving input: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to archive: %w", err)
	}
	return nil
}
