package summarize

import (
	"context"
	"strings"

	apperr "github.com/ptquang2000/voice-summarizer/internal/errors"
	"github.com/ptquang2000/voice-summarizer/internal/textproc"
)

// TooShortMessage is returned without invoking the model when the input
// is below the minimum viable length.
const TooShortMessage = "Text too short to summarize effectively."

// NoSummaryMessage is returned when every chunk generation succeeded but
// yielded no usable text.
const NoSummaryMessage = "Could not generate summary."

// minViableChars is the input length below which summarization is not
// worth a model call.
const minViableChars = 50

// Summarize produces a summary of the transcript under the given config:
// clean, chunk, summarize each chunk, join in order, then post-process.
//
// Individual chunk failures are skipped with a warning; the run only
// fails when every chunk fails.
func (a *implAdapter) Summarize(ctx context.Context, transcript string, cfg Config) (Result, error) {
	if len(strings.TrimSpace(transcript)) < minViableChars {
		return Result{Text: TooShortMessage, Config: cfg}, nil
	}

	cleaned := textproc.Clean(transcript)
	chunks := a.chunker.Chunk(cleaned)
	bounds := cfg.Length.Bounds()

	model, err := a.acquire(ctx)
	if err != nil {
		return Result{}, apperr.Wrap(err, apperr.KindModelUnavailable, "acquire summarization model")
	}

	a.logger.Info(ctx, "Summarizing %d chunk(s), bounds %d-%d tokens", len(chunks), bounds.MinTokens, bounds.MaxTokens)

	var parts []string
	failed := 0
	for _, chunk := range chunks {
		summary, err := model.Generate(ctx, chunk.Text, bounds)
		if err != nil {
			a.logger.Warn(ctx, "Chunk %d summarization failed, skipping: %v", chunk.Index, err)
			failed++
			continue
		}
		if summary = strings.TrimSpace(summary); summary != "" {
			parts = append(parts, summary)
		}
	}

	if len(parts) == 0 {
		if failed == len(chunks) {
			return Result{}, apperr.Newf(apperr.KindSummarizationFailed, "all %d chunk(s) failed to summarize", len(chunks))
		}
		a.logger.Warn(ctx, "Model produced no usable text for any of %d chunk(s)", len(chunks))
		return Result{Text: NoSummaryMessage, Config: cfg}, nil
	}

	combined := strings.Join(parts, " ")
	final := PostProcess(combined, cfg)

	if strings.HasPrefix(final, actionItemsHeader) || strings.HasPrefix(final, decisionsHeader) {
		a.logger.Warn(ctx, "Focus %s extracted matching spans only, non-matching summary content was discarded", cfg.Focus)
	}

	return Result{Text: final, Config: cfg}, nil
}
