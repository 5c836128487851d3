package transcribe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ptquang2000/voice-summarizer/internal/audio"
	apperr "github.com/ptquang2000/voice-summarizer/internal/errors"
)

// Transcribe runs speech recognition on the asset. An empty model result
// becomes the no-speech sentinel rather than an empty transcript; callers
// must treat it as a valid terminal state.
func (a *implAdapter) Transcribe(ctx context.Context, asset audio.Asset, languageHint string) (Transcript, error) {
	if _, err := os.Stat(asset.Path); err != nil {
		return Transcript{}, apperr.Wrapf(err, apperr.KindSourceNotFound, "audio file not found: %s", asset.Path)
	}

	model, err := a.acquire(ctx)
	if err != nil {
		return Transcript{}, apperr.Wrap(err, apperr.KindModelUnavailable, "acquire speech model")
	}

	a.logger.Info(ctx, "Transcribing: %s", asset.Path)

	text, language, err := model.Transcribe(ctx, asset.Path, languageHint)
	if err != nil {
		return Transcript{}, fmt.Errorf("transcribe %s: %w", asset.Path, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		a.logger.Info(ctx, "No speech detected in %s", asset.Path)
		return Transcript{Text: NoSpeechMessage, Language: language, NoSpeech: true}, nil
	}

	a.logger.Info(ctx, "Transcription complete: %d characters, language %q", len(text), language)
	return Transcript{Text: text, Language: language}, nil
}
