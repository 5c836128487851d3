package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	apperr "github.com/ptquang2000/voice-summarizer/internal/errors"
)

type probeOutput struct {
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
}

// Probe inspects an audio file with ffprobe and returns its properties.
func (n *implNormalizer) Probe(ctx context.Context, path string) (Asset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Asset{}, apperr.Wrapf(err, apperr.KindSourceNotFound, "audio file not found: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedFormat(ext) {
		n.logger.Debug(ctx, "Unknown container %q, attempting generic decode: %s", ext, path)
	}

	args := []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}

	out, err := n.executor.Execute(ctx, n.cfg.ProbePath, args...)
	if err != nil {
		return Asset{}, apperr.Wrapf(err, apperr.KindDecode, "unreadable audio file: %s", path)
	}

	var probed probeOutput
	if err := json.Unmarshal([]byte(out), &probed); err != nil {
		return Asset{}, apperr.Wrapf(err, apperr.KindDecode, "parse probe output for %s", path)
	}

	asset := Asset{
		Path:   path,
		Format: strings.TrimPrefix(ext, "."),
		Size:   info.Size(),
	}

	if secs, err := strconv.ParseFloat(probed.Format.Duration, 64); err == nil {
		asset.Duration = time.Duration(secs * float64(time.Second))
	}

	found := false
	for _, s := range probed.Streams {
		if s.CodecType != "audio" {
			continue
		}
		found = true
		asset.Channels = s.Channels
		if rate, err := strconv.Atoi(s.SampleRate); err == nil {
			asset.SampleRate = rate
		}
		break
	}
	if !found {
		return Asset{}, apperr.New(apperr.KindDecode, fmt.Sprintf("no audio stream in %s", path))
	}

	return asset, nil
}
