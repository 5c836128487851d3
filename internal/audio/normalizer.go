package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	apperr "github.com/ptquang2000/voice-summarizer/internal/errors"
)

var (
	reMaxVolume  = regexp.MustCompile(`max_volume: (-?\d+(?:\.\d+)?) dB`)
	reMeanVolume = regexp.MustCompile(`mean_volume: (-?\d+(?:\.\d+)?) dB`)
)

// Normalize converts the asset to the canonical working format: peak
// normalization, leading/trailing silence stripped below -50dBFS, uniform
// gain to a -20dBFS floor when quieter, resampled to 16kHz mono PCM WAV.
//
// Normalization sub-step failures are non-fatal: the output falls back to
// a plain decode-and-convert pass and the second return value reports the
// degraded quality. Only an undecodable input is a hard failure.
func (n *implNormalizer) Normalize(ctx context.Context, asset Asset, scratchDir string) (Asset, bool, error) {
	outPath := filepath.Join(scratchDir, "normalized.wav")

	n.logger.Info(ctx, "Normalizing audio: %s", asset.Path)

	filter, err := n.buildFilter(ctx, asset.Path)
	if err == nil {
		err = n.convert(ctx, asset.Path, outPath, filter)
	}

	degraded := false
	if err != nil {
		// Fall back to the unmodified decoded audio, converted only.
		n.logger.Warn(ctx, "Could not normalize audio, continuing with unprocessed decode: %v", err)
		degraded = true
		if err := n.convert(ctx, asset.Path, outPath, ""); err != nil {
			return Asset{}, false, apperr.Wrapf(err, apperr.KindDecode, "decode audio: %s", asset.Path)
		}
	}

	n.logger.Info(ctx, "Audio normalized: %s (%dHz, %d channel)", outPath, TargetSampleRate, TargetChannels)

	out := Asset{
		Path:       outPath,
		Format:     "wav",
		SampleRate: TargetSampleRate,
		Channels:   TargetChannels,
		Duration:   asset.Duration,
	}
	return out, degraded, nil
}

// buildFilter measures loudness with a volumedetect pass and derives the
// normalization filter chain from it.
func (n *implNormalizer) buildFilter(ctx context.Context, path string) (string, error) {
	args := []string{
		"-i", path,
		"-af", "volumedetect",
		"-f", "null",
		"-",
	}

	// volumedetect reports on stderr, even on success.
	_, stderr, err := n.executor.ExecuteCapture(ctx, n.cfg.BinaryPath, args...)
	if err != nil {
		return "", fmt.Errorf("measure loudness: %w", err)
	}

	maxVol, err := parseVolume(reMaxVolume, stderr)
	if err != nil {
		return "", fmt.Errorf("parse max_volume: %w", err)
	}
	meanVol, err := parseVolume(reMeanVolume, stderr)
	if err != nil {
		return "", fmt.Errorf("parse mean_volume: %w", err)
	}

	// Peak normalization brings the loudest sample to 0dBFS.
	peakGain := -maxVol
	if peakGain < 0 {
		peakGain = 0
	}

	// If the result is still below the loudness floor, add uniform gain.
	extraGain := 0.0
	if meanAfter := meanVol + peakGain; meanAfter < loudnessFloorDB {
		extraGain = loudnessFloorDB - meanAfter
	}

	trim := fmt.Sprintf("silenceremove=start_periods=1:start_threshold=%.0fdB", silenceThresholdDB)
	filter := fmt.Sprintf("volume=%.1fdB,%s,areverse,%s,areverse", peakGain, trim, trim)
	if extraGain > 0 {
		filter += fmt.Sprintf(",volume=%.1fdB", extraGain)
	}

	n.logger.Debug(ctx, "Loudness: max=%.1fdBFS mean=%.1fdBFS, gain=%.1fdB+%.1fdB", maxVol, meanVol, peakGain, extraGain)
	return filter, nil
}

// convert runs the resample/downmix pass, with an optional filter chain.
func (n *implNormalizer) convert(ctx context.Context, inPath, outPath, filter string) error {
	args := []string{"-i", inPath}
	if filter != "" {
		args = append(args, "-af", filter)
	}
	args = append(args,
		"-ar", strconv.Itoa(TargetSampleRate),
		"-ac", strconv.Itoa(TargetChannels),
		"-c:a", "pcm_s16le",
		"-y",
		outPath,
	)

	if _, err := n.executor.Execute(ctx, n.cfg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg convert: %w", err)
	}
	return nil
}

func parseVolume(re *regexp.Regexp, stderr string) (float64, error) {
	m := re.FindStringSubmatch(stderr)
	if m == nil {
		return 0, fmt.Errorf("volume not reported")
	}
	return strconv.ParseFloat(m[1], 64)
}
