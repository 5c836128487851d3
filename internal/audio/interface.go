package audio

import "context"

// Normalizer prepares arbitrary audio input for transcription.
type Normalizer interface {
	// Probe inspects an audio file and returns its properties.
	Probe(ctx context.Context, path string) (Asset, error)

	// Normalize writes a loudness-normalized, silence-trimmed, 16kHz mono
	// WAV rendition of the asset under scratchDir. The scratch directory
	// is owned by the caller and must be cleaned up by it. The returned
	// bool reports degraded output: normalization sub-steps that fail are
	// non-fatal and fall back to a plain decode-and-convert pass.
	Normalize(ctx context.Context, asset Asset, scratchDir string) (Asset, bool, error)
}
