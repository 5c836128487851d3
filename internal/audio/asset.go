package audio

import "time"

// Asset describes an audio file flowing through the pipeline. It is
// created on ingestion by Probe and replaced by the derived asset that
// Normalize writes; the derived asset lives in the caller's scratch
// directory and is discarded after transcription.
type Asset struct {
	Path       string
	Format     string
	SampleRate int
	Channels   int
	Duration   time.Duration
	Size       int64
}

// Target parameters required by the transcription stage.
const (
	TargetSampleRate = 16000
	TargetChannels   = 1
)

// Normalization thresholds, in dBFS.
const (
	// silenceThresholdDB is the level below which leading/trailing audio
	// is treated as silence and stripped.
	silenceThresholdDB = -50.0
	// loudnessFloorDB is the minimum average loudness; quieter audio gets
	// uniform gain to reach it.
	loudnessFloorDB = -20.0
)

// supportedFormats are the containers accepted for decoding. Anything
// else is still attempted as a generic decode before failing.
var supportedFormats = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
	".aac":  true,
	".wma":  true,
}

// IsSupportedFormat reports whether the file extension is a known container.
func IsSupportedFormat(ext string) bool {
	return supportedFormats[ext]
}
