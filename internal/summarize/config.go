package summarize

import (
	"fmt"
	"strings"
)

// Length selects how long a generated summary should be.
type Length int

const (
	LengthShort Length = iota
	LengthMedium
	LengthLong
)

// Style selects the formatting of the final summary.
type Style int

const (
	StyleParagraph Style = iota
	StyleBullet
	StyleExecutive
)

// Focus selects which semantic subset of the summary to emphasize or
// extract.
type Focus int

const (
	FocusGeneral Focus = iota
	FocusKeyPoints
	FocusActionItems
	FocusDecisions
)

// Config is the per-run summarization directive set. Immutable once
// parsed.
type Config struct {
	Length Length
	Style  Style
	Focus  Focus
}

// Bounds constrains a single summarization model invocation's output
// size, in tokens.
type Bounds struct {
	MinTokens int
	MaxTokens int
}

// Bounds returns the (min, max) token bounds for the length setting.
// Bounds are monotonically increasing across Short < Medium < Long.
func (l Length) Bounds() Bounds {
	switch l {
	case LengthShort:
		return Bounds{MinTokens: 10, MaxTokens: 50}
	case LengthLong:
		return Bounds{MinTokens: 100, MaxTokens: 300}
	default:
		return Bounds{MinTokens: 50, MaxTokens: 150}
	}
}

func (l Length) String() string {
	switch l {
	case LengthShort:
		return "short"
	case LengthLong:
		return "long"
	default:
		return "medium"
	}
}

func (s Style) String() string {
	switch s {
	case StyleBullet:
		return "bullet"
	case StyleExecutive:
		return "executive"
	default:
		return "paragraph"
	}
}

func (f Focus) String() string {
	switch f {
	case FocusKeyPoints:
		return "key_points"
	case FocusActionItems:
		return "action_items"
	case FocusDecisions:
		return "decisions"
	default:
		return "general"
	}
}

// ParseConfig builds a Config from the configuration file's string
// values.
func ParseConfig(length, style, focus string) (Config, error) {
	var cfg Config

	switch strings.ToLower(length) {
	case "short":
		cfg.Length = LengthShort
	case "medium", "":
		cfg.Length = LengthMedium
	case "long":
		cfg.Length = LengthLong
	default:
		return Config{}, fmt.Errorf("unknown summary length %q", length)
	}

	switch strings.ToLower(style) {
	case "paragraph", "":
		cfg.Style = StyleParagraph
	case "bullet":
		cfg.Style = StyleBullet
	case "executive":
		cfg.Style = StyleExecutive
	default:
		return Config{}, fmt.Errorf("unknown summary style %q", style)
	}

	switch strings.ToLower(focus) {
	case "general", "":
		cfg.Focus = FocusGeneral
	case "key_points":
		cfg.Focus = FocusKeyPoints
	case "action_items":
		cfg.Focus = FocusActionItems
	case "decisions":
		cfg.Focus = FocusDecisions
	default:
		return Config{}, fmt.Errorf("unknown summary focus %q", focus)
	}

	return cfg, nil
}
