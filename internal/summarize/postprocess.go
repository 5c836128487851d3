package summarize

import (
	"regexp"
	"strings"
)

const (
	executiveHeader   = "**Executive Summary:**"
	actionItemsHeader = "**Action Items:**"
	decisionsHeader   = "**Decisions Made:**"

	// minBulletChars is the fragment length floor; shorter sentence
	// fragments never become bullets.
	minBulletChars = 10
)

var (
	reSplitSentences = regexp.MustCompile(`[.!?]+`)

	// Obligation/intent phrasing. Each match is the phrase plus the word
	// that follows it.
	reActionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bneed to \w+`),
		regexp.MustCompile(`(?i)\bshould \w+`),
		regexp.MustCompile(`(?i)\bwill \w+`),
		regexp.MustCompile(`(?i)\bmust \w+`),
		regexp.MustCompile(`(?i)\bplan to \w+`),
	}

	// Decision-indicating phrasing.
	reDecisionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bdecided to \w+`),
		regexp.MustCompile(`(?i)\bagreed to \w+`),
		regexp.MustCompile(`(?i)\bchose to \w+`),
		regexp.MustCompile(`(?i)\bresolved to \w+`),
	}

	reKeywords = regexp.MustCompile(`(?i)\b(important|key|main|primary|significant|crucial)\b`)
)

// PostProcess reformats a combined summary per the config: the style
// transform runs first, then the focus transform on the styled text.
// Pure function of its inputs.
func PostProcess(text string, cfg Config) string {
	switch cfg.Style {
	case StyleBullet:
		text = formatBullets(text)
	case StyleExecutive:
		text = formatExecutive(text)
	}

	switch cfg.Focus {
	case FocusKeyPoints:
		text = emphasizeKeyPoints(text)
	case FocusActionItems:
		text = extractMatches(text, reActionPatterns, actionItemsHeader)
	case FocusDecisions:
		text = extractMatches(text, reDecisionPatterns, decisionsHeader)
	}

	return text
}

// formatBullets turns sentences into a bulleted list, one per line,
// dropping fragments at or below the length floor.
func formatBullets(text string) string {
	var bullets []string
	for _, sentence := range reSplitSentences.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) > minBulletChars {
			bullets = append(bullets, "• "+sentence)
		}
	}
	return strings.Join(bullets, "\n")
}

func formatExecutive(text string) string {
	return executiveHeader + "\n\n" + text
}

// emphasizeKeyPoints wraps whole-word keyword occurrences in emphasis
// markers, preserving the original casing.
func emphasizeKeyPoints(text string) string {
	return reKeywords.ReplaceAllString(text, "**$1**")
}

// extractMatches collects pattern matches and, when any exist, replaces
// the entire text with a bulleted list under the header. Without matches
// the styled text passes through unchanged. The replacement is lossy on
// purpose: non-matching content is discarded.
func extractMatches(text string, patterns []*regexp.Regexp, header string) string {
	var found []string
	for _, re := range patterns {
		found = append(found, re.FindAllString(text, -1)...)
	}

	if len(found) == 0 {
		return text
	}

	lines := make([]string, 0, len(found)+1)
	lines = append(lines, header)
	for _, m := range found {
		lines = append(lines, "• "+m)
	}
	return strings.Join(lines, "\n")
}
