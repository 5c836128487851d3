package textproc

import (
	"regexp"
	"strings"
)

var (
	reWhitespace   = regexp.MustCompile(`\s+`)
	reStrayChars   = regexp.MustCompile(`[^\w\s.,!?;]`)
	reCaseBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
)

// Clean prepares raw transcript text for summarization: collapses
// whitespace, strips characters the model tends to mangle, and inserts a
// sentence break where a lowercase letter runs into an uppercase one.
func Clean(text string) string {
	text = reWhitespace.ReplaceAllString(text, " ")
	text = reStrayChars.ReplaceAllString(text, "")
	text = reCaseBoundary.ReplaceAllString(text, "$1. $2")
	return strings.TrimSpace(text)
}
