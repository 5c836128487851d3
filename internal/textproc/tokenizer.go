package textproc

import "strings"

// Tokenizer provides the token accounting used for chunk budgets. Chunk
// boundaries are only as accurate as this accounting: to honor a
// summarization model's true input limit, inject the model's own
// tokenizer here.
type Tokenizer interface {
	// Count returns the number of tokens in text.
	Count(text string) int

	// Truncate returns text cut down to at most maxTokens tokens.
	Truncate(text string, maxTokens int) string
}

// WordTokenizer approximates tokens as whitespace-separated words. It is
// the default when the downstream model's tokenizer is not available
// out-of-process; pair it with a conservative chunk budget.
type WordTokenizer struct{}

func NewWordTokenizer() WordTokenizer {
	return WordTokenizer{}
}

func (WordTokenizer) Count(text string) int {
	return len(strings.Fields(text))
}

func (WordTokenizer) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	fields := strings.Fields(text)
	if len(fields) <= maxTokens {
		return strings.TrimSpace(text)
	}
	return strings.Join(fields[:maxTokens], " ")
}
