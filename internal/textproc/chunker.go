package textproc

import (
	"regexp"
	"strings"
)

var reSentenceEnd = regexp.MustCompile(`[.!?]+`)

// Chunk is a token-bounded contiguous slice of source text, processed
// independently by the summarization model. Chunks are ordered and
// non-overlapping; their concatenation reconstructs the source modulo
// whitespace normalization.
type Chunk struct {
	Index int
	Text  string
}

// Chunker splits long text into token-bounded chunks on sentence
// boundaries.
type Chunker struct {
	tok       Tokenizer
	maxTokens int
}

// NewChunker creates a Chunker with the given tokenizer and per-chunk
// token budget.
func NewChunker(tok Tokenizer, maxTokens int) *Chunker {
	return &Chunker{tok: tok, maxTokens: maxTokens}
}

// Chunk splits text into chunks, never returning an empty slice. Empty or
// whitespace-only input yields a single empty chunk. Text within the
// budget is returned as one chunk, unchanged. Otherwise sentences are
// accumulated greedily; a single sentence over the budget is truncated at
// the token level, an accepted loss.
func (c *Chunker) Chunk(text string) []Chunk {
	if strings.TrimSpace(text) == "" {
		return []Chunk{{Index: 0, Text: ""}}
	}

	if c.tok.Count(text) <= c.maxTokens {
		return []Chunk{{Index: 0, Text: text}}
	}

	var chunks []Chunk
	current := ""

	appendChunk := func(s string) {
		chunks = append(chunks, Chunk{Index: len(chunks), Text: strings.TrimSpace(s)})
	}

	for _, sentence := range reSentenceEnd.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		test := current + sentence + ". "
		if c.tok.Count(test) <= c.maxTokens {
			current = test
			continue
		}

		if current != "" {
			appendChunk(current)
		}

		if c.tok.Count(sentence+". ") > c.maxTokens {
			// Sentence alone exceeds the budget; truncate it.
			appendChunk(c.tok.Truncate(sentence, c.maxTokens))
			current = ""
			continue
		}
		current = sentence + ". "
	}

	if current != "" {
		appendChunk(current)
	}

	if len(chunks) == 0 {
		return []Chunk{{Index: 0, Text: ""}}
	}
	return chunks
}
