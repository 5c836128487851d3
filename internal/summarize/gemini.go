package summarize

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/ptquang2000/voice-summarizer/internal/logger"
)

const chunkPrompt = `Summarize the passage below in roughly %d to %d words. Write plain declarative sentences, keep the original order of ideas, and do not add headings, bullets, or commentary of your own.

Passage:
---
%s
---`

// GeminiModel implements Model on the Gemini API. Decoding is pinned to
// be deterministic (temperature 0, top-k 1); the API exposes no beam
// width, so the token bounds are enforced via MaxOutputTokens plus the
// prompt instruction.
type GeminiModel struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGeminiModel creates a Model that rotates through the supplied
// Gemini API keys on quota errors.
func NewGeminiModel(apiKeys []string, model string, log logger.Logger) (*GeminiModel, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no Gemini API keys configured")
	}
	return &GeminiModel{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}, nil
}

// Generate summarizes a single chunk within the token bounds.
func (g *GeminiModel) Generate(ctx context.Context, text string, bounds Bounds) (string, error) {
	prompt := fmt.Sprintf(chunkPrompt, bounds.MinTokens, bounds.MaxTokens, text)

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0)),
		TopK:            genai.Ptr(float32(1)),
		MaxOutputTokens: int32(bounds.MaxTokens * 4), // token bounds are word-ish; leave headroom
	}

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.nextKey(),
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			return strings.TrimSpace(out), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *GeminiModel) nextKey() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey]
}

func (g *GeminiModel) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
