package analyzer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/scribedesk/scribedesk/internal/config"
	"github.com/scribedesk/scribedesk/internal/logger"
)

type geminiCompleter struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

func newGeminiCompleter(cfg *config.Config, log logger.Logger) *geminiCompleter {
	return &geminiCompleter{
		apiKeys: cfg.Gemini.APIKeys,
		model:   cfg.Gemini.Model,
		logger:  log,
	}
}

// complete calls Gemini, rotating to the next API key on quota errors.
// Gemini has no separate system role here, so the instruction is folded into
// the prompt text.
func (c *geminiCompleter) complete(ctx context.Context, prompt string) (string, error) {
	full := systemInstruction + "\n\n" + prompt

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.apiKeys[c.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(full), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Gemini key %d rate limited, rotating", c.currentKey+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *geminiCompleter) rotateKey() {
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
