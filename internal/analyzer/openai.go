package analyzer

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/scribedesk/scribedesk/internal/config"
)

type openaiCompleter struct {
	client *openai.Client
	model  string
}

func newOpenAICompleter(cfg *config.Config) *openaiCompleter {
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}

	return &openaiCompleter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.OpenAI.ChatModel,
	}
}

// complete sends one system message and one user message, no retry.
func (c *openaiCompleter) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
