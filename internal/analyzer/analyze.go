package analyzer

import (
	"context"
	"fmt"

	"github.com/scribedesk/scribedesk/internal/prompts"
)

// Analyze renders the transcript into the prompt template, makes one
// chat-completion call, and slices out the well-known sections best-effort.
func (a *implAnalyzer) Analyze(ctx context.Context, transcript string) (*Result, error) {
	template, err := prompts.Load(a.promptPath)
	if err != nil {
		return nil, err
	}

	prompt := prompts.Render(template, transcript)

	a.logger.Info(ctx, "Requesting analysis (%d prompt characters)", len(prompt))

	text, err := a.backend.complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}

	result := &Result{
		FullText:       text,
		LearningPoints: ExtractSection(text, HeaderLearningPoints),
		QAPairs:        ExtractSection(text, HeaderQAPairs),
	}

	a.logger.Info(ctx, "Analysis completed: %d characters", len(text))
	return result, nil
}
