package analyzer

import (
	"context"

	"github.com/scribedesk/scribedesk/internal/config"
	"github.com/scribedesk/scribedesk/internal/logger"
	"github.com/scribedesk/scribedesk/internal/prompts"
)

// systemInstruction frames every analysis request.
const systemInstruction = "You are an expert instructional designer."

// completer is the single-call backend boundary: one rendered prompt in, one
// response text out.
type completer interface {
	complete(ctx context.Context, prompt string) (string, error)
}

type implAnalyzer struct {
	backend    completer
	promptPath string
	logger     logger.Logger
}

// New creates an Analyzer using the backend selected by llm.provider. The
// prompt template is re-read on every call so external edits take effect
// without a restart.
func New(cfg *config.Config, log logger.Logger) Analyzer {
	var backend completer
	switch cfg.LLM.Provider {
	case "gemini":
		backend = newGeminiCompleter(cfg, log)
	default:
		backend = newOpenAICompleter(cfg)
	}

	return &implAnalyzer{
		backend:    backend,
		promptPath: prompts.File(cfg.Paths.Prompts),
		logger:     log,
	}
}
