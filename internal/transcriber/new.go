package transcriber

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/scribedesk/scribedesk/internal/config"
	"github.com/scribedesk/scribedesk/internal/logger"
	"github.com/scribedesk/scribedesk/pkg/executor"
)

type implTranscriber struct {
	client   *openai.Client
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by the hosted Whisper API.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}

	return &implTranscriber{
		client:   openai.NewClientWithConfig(clientCfg),
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
