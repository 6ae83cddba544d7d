package pipeline

import (
	"github.com/scribedesk/scribedesk/internal/analyzer"
	"github.com/scribedesk/scribedesk/internal/config"
	"github.com/scribedesk/scribedesk/internal/logger"
	"github.com/scribedesk/scribedesk/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	analyzer    analyzer.Analyzer
	logger      logger.Logger
}

// New creates a Pipeline writing results into cfg.Paths.Output.
func New(cfg *config.Config, tr transcriber.Transcriber, an analyzer.Analyzer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		transcriber: tr,
		analyzer:    an,
		logger:      log,
	}
}
