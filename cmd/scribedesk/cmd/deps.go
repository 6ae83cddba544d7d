package cmd

import (
	"github.com/scribedesk/scribedesk/internal/analyzer"
	"github.com/scribedesk/scribedesk/internal/config"
	"github.com/scribedesk/scribedesk/internal/logger"
	"github.com/scribedesk/scribedesk/internal/transcriber"
	"github.com/scribedesk/scribedesk/internal/tui"
	"github.com/scribedesk/scribedesk/pkg/executor"
)

// newDeps wires the shared collaborators for both the TUI and watch mode.
func newDeps(cfg *config.Config, log logger.Logger) tui.Deps {
	exec := executor.New()

	return tui.Deps{
		Cfg:         cfg,
		Transcriber: transcriber.New(cfg, exec, log),
		Analyzer:    analyzer.New(cfg, log),
		Executor:    exec,
		Logger:      log,
	}
}
