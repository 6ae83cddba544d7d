package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/scribedesk/scribedesk/internal/config"
	"github.com/scribedesk/scribedesk/internal/logger"
	"github.com/scribedesk/scribedesk/internal/prompts"
	"github.com/scribedesk/scribedesk/internal/tui"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "scribedesk",
	Short: "Transcribe and analyze audio/video files",
	Long: `ScribeDesk transcribes audio/video files with a hosted speech-to-text
API, analyzes the transcript with a chat-completion API using an editable
prompt, and exports the results to text, Word, or PDF.

Keys:
  o         Open a media file
  s         Save the transcript
  a         Analyze the transcript
  w / p     Export analysis to Word / PDF
  e         Edit the analysis prompt
  Tab       Switch tabs
  Ctrl+L    Clear the session
  q         Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to the config file")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads the config and makes sure the prompt file exists. A
// missing credential is fatal here, before any UI starts.
func bootstrap() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if err := prompts.Setup(cfg.Paths.Prompts); err != nil {
		return nil, fmt.Errorf("setup prompts: %w", err)
	}

	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Paths.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	deps := newDeps(cfg, logger.New(cfg.Logging.Level, logFile))

	p := tea.NewProgram(
		tui.NewModel(deps),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
