package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/scribedesk/scribedesk/internal/config"
	"github.com/scribedesk/scribedesk/internal/logger"
	"github.com/scribedesk/scribedesk/internal/pipeline"
	"github.com/scribedesk/scribedesk/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process media files dropped into the inbox directory",
	Long: `Runs headless: every supported media file created in paths.inbox is
transcribed and analyzed, and the results are written to paths.output
(<name>.txt and <name>_analysis.docx).`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}

	ctx := context.Background()
	log := logger.New(cfg.Logging.Level, os.Stdout)

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	deps := newDeps(cfg, log)
	pipe := pipeline.New(cfg, deps.Transcriber, deps.Analyzer, log)

	w, err := watcher.New(cfg.Paths.Inbox, pipe.Process, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "ScribeDesk watch mode ready")
	log.Info(ctx, "Inbox: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Watch mode stopped")
	return nil
}

// ensureDirectories creates the inbox and output directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Output,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
