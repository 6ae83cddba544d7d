package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/scribedesk/scribedesk/internal/exporter"
	"github.com/scribedesk/scribedesk/internal/media"
)

// Process runs the full chain for one file: transcribe, save the plain-text
// transcript, analyze, export the Word analysis document.
func (p *implPipeline) Process(ctx context.Context, mediaPath string) error {
	if !media.Supported(mediaPath) {
		return fmt.Errorf("unsupported media file: %s", mediaPath)
	}

	startTime := time.Now()
	base := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))

	p.logger.Info(ctx, "Processing: %s", mediaPath)

	transcript, err := p.transcriber.Transcribe(ctx, mediaPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	txtPath := filepath.Join(p.cfg.Paths.Output, base+".txt")
	if err := exporter.SaveText(transcript, txtPath); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	p.logger.Info(ctx, "Transcript saved: %s", txtPath)

	result, err := p.analyzer.Analyze(ctx, transcript)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, base+"_analysis.docx")
	if err := exporter.ExportWord(transcript, result.FullText, docxPath); err != nil {
		return fmt.Errorf("export analysis: %w", err)
	}

	p.logger.Info(ctx, "Analysis saved: %s (took %s)", docxPath, time.Since(startTime))
	return nil
}
