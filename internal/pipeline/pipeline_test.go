package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/scribedesk/scribedesk/internal/analyzer"
	"github.com/scribedesk/scribedesk/internal/config"
	"github.com/scribedesk/scribedesk/internal/logger"
)

type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

type stubAnalyzer struct {
	result *analyzer.Result
	err    error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, transcript string) (*analyzer.Result, error) {
	return s.result, s.err
}

func newTestPipeline(t *testing.T, tr *stubTranscriber, an *stubAnalyzer) (Pipeline, string) {
	t.Helper()
	out := t.TempDir()
	cfg := &config.Config{OpenAI: config.OpenAIConfig{APIKey: "sk-test"}}
	cfg.Paths.Output = out
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return New(cfg, tr, an, logger.New("error", &bytes.Buffer{})), out
}

func TestProcess(t *testing.T) {
	transcript := "Hello world."
	analysis := "## KEY LEARNING POINTS\n- Point A\n"

	p, out := newTestPipeline(t,
		&stubTranscriber{text: transcript},
		&stubAnalyzer{result: &analyzer.Result{FullText: analysis, LearningPoints: "- Point A"}},
	)

	src := filepath.Join(t.TempDir(), "lecture.mp3")
	if err := os.WriteFile(src, []byte("fake audio"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := p.Process(context.Background(), src); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "lecture.txt"))
	if err != nil {
		t.Fatalf("transcript not written: %v", err)
	}
	if string(data) != transcript {
		t.Errorf("transcript file = %q, want %q", data, transcript)
	}

	if _, err := os.Stat(filepath.Join(out, "lecture_analysis.docx")); err != nil {
		t.Errorf("analysis document not written: %v", err)
	}
}

func TestProcessUnsupportedFile(t *testing.T) {
	p, _ := newTestPipeline(t, &stubTranscriber{}, &stubAnalyzer{})

	if err := p.Process(context.Background(), "notes.txt"); err == nil {
		t.Error("Process() should reject unsupported files")
	}
}

func TestProcessTranscribeFailure(t *testing.T) {
	p, out := newTestPipeline(t,
		&stubTranscriber{err: errors.New("network down")},
		&stubAnalyzer{result: &analyzer.Result{FullText: "x"}},
	)

	if err := p.Process(context.Background(), "lecture.mp3"); err == nil {
		t.Error("Process() should surface transcription failures")
	}

	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Error("no output should be written when transcription fails")
	}
}

func TestProcessAnalyzeFailure(t *testing.T) {
	p, out := newTestPipeline(t,
		&stubTranscriber{text: "Hello world."},
		&stubAnalyzer{err: errors.New("quota exceeded")},
	)

	if err := p.Process(context.Background(), "lecture.mp3"); err == nil {
		t.Error("Process() should surface analysis failures")
	}

	// The transcript is still saved before analysis runs.
	if _, err := os.Stat(filepath.Join(out, "lecture.txt")); err != nil {
		t.Errorf("transcript should be saved before the analysis step: %v", err)
	}
}
