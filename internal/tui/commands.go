package tui

import (
	"context"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scribedesk/scribedesk/internal/prompts"
)

// transcribeCmd runs the transcription call on a worker goroutine. There is
// no timeout and no cancellation: the call runs to completion or failure.
func (m Model) transcribeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		text, err := m.deps.Transcriber.Transcribe(context.Background(), path)
		return transcriptDoneMsg{text: text, err: err}
	}
}

// analyzeCmd runs the analysis call on a worker goroutine. The transcript
// is captured by value before the worker starts; the worker touches no
// shared state.
func (m Model) analyzeCmd(transcript string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.deps.Analyzer.Analyze(context.Background(), transcript)
		return analysisDoneMsg{result: result, err: err}
	}
}

// editPromptCmd opens the analysis prompt file with the platform opener so
// the user can edit it externally.
func (m Model) editPromptCmd() tea.Cmd {
	path := prompts.File(m.deps.Cfg.Paths.Prompts)

	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}

	return func() tea.Msg {
		_, err := m.deps.Executor.Execute(context.Background(), opener, path)
		return editorDoneMsg{err: err}
	}
}
