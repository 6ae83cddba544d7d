package tui

import "github.com/scribedesk/scribedesk/internal/analyzer"

// Message types delivered back to the Update loop when a background call
// finishes. This is the only hand-off between worker goroutines and UI
// state.
type transcriptDoneMsg struct {
	text string
	err  error
}

type analysisDoneMsg struct {
	result *analyzer.Result
	err    error
}

type editorDoneMsg struct {
	err error
}
