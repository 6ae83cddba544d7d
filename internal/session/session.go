package session

import (
	"path/filepath"
	"strings"

	"github.com/scribedesk/scribedesk/internal/analyzer"
)

// State is the in-memory record of the current working session: the
// selected file, its transcript, and the analysis derived from it. It is
// owned by the shell, replaced wholesale on each new file selection, and
// never persisted.
type State struct {
	FilePath   string
	Transcript string
	Analysis   *analyzer.Result
}

// SetFile starts a new session for path, discarding any previous
// transcript and analysis.
func (s *State) SetFile(path string) {
	*s = State{FilePath: path}
}

// SetTranscript records a completed transcription and invalidates any
// analysis of the previous transcript.
func (s *State) SetTranscript(text string) {
	s.Transcript = text
	s.Analysis = nil
}

// Reset clears the session entirely.
func (s *State) Reset() {
	*s = State{}
}

func (s *State) CanSave() bool {
	return s.FilePath != "" && s.Transcript != ""
}

func (s *State) CanAnalyze() bool {
	return s.Transcript != ""
}

func (s *State) CanExport() bool {
	return s.CanSave() && s.Analysis != nil
}

// ExportName derives a default export filename from the session's source
// file: base name with the extension replaced by suffix.
func (s *State) ExportName(suffix string) string {
	base := filepath.Base(s.FilePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + suffix
}
