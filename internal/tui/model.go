package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scribedesk/scribedesk/internal/analyzer"
	"github.com/scribedesk/scribedesk/internal/config"
	"github.com/scribedesk/scribedesk/internal/exporter"
	"github.com/scribedesk/scribedesk/internal/logger"
	"github.com/scribedesk/scribedesk/internal/media"
	"github.com/scribedesk/scribedesk/internal/session"
	"github.com/scribedesk/scribedesk/internal/transcriber"
	"github.com/scribedesk/scribedesk/pkg/executor"
)

// Tab identifies the two main views.
type Tab int

const (
	TabTranscription Tab = iota
	TabAnalysis
)

// inputMode says what the path input box is currently collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputOpenFile
	inputSaveText
	inputSaveWord
	inputSavePDF
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusBusy
	statusOK
	statusError
)

// Deps are the collaborators the shell orchestrates.
type Deps struct {
	Cfg         *config.Config
	Transcriber transcriber.Transcriber
	Analyzer    analyzer.Analyzer
	Executor    executor.Executor
	Logger      logger.Logger
}

// Model is the application shell: it owns all session state and marshals
// every background result back onto the single Update loop.
type Model struct {
	deps Deps

	tab    Tab
	width  int
	height int
	ready  bool

	state session.State

	// One busy flag per long-running action kind. A re-trigger while the
	// flag is set is ignored; the flag is not a queue.
	transcribing bool
	analyzing    bool

	input     textinput.Model
	inputMode inputMode

	transcriptView viewport.Model
	analysisView   viewport.Model
	spinner        spinner.Model

	status     string
	statusKind statusKind
	banner     string
}

// NewModel creates the shell model.
func NewModel(deps Deps) Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 72

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorBusy)

	return Model{
		deps:    deps,
		tab:     TabTranscription,
		input:   ti,
		spinner: sp,
		status:  "Idle",
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A banner is modal: any key dismisses it.
		if m.banner != "" {
			m.banner = ""
			return m, nil
		}

		if m.inputMode != inputNone {
			switch msg.String() {
			case "esc":
				m.inputMode = inputNone
				m.input.Blur()
				return m, nil
			case "enter":
				return m.submitInput()
			case "ctrl+c":
				return m, tea.Quit
			}
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m.tab = (m.tab + 1) % 2
			return m, nil

		case "o":
			return m.promptForPath(inputOpenFile, "")

		case "s":
			if !m.state.CanSave() {
				return m, nil
			}
			return m.promptForPath(inputSaveText, m.defaultExportPath(".txt"))

		case "a":
			return m.startAnalysis()

		case "w":
			if !m.state.CanExport() {
				m.banner = "Nothing to export. Please complete transcription and analysis first."
				return m, nil
			}
			return m.promptForPath(inputSaveWord, m.defaultExportPath("_analysis.docx"))

		case "p":
			if !m.state.CanExport() {
				m.banner = "Nothing to export. Please complete transcription and analysis first."
				return m, nil
			}
			return m.promptForPath(inputSavePDF, m.defaultExportPath("_analysis.pdf"))

		case "e":
			return m, m.editPromptCmd()

		case "ctrl+l":
			m.state.Reset()
			m.transcriptView.SetContent("")
			m.analysisView.SetContent("")
			m.setStatus(statusInfo, "Idle")
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := msg.Height - 10
		if contentHeight < 3 {
			contentHeight = 3
		}
		if !m.ready {
			m.transcriptView = viewport.New(msg.Width-4, contentHeight)
			m.analysisView = viewport.New(msg.Width-4, contentHeight)
			m.ready = true
		} else {
			m.transcriptView.Width = msg.Width - 4
			m.transcriptView.Height = contentHeight
			m.analysisView.Width = msg.Width - 4
			m.analysisView.Height = contentHeight
		}

	case transcriptDoneMsg:
		m.transcribing = false
		if msg.err != nil {
			m.setStatus(statusError, "Error: "+msg.err.Error())
			m.transcriptView.SetContent(fmt.Sprintf("Failed to transcribe file.\nError: %v", msg.err))
		} else {
			m.state.SetTranscript(msg.text)
			m.transcriptView.SetContent(msg.text)
			m.analysisView.SetContent("")
			m.setStatus(statusOK, "Transcription complete!")
		}

	case analysisDoneMsg:
		m.analyzing = false
		if msg.err != nil {
			m.setStatus(statusError, "Analysis error: "+msg.err.Error())
		} else {
			m.state.Analysis = msg.result
			m.analysisView.SetContent(msg.result.FullText)
			m.setStatus(statusOK, "Analysis complete!")
			m.tab = TabAnalysis
		}

	case editorDoneMsg:
		if msg.err != nil {
			m.banner = "Could not open prompt file: " + msg.err.Error()
		}

	case spinner.TickMsg:
		if m.transcribing || m.analyzing {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.inputMode != inputNone {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.tab {
	case TabTranscription:
		m.transcriptView, cmd = m.transcriptView.Update(msg)
	case TabAnalysis:
		m.analysisView, cmd = m.analysisView.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// promptForPath opens the input box in the given mode.
func (m Model) promptForPath(mode inputMode, initial string) (tea.Model, tea.Cmd) {
	m.inputMode = mode
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

// submitInput dispatches the entered path according to the input mode.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.input.Value())
	mode := m.inputMode
	m.inputMode = inputNone
	m.input.Blur()
	m.input.SetValue("")

	if path == "" {
		return m, nil
	}

	switch mode {
	case inputOpenFile:
		return m.openFile(path)
	case inputSaveText:
		if err := exporter.SaveText(m.state.Transcript, path); err != nil {
			m.banner = "Failed to save transcript:\n" + err.Error()
			m.setStatus(statusError, "Error saving file: "+err.Error())
		} else {
			m.setStatus(statusOK, "Transcript saved to: "+path)
		}
	case inputSaveWord:
		if err := exporter.ExportWord(m.state.Transcript, m.state.Analysis.FullText, path); err != nil {
			m.banner = "Failed to export to Word:\n" + err.Error()
			m.setStatus(statusError, "Error exporting to Word: "+err.Error())
		} else {
			m.setStatus(statusOK, "Word document saved to: "+path)
		}
	case inputSavePDF:
		if err := exporter.ExportPDF(m.state.Transcript, m.state.Analysis.FullText, path); err != nil {
			m.banner = "Failed to export to PDF:\n" + err.Error()
			m.setStatus(statusError, "Error exporting to PDF: "+err.Error())
		} else {
			m.setStatus(statusOK, "PDF document saved to: "+path)
		}
	}

	return m, nil
}

// openFile validates the selection and starts transcription.
func (m Model) openFile(path string) (tea.Model, tea.Cmd) {
	if !media.Supported(path) {
		m.banner = "Unsupported format. Please select an audio or video file (" + media.ExtensionHint() + ")."
		return m, nil
	}
	if m.transcribing {
		return m, nil
	}

	m.state.SetFile(path)
	m.transcriptView.SetContent("")
	m.analysisView.SetContent("")
	m.transcribing = true
	m.setStatus(statusBusy, "Transcribing "+filepath.Base(path)+"...")

	return m, tea.Batch(m.spinner.Tick, m.transcribeCmd(path))
}

// startAnalysis launches the analysis worker unless one is already running.
func (m Model) startAnalysis() (tea.Model, tea.Cmd) {
	if !m.state.CanAnalyze() {
		m.banner = "No transcript to analyze. Please transcribe a file first."
		return m, nil
	}
	if m.analyzing {
		return m, nil
	}

	m.analyzing = true
	m.setStatus(statusBusy, "Analyzing transcript...")

	// The transcript is read here, on the UI loop, before the worker starts.
	return m, tea.Batch(m.spinner.Tick, m.analyzeCmd(m.state.Transcript))
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m Model) defaultExportPath(suffix string) string {
	return filepath.Join(filepath.Dir(m.state.FilePath), m.state.ExportName(suffix))
}
