package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scribedesk/scribedesk/internal/media"
)

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	switch m.tab {
	case TabTranscription:
		s.WriteString(m.renderTranscriptionTab())
	case TabAnalysis:
		s.WriteString(m.renderAnalysisTab())
	}

	s.WriteString("\n")
	s.WriteString(m.renderStatus())

	if m.inputMode != inputNone {
		s.WriteString("\n")
		s.WriteString(m.renderInput())
	}

	if m.banner != "" {
		s.WriteString("\n")
		s.WriteString(bannerStyle.Render(m.banner + "\n\n(press any key)"))
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m Model) renderHeader() string {
	tabs := []string{"Transcription", "Analysis"}
	var renderedTabs []string

	for i, tab := range tabs {
		if Tab(i) == m.tab {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, tabStyle.Render(tab))
		}
	}

	title := titleStyle.Render("ScribeDesk")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m Model) renderTranscriptionTab() string {
	var s strings.Builder

	if m.state.FilePath != "" {
		s.WriteString(fileStyle.Render("File: " + filepath.Base(m.state.FilePath)))
	} else {
		s.WriteString(helpStyle.Render("Press 'o' to open an audio or video file (" + media.ExtensionHint() + ")"))
	}
	s.WriteString("\n\n")
	s.WriteString(m.transcriptView.View())

	return s.String()
}

func (m Model) renderAnalysisTab() string {
	var s strings.Builder

	if m.state.Analysis == nil {
		s.WriteString(helpStyle.Render("No analysis yet. Press 'a' on a transcript to analyze it."))
		s.WriteString("\n\n")
	}
	s.WriteString(m.analysisView.View())

	return s.String()
}

func (m Model) renderStatus() string {
	var style lipgloss.Style
	switch m.statusKind {
	case statusOK:
		style = statusOKStyle
	case statusBusy:
		style = statusBusyStyle
	case statusError:
		style = statusErrorStyle
	default:
		style = statusInfoStyle
	}

	line := "Status: " + style.Render(m.status)
	if m.transcribing || m.analyzing {
		line = m.spinner.View() + " " + line
	}
	return line
}

func (m Model) renderInput() string {
	var label string
	switch m.inputMode {
	case inputOpenFile:
		label = "Open file:"
	case inputSaveText:
		label = "Save transcript as:"
	case inputSaveWord:
		label = "Export Word document as:"
	case inputSavePDF:
		label = "Export PDF as:"
	}
	return inputBoxStyle.Render(label + "\n" + m.input.View())
}

func (m Model) renderFooter() string {
	help := "o: open • s: save • a: analyze • w: word • p: pdf • e: edit prompt • tab: switch • ctrl+l: clear • q: quit"
	return helpStyle.Render(help)
}
