package exporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	wordFontName  = "Calibri"
	wordFontSize  = 11
	wordTitleSize = 18
)

// ExportWord writes the transcript and analysis to a .docx document:
// title, generation timestamp, the transcript section, then the analysis
// rendered with the shared markdown line rules.
func ExportWord(transcript, analysis, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addWordRun(doc.AddParagraph(""), "Transcript and Analysis", true, wordTitleSize)
	addWordRun(doc.AddParagraph(""), "Generated on: "+time.Now().Format("2006-01-02 15:04:05"), false, wordFontSize)

	addWordRun(doc.AddParagraph(""), "Original Transcript", true, 16)
	for _, line := range strings.Split(transcript, "\n") {
		addWordRun(doc.AddParagraph(""), line, false, wordFontSize)
	}

	addWordRun(doc.AddParagraph(""), "Analysis", true, 16)
	renderMarkdown(analysis, &wordSink{doc: doc})

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

type wordSink struct {
	doc *docx.RootDoc
}

func (s *wordSink) Heading(level int, text string) {
	addWordRun(s.doc.AddParagraph(""), text, true, wordHeadingSize(level))
}

func (s *wordSink) Bullet(text string) {
	addWordRun(s.doc.AddParagraph(""), "• "+text, false, wordFontSize)
}

func (s *wordSink) Paragraph(text string) {
	addWordRun(s.doc.AddParagraph(""), text, false, wordFontSize)
}

func wordHeadingSize(level int) uint64 {
	switch level {
	case 2:
		return 14
	case 3:
		return 12
	default:
		return wordFontSize
	}
}

func addWordRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(wordFontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
