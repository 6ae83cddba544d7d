package exporter

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// ExportPDF writes the transcript and analysis to a PDF with the same
// layout and line rules as the Word export. Bullets get a bullet-character
// prefix; consecutive plain lines flush as a single paragraph block.
func ExportPDF(transcript, analysis, outputPath string) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, tr("Transcript and Analysis"), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr("Generated on: "+time.Now().Format("2006-01-02 15:04:05")), "", "L", false)
	pdf.Ln(4)

	sink := &pdfSink{pdf: pdf, tr: tr}

	sink.section("Original Transcript")
	sink.Paragraph(transcript)
	pdf.Ln(4)

	sink.section("Analysis")
	renderMarkdown(analysis, sink)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("save pdf: %w", err)
	}
	return nil
}

type pdfSink struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (s *pdfSink) section(title string) {
	s.pdf.SetFont("Helvetica", "B", 14)
	s.pdf.MultiCell(0, 7, s.tr(title), "", "L", false)
	s.pdf.Ln(2)
}

func (s *pdfSink) Heading(level int, text string) {
	size := 13.0
	if level == 3 {
		size = 11.5
	}
	s.pdf.Ln(2)
	s.pdf.SetFont("Helvetica", "B", size)
	s.pdf.MultiCell(0, 6, s.tr(text), "", "L", false)
	s.pdf.Ln(1)
}

func (s *pdfSink) Bullet(text string) {
	s.pdf.SetFont("Helvetica", "", 11)
	left, _, _, _ := s.pdf.GetMargins()
	s.pdf.SetLeftMargin(left + 4)
	s.pdf.SetX(left + 4)
	s.pdf.MultiCell(0, 5, s.tr("• "+text), "", "L", false)
	s.pdf.SetLeftMargin(left)
}

func (s *pdfSink) Paragraph(text string) {
	s.pdf.SetFont("Helvetica", "", 11)
	s.pdf.MultiCell(0, 5, s.tr(text), "", "L", false)
	s.pdf.Ln(1)
}
