package exporter

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type recordedElement struct {
	kind  string
	level int
	text  string
}

type recordingSink struct {
	elements []recordedElement
}

func (r *recordingSink) Heading(level int, text string) {
	r.elements = append(r.elements, recordedElement{"heading", level, text})
}

func (r *recordingSink) Bullet(text string) {
	r.elements = append(r.elements, recordedElement{"bullet", 0, text})
}

func (r *recordingSink) Paragraph(text string) {
	r.elements = append(r.elements, recordedElement{"paragraph", 0, text})
}

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []recordedElement
	}{
		{
			name: "level-2 heading",
			text: "## Title",
			want: []recordedElement{{"heading", 2, "Title"}},
		},
		{
			name: "level-3 heading",
			text: "### Subtitle",
			want: []recordedElement{{"heading", 3, "Subtitle"}},
		},
		{
			name: "bullet item",
			text: "- item",
			want: []recordedElement{{"bullet", 0, "item"}},
		},
		{
			name: "indented bullet item",
			text: "  - indented",
			want: []recordedElement{{"bullet", 0, "indented"}},
		},
		{
			name: "adjacent lines merge into one paragraph",
			text: "first line\nsecond line",
			want: []recordedElement{{"paragraph", 0, "first line\nsecond line"}},
		},
		{
			name: "blank line splits paragraphs",
			text: "first\n\nsecond",
			want: []recordedElement{
				{"paragraph", 0, "first"},
				{"paragraph", 0, "second"},
			},
		},
		{
			name: "heading flushes pending paragraph",
			text: "text before\n## After",
			want: []recordedElement{
				{"paragraph", 0, "text before"},
				{"heading", 2, "After"},
			},
		},
		{
			name: "learning points section",
			text: "## KEY LEARNING POINTS\n- Point A\n",
			want: []recordedElement{
				{"heading", 2, "KEY LEARNING POINTS"},
				{"bullet", 0, "Point A"},
			},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			renderMarkdown(tt.text, sink)
			if !reflect.DeepEqual(sink.elements, tt.want) {
				t.Errorf("renderMarkdown() = %v, want %v", sink.elements, tt.want)
			}
		})
	}
}

func TestSaveText(t *testing.T) {
	transcript := "Hello world.\nSecond line with trailing space \nNo trailing newline"
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := SaveText(transcript, path); err != nil {
		t.Fatalf("SaveText() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != transcript {
		t.Errorf("file content = %q, want exact transcript %q", data, transcript)
	}
}

func TestSaveTextBadPath(t *testing.T) {
	err := SaveText("x", filepath.Join(t.TempDir(), "missing-dir", "out.txt"))
	if err == nil {
		t.Error("SaveText() should fail for an unwritable path")
	}
}

const sampleAnalysis = "## KEY LEARNING POINTS\n- Point A\n- Point B\n\n" +
	"## QUESTIONS & ANSWERS\n\n### Question 1\nWhat is Go?\n\n### Answer 1\nA language.\n"

func TestExportWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")

	if err := ExportWord("Hello world.", sampleAnalysis, path); err != nil {
		t.Fatalf("ExportWord() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("document is empty")
	}
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")

	if err := ExportPDF("Hello world.", sampleAnalysis, path); err != nil {
		t.Fatalf("ExportPDF() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("pdf not written: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Error("output does not look like a PDF")
	}
}

func TestExportPDFBadPath(t *testing.T) {
	err := ExportPDF("t", "a", filepath.Join(t.TempDir(), "missing-dir", "out.pdf"))
	if err == nil {
		t.Error("ExportPDF() should fail for an unwritable path")
	}
}
