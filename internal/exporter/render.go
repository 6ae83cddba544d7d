package exporter

import "strings"

// docSink receives the rendered elements of an analysis document. Word and
// PDF exports provide their own sinks over the same line rules.
type docSink interface {
	Heading(level int, text string)
	Bullet(text string)
	Paragraph(text string)
}

// renderMarkdown walks the analysis text line by line: "## " and "### "
// become headings, "- " (after trimming) becomes a bullet, blank lines end
// the current paragraph, and consecutive plain lines accumulate into one
// paragraph block joined by line breaks.
func renderMarkdown(text string, sink docSink) {
	var block []string

	flush := func() {
		if len(block) > 0 {
			sink.Paragraph(strings.Join(block, "\n"))
			block = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "## "):
			flush()
			sink.Heading(2, strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "### "):
			flush()
			sink.Heading(3, strings.TrimPrefix(line, "### "))
		case strings.HasPrefix(trimmed, "- "):
			flush()
			sink.Bullet(strings.TrimPrefix(trimmed, "- "))
		case trimmed == "":
			flush()
		default:
			block = append(block, line)
		}
	}

	flush()
}
