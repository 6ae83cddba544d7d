package analyzer

import (
	"regexp"
	"strings"
)

// Section headers the default prompt asks the model to emit.
const (
	HeaderLearningPoints = "KEY LEARNING POINTS"
	HeaderQAPairs        = "QUESTIONS & ANSWERS"
)

var reHeaderLine = regexp.MustCompile(`(?m)^##\s+(.+?)\s*$`)

// ExtractSection returns the text between the "## <header>" line and the
// next "##" header or end of input, trimmed. This is a lenient parser: a
// missing or malformed section yields "" rather than an error.
func ExtractSection(text, header string) string {
	locs := reHeaderLine.FindAllStringSubmatchIndex(text, -1)

	for i, loc := range locs {
		name := strings.TrimSpace(text[loc[2]:loc[3]])
		if !strings.EqualFold(name, header) {
			continue
		}

		start := loc[1]
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		return strings.TrimSpace(text[start:end])
	}

	return ""
}
