package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the prompt file created inside the prompts directory.
const FileName = "analysis_prompt.txt"

// Placeholder is replaced with the transcript when the prompt is rendered.
const Placeholder = "{transcript}"

const defaultTemplate = `Please analyze the following transcript and extract:

1. KEY LEARNING POINTS: Identify the main educational concepts, lessons, or insights presented in the content.
2. QUESTIONS & ANSWERS: For each significant question in the transcript, provide both the question and its corresponding answer.

Format your response as follows:

## KEY LEARNING POINTS
- Point 1
- Point 2
- Point 3
...

## QUESTIONS & ANSWERS

### Question 1
[The exact question from the transcript]

### Answer 1
[The answer provided to Question 1]

### Question 2
[The exact question from the transcript]

### Answer 2
[The answer provided to Question 2]

...and so on for all significant question-answer pairs.

TRANSCRIPT:
{transcript}`

// File returns the prompt file path inside dir.
func File(dir string) string {
	return filepath.Join(dir, FileName)
}

// Setup creates the prompts directory and the default prompt file when they
// are missing. An existing prompt file is left untouched so user edits
// survive restarts.
func Setup(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create prompts dir: %w", err)
	}

	path := File(dir)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat prompt file: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultTemplate), 0644); err != nil {
		return fmt.Errorf("write default prompt: %w", err)
	}

	return nil
}

// Load reads the prompt template at path. A missing file is reported as a
// distinct error so the shell can tell the user the template is gone rather
// than show a raw I/O failure.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("analysis prompt file not found: %s", path)
		}
		return "", fmt.Errorf("read prompt file: %w", err)
	}
	return string(data), nil
}

// Render substitutes the transcript into the template's placeholder.
func Render(template, transcript string) string {
	return strings.ReplaceAll(template, Placeholder, transcript)
}
