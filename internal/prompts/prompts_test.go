package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupCreatesDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")

	if err := Setup(dir); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	data, err := os.ReadFile(File(dir))
	if err != nil {
		t.Fatalf("prompt file not created: %v", err)
	}
	if !strings.Contains(string(data), Placeholder) {
		t.Error("default template has no transcript placeholder")
	}
	if !strings.Contains(string(data), "KEY LEARNING POINTS") {
		t.Error("default template missing learning points instructions")
	}
}

func TestSetupPreservesUserEdits(t *testing.T) {
	dir := t.TempDir()
	if err := Setup(dir); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	edited := "My custom prompt: {transcript}"
	if err := os.WriteFile(File(dir), []byte(edited), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Setup(dir); err != nil {
		t.Fatalf("second Setup() error = %v", err)
	}

	data, err := os.ReadFile(File(dir))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != edited {
		t.Error("Setup() overwrote an existing prompt file")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("Load() should fail for a missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load() error = %v, want not-found message", err)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		transcript string
		want       string
	}{
		{
			name:       "placeholder substituted verbatim",
			template:   "Analyze:\n{transcript}\nEnd.",
			transcript: "Hello world.",
			want:       "Analyze:\nHello world.\nEnd.",
		},
		{
			name:       "no placeholder leaves template unchanged",
			template:   "Static prompt.",
			transcript: "ignored",
			want:       "Static prompt.",
		},
		{
			name:       "transcript with braces is not re-expanded",
			template:   "T: {transcript}",
			transcript: "uses {transcript} literally? no: {x}",
			want:       "T: uses {transcript} literally? no: {x}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.template, tt.transcript); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
