package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid openai config",
			config: Config{
				OpenAI: OpenAIConfig{APIKey: "sk-test"},
			},
			wantErr: false,
		},
		{
			name:    "missing api key",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "gemini provider without keys",
			config: Config{
				LLM:    LLMConfig{Provider: "gemini"},
				OpenAI: OpenAIConfig{APIKey: "sk-test"},
			},
			wantErr: true,
		},
		{
			name: "gemini provider with keys",
			config: Config{
				LLM:    LLMConfig{Provider: "gemini"},
				OpenAI: OpenAIConfig{APIKey: "sk-test"},
				Gemini: GeminiConfig{APIKeys: []string{"g-key"}},
			},
			wantErr: false,
		},
		{
			name: "unknown provider",
			config: Config{
				LLM:    LLMConfig{Provider: "anthropic"},
				OpenAI: OpenAIConfig{APIKey: "sk-test"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{OpenAI: OpenAIConfig{APIKey: "sk-test"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.LLM.Provider != "openai" {
		t.Errorf("Provider = %v, want openai", cfg.LLM.Provider)
	}
	if cfg.OpenAI.WhisperModel != "whisper-1" {
		t.Errorf("WhisperModel = %v, want whisper-1", cfg.OpenAI.WhisperModel)
	}
	if cfg.OpenAI.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %v, want gpt-4o-mini", cfg.OpenAI.ChatModel)
	}
	if cfg.Paths.Prompts != "prompts" {
		t.Errorf("Prompts = %v, want prompts", cfg.Paths.Prompts)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
llm:
  provider: openai

openai:
  api_key: "sk-test"
  chat_model: "gpt-4o"

paths:
  prompts: "my-prompts"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenAI.ChatModel != "gpt-4o" {
		t.Errorf("ChatModel = %v, want %v", cfg.OpenAI.ChatModel, "gpt-4o")
	}
	if cfg.Paths.Prompts != "my-prompts" {
		t.Errorf("Prompts = %v, want %v", cfg.Paths.Prompts, "my-prompts")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "debug")
	}
}

func TestLoadMissingFileWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := Load(path)
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Load() error = %v, want ErrMissingAPIKey", err)
	}

	data, rerr := os.ReadFile(path)
	if rerr != nil {
		t.Fatalf("template was not written: %v", rerr)
	}
	if len(data) == 0 {
		t.Error("template file is empty")
	}
}

func TestLoadEmptyKeyKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "openai:\n  api_key: \"\"\n# user note\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Load() error = %v, want ErrMissingAPIKey", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Error("existing config file was overwritten")
	}
}
