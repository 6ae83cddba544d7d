package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey means the config file exists but no credential has been
// filled in yet. Startup treats this as fatal and tells the user what to do.
var ErrMissingAPIKey = errors.New("openai.api_key is not set")

const template = `# ScribeDesk configuration.
# Fill in your OpenAI API key, then start the application again.

llm:
  provider: openai   # or "gemini" (analysis only; transcription stays on OpenAI)

openai:
  api_key: ""
  whisper_model: whisper-1
  chat_model: gpt-4o-mini

gemini:
  api_keys: []
  model: gemini-2.5-flash

ffmpeg:
  enabled: false
  binary: ffmpeg

paths:
  prompts: prompts
  inbox: data/inbox
  output: data/output
  log_file: scribedesk.log

watch:
  max_concurrent: 2

logging:
  level: info
`

// Load reads and validates the YAML config at path. When the file is absent
// a template is written in its place and an error instructs the user to fill
// in the credential. An existing file is never overwritten.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if werr := os.WriteFile(path, []byte(template), 0644); werr != nil {
				return nil, fmt.Errorf("write config template: %w", werr)
			}
			return nil, fmt.Errorf("no config found: a template was created at %s; set openai.api_key and restart: %w", path, ErrMissingAPIKey)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, ErrMissingAPIKey) {
			return nil, fmt.Errorf("config at %s has no credential; set openai.api_key and restart: %w", path, err)
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
