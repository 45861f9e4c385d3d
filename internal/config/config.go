// Package config manages term-chat settings: the API credential, the model
// identifier, and a few recording preferences. Settings come from a global
// JSON file, an optional per-project override, and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds all configurable term-chat settings.
type Config struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
	// BaseURL overrides the chat-completion endpoint so OpenAI-compatible
	// servers (e.g. a local Ollama) can be used.
	BaseURL       string `json:"base_url,omitempty"`
	Shell         string `json:"shell,omitempty"`          // override auto-detect
	TranscriptDir string `json:"transcript_dir,omitempty"` // override XDG default
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		Model: "gpt-4o-mini",
	}
}

// LoadGlobal reads ~/.config/term-chat/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	path, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	return loadFile(path, true)
}

// GlobalPath returns the path of the global config file.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "term-chat", "config.json"), nil
}

// Exists reports whether the global config file is present on disk.
func Exists() bool {
	path, err := GlobalPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// LoadProject reads .termchatrc in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".termchatrc", false)
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Save writes cfg as the global config file, creating the directory if
// needed. The file is written 0600 since it holds the API credential.
func Save(cfg *Config) error {
	path, err := GlobalPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Merge combines global and project configs, with project taking precedence
// and environment variables (TERMCHAT_API_KEY, TERMCHAT_MODEL,
// TERMCHAT_BASE_URL) winning over both. Missing keys fall back to global,
// then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()

	// Apply global values over defaults.
	if global != nil {
		if global.APIKey != "" {
			result.APIKey = global.APIKey
		}
		if global.Model != "" {
			result.Model = global.Model
		}
		if global.BaseURL != "" {
			result.BaseURL = global.BaseURL
		}
		if global.Shell != "" {
			result.Shell = global.Shell
		}
		if global.TranscriptDir != "" {
			result.TranscriptDir = global.TranscriptDir
		}
	}

	// Apply project values over global.
	if project != nil {
		if project.APIKey != "" {
			result.APIKey = project.APIKey
		}
		if project.Model != "" {
			result.Model = project.Model
		}
		if project.BaseURL != "" {
			result.BaseURL = project.BaseURL
		}
		if project.Shell != "" {
			result.Shell = project.Shell
		}
		if project.TranscriptDir != "" {
			result.TranscriptDir = project.TranscriptDir
		}
	}

	// Environment overrides win over files.
	if v := os.Getenv("TERMCHAT_API_KEY"); v != "" {
		result.APIKey = v
	}
	if v := os.Getenv("TERMCHAT_MODEL"); v != "" {
		result.Model = v
	}
	if v := os.Getenv("TERMCHAT_BASE_URL"); v != "" {
		result.BaseURL = v
	}

	return result
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
