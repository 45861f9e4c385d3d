package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RunSetup runs the interactive setup wizard and returns the resulting
// config. If existing is non-nil, it is used as the default for each
// prompt (edit mode).
func RunSetup(existing *Config) (*Config, error) {
	r := bufio.NewReader(os.Stdin)

	ask := func(prompt, defaultVal string) (string, error) {
		if defaultVal != "" {
			fmt.Printf("%s [%s]: ", prompt, defaultVal)
		} else {
			fmt.Printf("%s: ", prompt)
		}
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return defaultVal, nil
		}
		return line, nil
	}

	cfg := Defaults()
	if existing != nil {
		cfg = *existing
	}

	fmt.Println()
	fmt.Println("  ┌──────────────────────────────────┐")
	fmt.Println("  │   term-chat — first-time setup   │")
	fmt.Println("  └──────────────────────────────────┘")
	fmt.Println()

	var err error

	// Mask the stored key when shown as a prompt default.
	keyDefault := ""
	if cfg.APIKey != "" {
		keyDefault = maskKey(cfg.APIKey)
	}
	key, err := ask("  API key", keyDefault)
	if err != nil {
		return nil, err
	}
	if key != keyDefault {
		cfg.APIKey = key
	}

	cfg.Model, err = ask("  Model", cfg.Model)
	if err != nil {
		return nil, err
	}

	cfg.BaseURL, err = ask("  API base URL (empty for default)", cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	shellDefault := cfg.Shell
	if shellDefault == "" {
		shellDefault = DetectShell()
	}
	cfg.Shell, err = ask("  Shell to record", shellDefault)
	if err != nil {
		return nil, err
	}

	fmt.Println()
	return &cfg, nil
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// DetectShell returns the base name of the current shell, falling back to
// sh when $SHELL is unset.
func DetectShell() string {
	shell := filepath.Base(os.Getenv("SHELL"))
	if shell == "" || shell == "." {
		return "sh"
	}
	return shell
}
