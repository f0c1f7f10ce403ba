// Package config loads settings for the pycalc command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the name of the config file looked up in the user's home
// directory when no file is named explicitly.
const DefaultFile = ".pycalc.yaml"

// Config holds the user-facing settings of the interactive shell.
type Config struct {
	// Prompt is printed before each line of input.
	Prompt string `yaml:"prompt"`
	// ResultFormat is the fmt verb used to print results, e.g. "%v" or "%.3g".
	ResultFormat string `yaml:"result_format"`
	// ErrorMessage is printed in interactive mode when an expression fails.
	ErrorMessage string `yaml:"error_message"`
	// Farewell is printed when the interactive shell exits.
	Farewell string `yaml:"farewell"`
	// HistoryFile is where line history is kept. Empty disables history.
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in settings.
func Default() Config {
	cfg := Config{
		Prompt:       "Expression: ",
		ResultFormat: "%v",
		ErrorMessage: "Wrong expression",
		Farewell:     "Bye!",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".pycalc_history")
	}
	return cfg
}

// Load reads settings from a YAML file on top of the defaults, then applies
// environment overrides. If path is empty, the default file in the home
// directory is used if it exists.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, DefaultFile)
		}
	}
	if path != "" {
		src, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.Decode(src); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// No config file is fine.
		default:
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	cfg.Prompt = envOrDefault("PYCALC_PROMPT", cfg.Prompt)
	cfg.ResultFormat = envOrDefault("PYCALC_FORMAT", cfg.ResultFormat)
	cfg.HistoryFile = envOrDefault("PYCALC_HISTORY", cfg.HistoryFile)
	return cfg, nil
}

// Decode merges YAML settings into cfg. Fields absent from src are left as
// they are.
func (cfg *Config) Decode(src []byte) error {
	var raw yaml.Node
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return err
	}
	if raw.Kind != yaml.DocumentNode || len(raw.Content) == 0 {
		// Empty document.
		return nil
	}
	root := raw.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: config must be a mapping", root.Line)
	}
	return root.Decode(cfg)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
