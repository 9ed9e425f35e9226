package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is where Load looks when no config flag is given.
const DefaultPath = "dcrawl.config.json"

// ConfigError marks a config file that could not be read or parsed.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Headless is a pointer so a file can distinguish "false" from "absent".
type Config struct {
	Headless               *bool  `json:"headless"`
	TimeoutSeconds         int    `json:"timeout_seconds"`
	SettleSeconds          int    `json:"settle_seconds"`
	ComponentName          string `json:"component_name"`
	OutputDir              string `json:"output_dir"`
	MaxElementsPerCategory int    `json:"max_elements_per_category"`
}

func Default() Config {
	headless := true
	return Config{
		Headless:               &headless,
		TimeoutSeconds:         30,
		SettleSeconds:          2,
		ComponentName:          "GeneratedComponent",
		OutputDir:              "generated",
		MaxElementsPerCategory: 10,
	}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

func Marshal(cfg Config) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}

// WriteDefault creates a starter config at path, refusing to overwrite.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		return &ConfigError{Path: path, Err: os.ErrExist}
	}
	data, err := Marshal(Default())
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	return nil
}
