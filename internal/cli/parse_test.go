package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dcrawl/internal/config"
)

func TestParseArgsDefaults(t *testing.T) {
	opts, err := ParseArgs([]string{"--url", "https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.URL != "https://example.com" {
		t.Fatalf("unexpected url %q", opts.URL)
	}
	if !opts.Headless {
		t.Fatal("expected headless default true")
	}
	if opts.Timeout != 30*time.Second || opts.SettleDelay != 2*time.Second {
		t.Fatalf("unexpected timing defaults: %#v", opts)
	}
	if opts.ComponentName != "GeneratedComponent" || opts.OutputDir != "generated" {
		t.Fatalf("unexpected naming defaults: %#v", opts)
	}
	if opts.MaxPerCategory != 10 {
		t.Fatalf("unexpected cap: %d", opts.MaxPerCategory)
	}
}

func TestParseArgsFlags(t *testing.T) {
	opts, err := ParseArgs([]string{
		"--url", "https://example.com",
		"--name", "Landing",
		"--output-dir", "out",
		"--headless=false",
		"--timeout", "60",
		"--settle", "5",
		"--max-per-category", "3",
		"--verbose",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.ComponentName != "Landing" || opts.OutputDir != "out" {
		t.Fatalf("unexpected options: %#v", opts)
	}
	if opts.Headless {
		t.Fatal("expected headless false")
	}
	if opts.Timeout != 60*time.Second || opts.SettleDelay != 5*time.Second {
		t.Fatalf("unexpected timing: %#v", opts)
	}
	if opts.MaxPerCategory != 3 || !opts.Verbose {
		t.Fatalf("unexpected options: %#v", opts)
	}
}

func TestParseArgsMissingURL(t *testing.T) {
	_, err := ParseArgs([]string{"--name", "Landing"})
	var exitErr ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T", err)
	}
	if exitErr.Code != 2 {
		t.Fatalf("expected code 2, got %d", exitErr.Code)
	}
}

func TestParseArgsInvalidURL(t *testing.T) {
	_, err := ParseArgs([]string{"--url", "example.com"})
	var exitErr ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 2 {
		t.Fatalf("expected ExitError code 2, got %v", err)
	}
}

func TestParseArgsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dcrawl.config.json")
	contents := `{
  "headless": false,
  "timeout_seconds": 90,
  "component_name": "FromConfig",
  "output_dir": "cfg-out"
}`
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts, err := ParseArgs([]string{"--url", "https://example.com", "--config", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Headless {
		t.Fatal("expected headless false from config")
	}
	if opts.Timeout != 90*time.Second || opts.ComponentName != "FromConfig" || opts.OutputDir != "cfg-out" {
		t.Fatalf("unexpected options: %#v", opts)
	}
	if opts.SettleDelay != 2*time.Second {
		t.Fatalf("omitted config key should keep default, got %v", opts.SettleDelay)
	}
}

func TestParseArgsFlagsBeatConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dcrawl.config.json")
	if err := os.WriteFile(path, []byte(`{"component_name": "FromConfig", "timeout_seconds": 90}`), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts, err := ParseArgs([]string{
		"--url", "https://example.com",
		"--config", path,
		"--name", "FromFlag",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.ComponentName != "FromFlag" {
		t.Fatalf("flag should win over config, got %q", opts.ComponentName)
	}
	if opts.Timeout != 90*time.Second {
		t.Fatalf("config should fill unset flag, got %v", opts.Timeout)
	}
}

func TestParseArgsBadConfig(t *testing.T) {
	_, err := ParseArgs([]string{"--url", "https://example.com", "--config", "does-not-exist.json"})
	var cfgErr *config.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
	}
}

func TestParseArgsBadFlag(t *testing.T) {
	_, err := ParseArgs([]string{"--timeout", "soon"})
	var exitErr ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 2 {
		t.Fatalf("expected ExitError code 2, got %v", err)
	}
}
