package cli

import (
	"errors"
	"flag"
	"time"

	"dcrawl/internal/app"
	"dcrawl/internal/config"
)

type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "error"
}

func (e ExitError) Unwrap() error { return e.Err }

// ParseArgs turns command line arguments into run options. Precedence is
// flags, then config file values, then built-in defaults.
func ParseArgs(args []string) (app.Options, error) {
	parsed, err := parseFlags(args)
	if err != nil {
		return app.Options{}, ExitError{Code: 2, Err: err}
	}

	cfg := config.Default()
	if parsed.configStr != "" {
		loaded, err := config.Load(parsed.configStr)
		if err != nil {
			return app.Options{}, err
		}
		cfg = mergeConfig(cfg, loaded)
	}

	applyConfigDefaults(&parsed, cfg)
	return buildOptions(parsed)
}

type parsedFlags struct {
	urlStr    string
	configStr string
	verbose   bool
	name      stringFlag
	outputDir stringFlag
	headless  boolFlag
	timeout   intFlag
	settle    intFlag
	maxPerCat intFlag
}

func parseFlags(args []string) (parsedFlags, error) {
	fs := flag.NewFlagSet("dcrawl", flag.ContinueOnError)
	parsed := parsedFlags{}

	fs.StringVar(&parsed.urlStr, "url", "", "Target URL to crawl")
	fs.StringVar(&parsed.configStr, "config", "", "Path to JSON config file")
	fs.BoolVar(&parsed.verbose, "verbose", false, "Enable debug logging")
	fs.Var(&parsed.name, "name", "Generated component name")
	fs.Var(&parsed.outputDir, "output-dir", "Directory for generated components")
	parsed.headless.Value = true
	fs.Var(&parsed.headless, "headless", "Run browser headless")
	parsed.timeout.Value = 30
	fs.Var(&parsed.timeout, "timeout", "Navigation timeout seconds")
	parsed.settle.Value = 2
	fs.Var(&parsed.settle, "settle", "Seconds to wait after load for dynamic content")
	parsed.maxPerCat.Value = 10
	fs.Var(&parsed.maxPerCat, "max-per-category", "Maximum elements extracted per category")

	if err := fs.Parse(args); err != nil {
		return parsed, err
	}
	return parsed, nil
}

// mergeConfig overlays file values on the defaults, keeping defaults for
// keys the file omits.
func mergeConfig(base, overlay config.Config) config.Config {
	if overlay.Headless != nil {
		base.Headless = overlay.Headless
	}
	if overlay.TimeoutSeconds > 0 {
		base.TimeoutSeconds = overlay.TimeoutSeconds
	}
	if overlay.SettleSeconds > 0 {
		base.SettleSeconds = overlay.SettleSeconds
	}
	if overlay.ComponentName != "" {
		base.ComponentName = overlay.ComponentName
	}
	if overlay.OutputDir != "" {
		base.OutputDir = overlay.OutputDir
	}
	if overlay.MaxElementsPerCategory > 0 {
		base.MaxElementsPerCategory = overlay.MaxElementsPerCategory
	}
	return base
}

func applyConfigDefaults(parsed *parsedFlags, cfg config.Config) {
	if !parsed.name.WasSet && cfg.ComponentName != "" {
		parsed.name.Value = cfg.ComponentName
	}
	if !parsed.outputDir.WasSet && cfg.OutputDir != "" {
		parsed.outputDir.Value = cfg.OutputDir
	}
	if !parsed.headless.WasSet && cfg.Headless != nil {
		parsed.headless.Value = *cfg.Headless
	}
	if !parsed.timeout.WasSet && cfg.TimeoutSeconds > 0 {
		parsed.timeout.Value = cfg.TimeoutSeconds
	}
	if !parsed.settle.WasSet && cfg.SettleSeconds > 0 {
		parsed.settle.Value = cfg.SettleSeconds
	}
	if !parsed.maxPerCat.WasSet && cfg.MaxElementsPerCategory > 0 {
		parsed.maxPerCat.Value = cfg.MaxElementsPerCategory
	}
}

func buildOptions(parsed parsedFlags) (app.Options, error) {
	if parsed.urlStr == "" {
		return app.Options{}, ExitError{Code: 2, Err: errors.New("--url is required")}
	}
	if !app.ValidURL(parsed.urlStr) {
		return app.Options{}, ExitError{Code: 2, Err: errors.New("--url must start with http:// or https://")}
	}

	return app.Options{
		URL:            parsed.urlStr,
		ComponentName:  parsed.name.Value,
		OutputDir:      parsed.outputDir.Value,
		Headless:       parsed.headless.Value,
		Timeout:        time.Duration(parsed.timeout.Value) * time.Second,
		SettleDelay:    time.Duration(parsed.settle.Value) * time.Second,
		MaxPerCategory: parsed.maxPerCat.Value,
		Verbose:        parsed.verbose,
	}, nil
}
