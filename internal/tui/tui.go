package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"dcrawl/internal/app"
)

type Result struct {
	Options app.Options
	RunNow  bool
}

// Run drives the interactive form shown when dcrawl starts with no
// arguments.
func Run() (Result, error) {
	printBanner()
	state := newFormState()

	form := buildForm(state).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return Result{}, err
	}

	return state.result()
}

func printBanner() {
	fmt.Print(`
      _                          _
   __| | ___ _ __ __ ___      __| |
  / _` + "`" + ` |/ __| '__/ _` + "`" + ` \ \ /\ / /| |
 | (_| | (__| | | (_| |\ V  V / | |
  \__,_|\___|_|  \__,_| \_/\_/  |_|
`)
}

type formState struct {
	urlStr     string
	name       string
	outputDir  string
	timeoutStr string
	settleStr  string
	headless   bool
	runNow     bool
}

func newFormState() *formState {
	return &formState{
		name:       "GeneratedComponent",
		outputDir:  "generated",
		timeoutStr: "30",
		settleStr:  "2",
		headless:   true,
		runNow:     true,
	}
}

func buildForm(state *formState) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("URL").Placeholder("https://example.com").Value(&state.urlStr).
				Description("Page to crawl.").
				Validate(validateURL),
			huh.NewInput().Title("Component name").Value(&state.name).
				Description("Name of the generated React component."),
			huh.NewInput().Title("Output dir").Value(&state.outputDir).
				Description("Directory for generated .jsx files."),
		).Title("Target"),
		huh.NewGroup(
			huh.NewInput().Title("Timeout (seconds)").Value(&state.timeoutStr).
				Validate(validateIntString(1, 3600)),
			huh.NewInput().Title("Settle delay (seconds)").Value(&state.settleStr).
				Description("Extra wait after load for dynamic content.").
				Validate(validateIntString(0, 60)),
			huh.NewConfirm().Title("Headless").Description("Hide browser window?").Value(&state.headless),
			huh.NewConfirm().Title("Run now").Value(&state.runNow),
		).Title("Browser"),
	)
}

func (s *formState) result() (Result, error) {
	timeout, err := strconv.Atoi(strings.TrimSpace(s.timeoutStr))
	if err != nil {
		return Result{}, fmt.Errorf("timeout: %w", err)
	}
	settle, err := strconv.Atoi(strings.TrimSpace(s.settleStr))
	if err != nil {
		return Result{}, fmt.Errorf("settle delay: %w", err)
	}

	return Result{
		Options: app.Options{
			URL:           strings.TrimSpace(s.urlStr),
			ComponentName: strings.TrimSpace(s.name),
			OutputDir:     strings.TrimSpace(s.outputDir),
			Headless:      s.headless,
			Timeout:       time.Duration(timeout) * time.Second,
			SettleDelay:   time.Duration(settle) * time.Second,
		},
		RunNow: s.runNow,
	}, nil
}

func validateURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("url is required")
	}
	if !app.ValidURL(s) {
		return errors.New("must start with http:// or https://")
	}
	return nil
}

func validateIntString(minVal, maxVal int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("must be an integer")
		}
		if v < minVal || v > maxVal {
			return fmt.Errorf("must be between %d and %d", minVal, maxVal)
		}
		return nil
	}
}
