package entrypoint

import (
	"context"
	"errors"
	"fmt"

	"dcrawl/internal/app"
	"dcrawl/internal/cli"
	"dcrawl/internal/config"
	"dcrawl/internal/crawler"
	"dcrawl/internal/generate"
	"dcrawl/internal/logging"
	"dcrawl/internal/subcommands/inspect"
	"dcrawl/internal/tui"
)

// Execute dispatches subcommands and runs the crawl. The returned code
// follows the convention: 2 for flag or config problems, 3 for crawl
// failures, 4 for generation failures, 1 for everything else.
func Execute(args []string) (int, error) {
	if len(args) > 1 {
		switch args[1] {
		case "init":
			return runInit(args[2:])
		case "inspect":
			if err := inspect.Run(args[2:]); err != nil {
				return exitCode(err), err
			}
			return 0, nil
		}
	}

	if len(args) == 1 {
		res, err := tui.Run()
		if err != nil {
			return 1, err
		}
		if !res.RunNow {
			return 0, nil
		}
		return runApp(res.Options)
	}

	opts, err := cli.ParseArgs(args[1:])
	if err != nil {
		return exitCode(err), err
	}
	return runApp(opts)
}

func runApp(opts app.Options) (int, error) {
	opts.Logger = logging.New(opts.Verbose)
	if err := app.Run(context.Background(), opts); err != nil {
		return exitCode(err), err
	}
	return 0, nil
}

func runInit(args []string) (int, error) {
	path := config.DefaultPath
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.WriteDefault(path); err != nil {
		return exitCode(err), err
	}
	fmt.Printf("Wrote %s\n", path)
	return 0, nil
}

func exitCode(err error) int {
	var exitErr cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		return 2
	}
	var crawlErr *crawler.CrawlingError
	if errors.As(err, &crawlErr) {
		return 3
	}
	var genErr *generate.GenerationError
	if errors.As(err, &genErr) {
		return 4
	}
	return 1
}
