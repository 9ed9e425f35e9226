package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"dcrawl/internal/crawler"
	"dcrawl/internal/generate"
	"dcrawl/internal/output"
	"dcrawl/internal/report"
)

type Options struct {
	URL            string
	ComponentName  string
	OutputDir      string
	Headless       bool
	Timeout        time.Duration
	SettleDelay    time.Duration
	MaxPerCategory int
	Verbose        bool
	Logger         *slog.Logger
}

type pageCrawler interface {
	Crawl(ctx context.Context, url string) (crawler.CrawlResult, error)
	Close() error
}

var newCrawler = func(opts crawler.Options) (pageCrawler, error) {
	return crawler.New(opts)
}

// ValidURL reports whether s is an absolute http or https URL.
func ValidURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func normalizeOptions(opts Options) (Options, error) {
	opts.URL = strings.TrimSpace(opts.URL)
	if opts.URL == "" {
		return opts, errors.New("url is required")
	}
	if !ValidURL(opts.URL) {
		return opts, fmt.Errorf("url %q must start with http:// or https://", opts.URL)
	}
	if opts.ComponentName == "" {
		opts.ComponentName = generate.DefaultComponentName
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "generated"
	}
	if opts.Timeout == 0 {
		opts.Timeout = crawler.DefaultTimeout
	}
	if opts.SettleDelay == 0 {
		opts.SettleDelay = crawler.DefaultSettleDelay
	}
	if opts.MaxPerCategory == 0 {
		opts.MaxPerCategory = crawler.DefaultMaxPerCategory
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts, nil
}

func Run(ctx context.Context, opts Options) error {
	opts, err := normalizeOptions(opts)
	if err != nil {
		return err
	}

	c, err := newCrawler(crawler.Options{
		Headless:       opts.Headless,
		Timeout:        opts.Timeout,
		SettleDelay:    opts.SettleDelay,
		MaxPerCategory: opts.MaxPerCategory,
		Logger:         opts.Logger,
	})
	if err != nil {
		return err
	}
	defer c.Close()

	fmt.Printf("Crawling %s...\n", opts.URL)
	result, err := c.Crawl(ctx, opts.URL)
	if err != nil {
		return err
	}
	if len(result.Elements) == 0 {
		return fmt.Errorf("no visible elements extracted from %s", opts.URL)
	}

	report.Analyze(result.Elements).Write(os.Stdout)

	component, err := generate.NewGenerator(opts.ComponentName).Generate(result)
	if err != nil {
		return err
	}

	path, err := output.Write(opts.OutputDir, opts.ComponentName, component)
	if err != nil {
		return err
	}

	fmt.Printf("Component written to %s\n", path)
	return nil
}
