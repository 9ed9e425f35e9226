package crawler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultTimeout        = 30 * time.Second
	DefaultSettleDelay    = 2 * time.Second
	DefaultMaxPerCategory = 10

	// Budget for the post-navigation networkidle wait.
	networkIdleBudget = 15 * time.Second
)

type Options struct {
	Headless       bool
	Timeout        time.Duration
	SettleDelay    time.Duration
	MaxPerCategory int
	Logger         *slog.Logger
}

// Crawler owns one browser instance shared by every Crawl call. Each call
// opens and closes its own page, so sequential or concurrent crawls against
// the same Crawler are safe; the browser handle itself is read-only after
// New.
type Crawler struct {
	opts    Options
	runner  browserRunner
	browser browserHandle
	log     *slog.Logger
}

// New installs the browser driver if needed and launches chromium once.
// Close must be called after the last Crawl.
func New(opts Options) (*Crawler, error) {
	return newWith(opts, playwrightProvider{})
}

func newWith(opts Options, provider browserProvider) (*Crawler, error) {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.SettleDelay == 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.MaxPerCategory <= 0 {
		opts.MaxPerCategory = DefaultMaxPerCategory
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	if err := provider.Install(); err != nil {
		return nil, fmt.Errorf("install playwright: %w", err)
	}
	runner, err := provider.Run()
	if err != nil {
		return nil, err
	}
	browser, err := runner.Launch(opts.Headless)
	if err != nil {
		_ = runner.Stop()
		return nil, err
	}

	return &Crawler{opts: opts, runner: runner, browser: browser, log: opts.Logger}, nil
}

func (c *Crawler) Close() error {
	var closeErr error
	if c.browser != nil {
		closeErr = c.browser.Close()
		c.browser = nil
	}
	if c.runner != nil {
		if err := c.runner.Stop(); err != nil && closeErr == nil {
			closeErr = err
		}
		c.runner = nil
	}
	return closeErr
}

// Crawl loads url and returns the extracted elements. A failed crawl is
// reported once; there is no retry.
func (c *Crawler) Crawl(ctx context.Context, url string) (CrawlResult, error) {
	if c == nil || c.browser == nil {
		return CrawlResult{}, &CrawlingError{URL: url, Err: errors.New("browser not initialized")}
	}
	if err := ctx.Err(); err != nil {
		return CrawlResult{}, &CrawlingError{URL: url, Err: err}
	}

	c.log.Info("starting crawl", "url", url)

	page, err := c.browser.NewPage()
	if err != nil {
		return CrawlResult{}, &CrawlingError{URL: url, Err: fmt.Errorf("open page: %w", err)}
	}
	defer func() { _ = page.Close() }()

	status, err := page.Goto(url, c.opts.Timeout)
	if err != nil {
		return CrawlResult{}, &CrawlingError{URL: url, Err: fmt.Errorf("navigate: %w", err)}
	}
	if status == 0 {
		return CrawlResult{}, &CrawlingError{URL: url, Err: errors.New("no response")}
	}
	if status >= 400 {
		return CrawlResult{}, &CrawlingError{URL: url, Err: fmt.Errorf("http status %d", status)}
	}

	if err := page.WaitForNetworkIdle(networkIdleBudget); err != nil {
		return CrawlResult{}, &CrawlingError{URL: url, Err: fmt.Errorf("wait for network idle: %w", err)}
	}
	// Extra settle time for client-side rendering. A heuristic, not a
	// guarantee.
	page.Sleep(c.opts.SettleDelay)

	title, err := page.Title()
	if err != nil {
		return CrawlResult{}, &CrawlingError{URL: url, Err: fmt.Errorf("read title: %w", err)}
	}

	elements := extractElements(page, c.opts.MaxPerCategory, c.log)
	c.log.Info("extraction complete", "url", url, "elements", len(elements))

	return CrawlResult{URL: url, Title: title, Elements: elements}, nil
}
