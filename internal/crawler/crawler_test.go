package crawler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeProvider struct {
	installErr error
	runErr     error
	runner     *fakeRunner
}

func (p *fakeProvider) Install() error {
	return p.installErr
}

func (p *fakeProvider) Run() (browserRunner, error) {
	if p.runErr != nil {
		return nil, p.runErr
	}
	if p.runner == nil {
		p.runner = &fakeRunner{}
	}
	return p.runner, nil
}

type fakeRunner struct {
	launchErr error
	browser   *fakeBrowser
	headless  bool
	stopped   bool
}

func (r *fakeRunner) Launch(headless bool) (browserHandle, error) {
	r.headless = headless
	if r.launchErr != nil {
		return nil, r.launchErr
	}
	if r.browser == nil {
		r.browser = &fakeBrowser{}
	}
	return r.browser, nil
}

func (r *fakeRunner) Stop() error {
	r.stopped = true
	return nil
}

type fakeBrowser struct {
	newPageErr error
	page       *fakePage
	closed     bool
}

func (b *fakeBrowser) NewPage() (pageHandle, error) {
	if b.newPageErr != nil {
		return nil, b.newPageErr
	}
	if b.page == nil {
		b.page = &fakePage{}
	}
	return b.page, nil
}

func (b *fakeBrowser) Close() error {
	b.closed = true
	return nil
}

type fakePage struct {
	gotoErr     error
	status      int
	idleErr     error
	title       string
	titleErr    error
	nodes       map[string][]nodeHandle
	queryErr    map[string]error
	closed      bool
	gotoURL     string
	gotoTimeout time.Duration
	slept       time.Duration
}

func (p *fakePage) Goto(url string, timeout time.Duration) (int, error) {
	p.gotoURL = url
	p.gotoTimeout = timeout
	return p.status, p.gotoErr
}

func (p *fakePage) WaitForNetworkIdle(time.Duration) error {
	return p.idleErr
}

func (p *fakePage) Sleep(d time.Duration) {
	p.slept = d
}

func (p *fakePage) Title() (string, error) {
	return p.title, p.titleErr
}

func (p *fakePage) QueryAll(selector string) ([]nodeHandle, error) {
	if err, ok := p.queryErr[selector]; ok {
		return nil, err
	}
	return p.nodes[selector], nil
}

func (p *fakePage) Close() error {
	p.closed = true
	return nil
}

type fakeNode struct {
	result any
	err    error
}

func (n *fakeNode) Eval(string) (any, error) {
	return n.result, n.err
}

func snapshotValue(tag, text string, visible bool) map[string]any {
	return map[string]any{
		"tag":     tag,
		"text":    text,
		"classes": "",
		"styles": map[string]any{
			"display": "block",
		},
		"attributes": map[string]any{},
		"position": map[string]any{
			"x": 0, "y": 0, "width": 100, "height": 20,
		},
		"visible": visible,
	}
}

func visibleNode(tag, text string) *fakeNode {
	return &fakeNode{result: snapshotValue(tag, text, true)}
}

func newTestCrawler(t *testing.T, page *fakePage) (*Crawler, *fakeProvider) {
	t.Helper()
	provider := &fakeProvider{runner: &fakeRunner{browser: &fakeBrowser{page: page}}}
	c, err := newWith(Options{Headless: true, Timeout: time.Second}, provider)
	if err != nil {
		t.Fatalf("newWith: %v", err)
	}
	return c, provider
}

func TestNew_InstallError(t *testing.T) {
	_, err := newWith(Options{}, &fakeProvider{installErr: errors.New("nope")})
	if err == nil || !strings.Contains(err.Error(), "install playwright") {
		t.Fatalf("expected install error, got %v", err)
	}
}

func TestNew_LaunchErrorStopsRunner(t *testing.T) {
	runner := &fakeRunner{launchErr: errors.New("launch")}
	_, err := newWith(Options{}, &fakeProvider{runner: runner})
	if err == nil || err.Error() != "launch" {
		t.Fatalf("expected launch error, got %v", err)
	}
	if !runner.stopped {
		t.Fatal("expected runner to be stopped after launch failure")
	}
}

func TestCrawl_BrowserNotInitialized(t *testing.T) {
	var c *Crawler
	_, err := c.Crawl(context.Background(), "https://example.com")
	var crawlErr *CrawlingError
	if !errors.As(err, &crawlErr) {
		t.Fatalf("expected CrawlingError, got %v", err)
	}
	if !strings.Contains(err.Error(), "browser not initialized") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCrawl_AfterCloseFails(t *testing.T) {
	c, provider := newTestCrawler(t, &fakePage{status: 200})
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !provider.runner.stopped {
		t.Fatal("expected runner stopped")
	}
	_, err := c.Crawl(context.Background(), "https://example.com")
	if err == nil || !strings.Contains(err.Error(), "browser not initialized") {
		t.Fatalf("expected not-initialized error, got %v", err)
	}
}

func TestCrawl_GotoError(t *testing.T) {
	page := &fakePage{gotoErr: errors.New("net::ERR_NAME_NOT_RESOLVED")}
	c, _ := newTestCrawler(t, page)
	defer c.Close()

	_, err := c.Crawl(context.Background(), "https://bad.example")
	var crawlErr *CrawlingError
	if !errors.As(err, &crawlErr) {
		t.Fatalf("expected CrawlingError, got %v", err)
	}
	if !page.closed {
		t.Fatal("expected page closed after failed navigation")
	}
}

func TestCrawl_NoResponse(t *testing.T) {
	c, _ := newTestCrawler(t, &fakePage{status: 0})
	defer c.Close()

	_, err := c.Crawl(context.Background(), "https://example.com")
	if err == nil || !strings.Contains(err.Error(), "no response") {
		t.Fatalf("expected no-response error, got %v", err)
	}
}

func TestCrawl_BadStatus(t *testing.T) {
	c, _ := newTestCrawler(t, &fakePage{status: 404})
	defer c.Close()

	_, err := c.Crawl(context.Background(), "https://example.com/missing")
	var crawlErr *CrawlingError
	if !errors.As(err, &crawlErr) {
		t.Fatalf("expected CrawlingError, got %v", err)
	}
	if !strings.Contains(err.Error(), "http status 404") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCrawl_NetworkIdleTimeout(t *testing.T) {
	page := &fakePage{status: 200, idleErr: errors.New("timeout exceeded")}
	c, _ := newTestCrawler(t, page)
	defer c.Close()

	_, err := c.Crawl(context.Background(), "https://example.com")
	if err == nil || !strings.Contains(err.Error(), "wait for network idle") {
		t.Fatalf("expected idle error, got %v", err)
	}
	if !page.closed {
		t.Fatal("expected page closed after idle failure")
	}
}

func TestCrawl_CanceledContext(t *testing.T) {
	c, _ := newTestCrawler(t, &fakePage{status: 200})
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Crawl(ctx, "https://example.com")
	var crawlErr *CrawlingError
	if !errors.As(err, &crawlErr) {
		t.Fatalf("expected CrawlingError, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled cause, got %v", err)
	}
}

func TestCrawl_Success(t *testing.T) {
	page := &fakePage{
		status: 200,
		title:  "Example Domain",
		nodes: map[string][]nodeHandle{
			`h1, h2, h3, h4, h5, h6`: {visibleNode("h1", "Hello")},
		},
	}
	c, _ := newTestCrawler(t, page)
	defer c.Close()

	result, err := c.Crawl(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.URL != "https://example.com" {
		t.Fatalf("unexpected url: %s", result.URL)
	}
	if result.Title != "Example Domain" {
		t.Fatalf("unexpected title: %s", result.Title)
	}
	if len(result.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(result.Elements))
	}
	if result.Elements[0].Category != CategoryHeader {
		t.Fatalf("unexpected category: %s", result.Elements[0].Category)
	}
	if page.gotoURL != "https://example.com" {
		t.Fatalf("unexpected goto url: %s", page.gotoURL)
	}
	if page.slept != DefaultSettleDelay {
		t.Fatalf("expected settle delay %s, got %s", DefaultSettleDelay, page.slept)
	}
	if !page.closed {
		t.Fatal("expected page closed after successful crawl")
	}
}
