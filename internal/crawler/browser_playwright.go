package crawler

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

type browserProvider interface {
	Install() error
	Run() (browserRunner, error)
}

type browserRunner interface {
	Launch(headless bool) (browserHandle, error)
	Stop() error
}

type browserHandle interface {
	NewPage() (pageHandle, error)
	Close() error
}

type pageHandle interface {
	// Goto navigates and returns the main response status, or 0 when
	// navigation produced no response.
	Goto(url string, timeout time.Duration) (int, error)
	WaitForNetworkIdle(timeout time.Duration) error
	Sleep(d time.Duration)
	Title() (string, error)
	QueryAll(selector string) ([]nodeHandle, error)
	Close() error
}

type nodeHandle interface {
	Eval(script string) (any, error)
}

type playwrightProvider struct{}

func (playwrightProvider) Install() error {
	return playwright.Install(&playwright.RunOptions{})
}

func (playwrightProvider) Run() (browserRunner, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, err
	}
	return &playwrightRunner{pw: pw}, nil
}

type playwrightRunner struct {
	pw *playwright.Playwright
}

func (r *playwrightRunner) Launch(headless bool) (browserHandle, error) {
	browser, err := r.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		return nil, err
	}
	return &playwrightBrowser{browser: browser}, nil
}

func (r *playwrightRunner) Stop() error {
	return r.pw.Stop()
}

type playwrightBrowser struct {
	browser playwright.Browser
}

func (b *playwrightBrowser) NewPage() (pageHandle, error) {
	page, err := b.browser.NewPage()
	if err != nil {
		return nil, err
	}
	return &playwrightPage{page: page}, nil
}

func (b *playwrightBrowser) Close() error {
	return b.browser.Close()
}

type playwrightPage struct {
	page playwright.Page
}

func (p *playwrightPage) Goto(url string, timeout time.Duration) (int, error) {
	resp, err := p.page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return 0, err
	}
	if resp == nil {
		return 0, nil
	}
	return resp.Status(), nil
}

func (p *playwrightPage) WaitForNetworkIdle(timeout time.Duration) error {
	return p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (p *playwrightPage) Sleep(d time.Duration) {
	p.page.WaitForTimeout(float64(d.Milliseconds()))
}

func (p *playwrightPage) Title() (string, error) {
	return p.page.Title()
}

func (p *playwrightPage) QueryAll(selector string) ([]nodeHandle, error) {
	handles, err := p.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	nodes := make([]nodeHandle, 0, len(handles))
	for _, handle := range handles {
		nodes = append(nodes, &playwrightNode{handle: handle})
	}
	return nodes, nil
}

func (p *playwrightPage) Close() error {
	return p.page.Close()
}

type playwrightNode struct {
	handle playwright.ElementHandle
}

func (n *playwrightNode) Eval(script string) (any, error) {
	return n.handle.Evaluate(script)
}
