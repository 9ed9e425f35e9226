package inspect

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	htmltomd "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"

	"dcrawl/internal/crawler"
)

const (
	userAgent          = "dcrawl/1.0"
	sampleLimit        = 3
	sampleTextLimit    = 60
	markdownCharsLimit = 2000
)

type options struct {
	URL        string
	TimeoutSec int
	Markdown   bool
}

// Run fetches a page without a browser and reports what the extraction
// selectors would match in the static HTML. Useful as a quick pre-flight
// before a full crawl.
func Run(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(opts.URL) == "" {
		return errors.New("--url is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(opts.TimeoutSec)*time.Second)
	defer cancel()

	html, err := fetchHTML(ctx, opts.URL)
	if err != nil {
		return err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return err
	}

	printRuleMatches(os.Stdout, doc)
	if opts.Markdown {
		return printMarkdownPreview(os.Stdout, html)
	}
	return nil
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := options{}
	fs.StringVar(&opts.URL, "url", "", "URL to inspect")
	fs.IntVar(&opts.TimeoutSec, "timeout", 30, "Timeout seconds")
	fs.BoolVar(&opts.Markdown, "markdown", false, "Print a Markdown preview of the page content")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func fetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("http status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func printRuleMatches(w io.Writer, doc *goquery.Document) {
	fmt.Fprintln(w, "Static selector matches:")
	for _, rule := range crawler.Rules() {
		sel := doc.Find(rule.Selector)
		fmt.Fprintf(w, "  %-12s %-32s %d\n", rule.Category, rule.Selector, sel.Length())
		sel.EachWithBreak(func(i int, s *goquery.Selection) bool {
			if i >= sampleLimit {
				return false
			}
			text := truncate(strings.TrimSpace(s.Text()), sampleTextLimit)
			if text != "" {
				fmt.Fprintf(w, "    - %s\n", text)
			}
			return true
		})
	}
	fmt.Fprintln(w, "\nNote: counts are from static HTML; a full crawl may differ on pages that render client-side.")
}

func printMarkdownPreview(w io.Writer, html string) error {
	conv := htmltomd.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())

	md, err := conv.ConvertString(html)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nMarkdown preview:")
	fmt.Fprintln(w, truncate(strings.TrimSpace(md), markdownCharsLimit))
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
