package crawler

import "fmt"

// CrawlingError is a fatal failure while loading or extracting a page.
// Per-node and per-rule extraction failures are skipped instead and never
// surface as a CrawlingError.
type CrawlingError struct {
	URL string
	Err error
}

func (e *CrawlingError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("crawl: %v", e.Err)
	}
	return fmt.Sprintf("crawl %s: %v", e.URL, e.Err)
}

func (e *CrawlingError) Unwrap() error { return e.Err }
