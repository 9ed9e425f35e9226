package crawler

// Category is the semantic role assigned to an extracted element by the
// selector rule that matched it.
type Category string

const (
	CategoryNavigation Category = "navigation"
	CategoryHeader     Category = "header"
	CategoryButton     Category = "button"
	CategoryLink       Category = "link"
	CategoryImage      Category = "image"
	CategoryForm       Category = "form"
	CategoryContent    Category = "content"
)

// Position is an element's bounding box in viewport coordinates at capture
// time.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Element is an immutable snapshot of one visible DOM node. Elements are
// only built for nodes with a non-zero rendered box and non-empty trimmed
// text.
type Element struct {
	Tag        string            `json:"tag"`
	Text       string            `json:"text"`
	Classes    string            `json:"classes"`
	Styles     map[string]string `json:"styles"`
	Attributes map[string]string `json:"attributes"`
	Position   Position          `json:"position"`
	Category   Category          `json:"category"`
}

// CrawlResult holds everything extracted from one page load. Elements keep
// rule-table order, then per-rule DOM order.
type CrawlResult struct {
	URL      string    `json:"url"`
	Title    string    `json:"title"`
	Elements []Element `json:"elements"`
}
