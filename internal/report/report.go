package report

import (
	"fmt"
	"io"

	"dcrawl/internal/crawler"
)

type CategoryCount struct {
	Category crawler.Category `json:"category"`
	Count    int              `json:"count"`
}

type Breakdown struct {
	Categories []CategoryCount `json:"categories"`
	Total      int             `json:"total"`
}

// Analyze counts extracted elements per category. Categories appear in the
// order they were first extracted, which follows the selector rule order.
func Analyze(elements []crawler.Element) Breakdown {
	order := []crawler.Category{}
	counts := map[crawler.Category]int{}
	for _, el := range elements {
		if _, ok := counts[el.Category]; !ok {
			order = append(order, el.Category)
		}
		counts[el.Category]++
	}

	breakdown := Breakdown{Total: len(elements)}
	for _, cat := range order {
		breakdown.Categories = append(breakdown.Categories, CategoryCount{
			Category: cat,
			Count:    counts[cat],
		})
	}
	return breakdown
}

func (b Breakdown) Write(w io.Writer) {
	fmt.Fprintf(w, "Extracted %d elements:\n", b.Total)
	for _, cc := range b.Categories {
		fmt.Fprintf(w, "  %s: %d\n", cc.Category, cc.Count)
	}
}
