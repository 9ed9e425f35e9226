package crawler

import "log/slog"

// Rule pairs a CSS selector with the category assigned to its matches.
type Rule struct {
	Selector string
	Category Category
}

// Rule order drives output order: navigation and headers lead, generic
// content comes last. A node matching several rules is captured once per
// rule; cross-category duplicates are intentional.
var rules = []Rule{
	{`nav, [role="navigation"]`, CategoryNavigation},
	{`h1, h2, h3, h4, h5, h6`, CategoryHeader},
	{`button, [role="button"]`, CategoryButton},
	{`a[href]`, CategoryLink},
	{`img[src]`, CategoryImage},
	{`input, textarea, select`, CategoryForm},
	{`p, span, div`, CategoryContent},
}

// Rules returns a copy of the category rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// extractElements runs the rule table against a loaded page. Extraction is
// best effort: a failing selector contributes zero elements and a failing
// node is skipped, neither aborts the pass.
func extractElements(page pageHandle, maxPerCategory int, log *slog.Logger) []Element {
	if maxPerCategory <= 0 {
		maxPerCategory = DefaultMaxPerCategory
	}

	elements := []Element{}
	for _, rule := range rules {
		nodes, err := page.QueryAll(rule.Selector)
		if err != nil {
			log.Debug("selector query failed", "selector", rule.Selector, "error", err)
			continue
		}
		if len(nodes) > maxPerCategory {
			nodes = nodes[:maxPerCategory]
		}
		for _, node := range nodes {
			el, ok := extractNode(node, rule.Category, log)
			if !ok {
				continue
			}
			elements = append(elements, el)
		}
	}
	return elements
}

func extractNode(node nodeHandle, category Category, log *slog.Logger) (Element, bool) {
	raw, err := node.Eval(snapshotScript)
	if err != nil {
		log.Debug("node snapshot failed", "category", string(category), "error", err)
		return Element{}, false
	}
	snap, err := decodeSnapshot(raw)
	if err != nil {
		log.Debug("node snapshot decode failed", "category", string(category), "error", err)
		return Element{}, false
	}
	if !snap.Visible || snap.Text == "" {
		return Element{}, false
	}
	return Element{
		Tag:        snap.Tag,
		Text:       snap.Text,
		Classes:    snap.Classes,
		Styles:     snap.Styles,
		Attributes: snap.Attributes,
		Position:   snap.Position,
		Category:   category,
	}, true
}
