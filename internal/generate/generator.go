package generate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"dcrawl/internal/crawler"
)

const (
	DefaultComponentName = "GeneratedComponent"

	maxTextLength = 50
	navCap        = 3
	sectionCap    = 5
)

// GenerationError wraps any failure while assembling component markup, with
// the cause preserved for diagnostics.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate component: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

var selfClosingTags = map[string]bool{
	"img":   true,
	"input": true,
	"br":    true,
	"hr":    true,
}

var whitespaceRE = regexp.MustCompile(`\s+`)

var timeNow = time.Now

// Generator renders a CrawlResult as a single React component source file
// styled with Tailwind utility classes.
type Generator struct {
	componentName string
}

func NewGenerator(componentName string) *Generator {
	if strings.TrimSpace(componentName) == "" {
		componentName = DefaultComponentName
	}
	return &Generator{componentName: componentName}
}

func (g *Generator) Generate(result crawler.CrawlResult) (string, error) {
	body, err := g.renderBody(result.Elements)
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	return g.renderComponent(body, result.URL), nil
}

type grouped struct {
	order []crawler.Category
	byCat map[crawler.Category][]crawler.Element
}

// groupByCategory preserves first-seen order of categories and insertion
// order of elements within each.
func groupByCategory(elements []crawler.Element) grouped {
	g := grouped{byCat: map[crawler.Category][]crawler.Element{}}
	for _, el := range elements {
		if _, ok := g.byCat[el.Category]; !ok {
			g.order = append(g.order, el.Category)
		}
		g.byCat[el.Category] = append(g.byCat[el.Category], el)
	}
	return g
}

func (g *Generator) renderBody(elements []crawler.Element) (string, error) {
	groups := groupByCategory(elements)
	lines := []string{}

	if navs := groups.byCat[crawler.CategoryNavigation]; len(navs) > 0 {
		lines = append(lines,
			"      {/* Navigation */}",
			`      <nav className="flex items-center justify-between px-6 py-4 border-b">`,
		)
		for _, el := range capElements(navs, navCap) {
			line, err := g.renderElement(el)
			if err != nil {
				return "", err
			}
			lines = append(lines, "        "+line)
		}
		lines = append(lines, "      </nav>", "")
	}

	if headers := groups.byCat[crawler.CategoryHeader]; len(headers) > 0 {
		lines = append(lines,
			"      {/* Headers */}",
			`      <header className="container mx-auto px-6 py-8">`,
		)
		for _, el := range capElements(headers, sectionCap) {
			line, err := g.renderElement(el)
			if err != nil {
				return "", err
			}
			lines = append(lines, "        "+line)
		}
		lines = append(lines, "      </header>", "")
	}

	lines = append(lines,
		"      {/* Main Content */}",
		`      <main className="container mx-auto px-6 py-8">`,
	)
	for _, cat := range groups.order {
		if cat == crawler.CategoryNavigation || cat == crawler.CategoryHeader {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("        {/* %s */}", titleCase(string(cat))),
			`        <section className="mb-6">`,
		)
		for _, el := range capElements(groups.byCat[cat], sectionCap) {
			line, err := g.renderElement(el)
			if err != nil {
				return "", err
			}
			lines = append(lines, "          "+line)
		}
		lines = append(lines, "        </section>", "")
	}
	lines = append(lines, "      </main>")

	return strings.Join(lines, "\n"), nil
}

func (g *Generator) renderElement(el crawler.Element) (string, error) {
	if el.Tag == "" {
		return "", fmt.Errorf("element without tag in category %q", el.Category)
	}

	classes := strings.Join(Classes(el.Styles, el.Classes), " ")
	attrs := attributeString(el, classes)

	if selfClosingTags[el.Tag] {
		return fmt.Sprintf("<%s%s />", el.Tag, attrs), nil
	}

	text := cleanText(el.Text)
	if runes := []rune(text); len(runes) > maxTextLength {
		text = string(runes[:maxTextLength]) + "..."
	}
	return fmt.Sprintf("<%s%s>%s</%s>", el.Tag, attrs, text, el.Tag), nil
}

func attributeString(el crawler.Element, classes string) string {
	attrs := []string{}
	if classes != "" {
		attrs = append(attrs, fmt.Sprintf(`className="%s"`, classes))
	}

	switch el.Tag {
	case "a":
		if href := el.Attributes["href"]; href != "" {
			if strings.HasPrefix(href, "http") {
				attrs = append(attrs, fmt.Sprintf(`href="%s"`, href))
			} else {
				// Relative and fragment links become inert placeholders.
				attrs = append(attrs, `href="#"`)
			}
		}
	case "img":
		if src := el.Attributes["src"]; src != "" {
			attrs = append(attrs, fmt.Sprintf(`src="%s"`, src))
			attrs = append(attrs, fmt.Sprintf(`alt="%s"`, el.Attributes["alt"]))
		}
	case "input":
		inputType := el.Attributes["type"]
		if inputType == "" {
			inputType = "text"
		}
		attrs = append(attrs, fmt.Sprintf(`type="%s"`, inputType))
		if placeholder := el.Attributes["placeholder"]; placeholder != "" {
			attrs = append(attrs, fmt.Sprintf(`placeholder="%s"`, placeholder))
		}
	}

	if len(attrs) == 0 {
		return ""
	}
	return " " + strings.Join(attrs, " ")
}

// cleanText prepares element text for JSX: escape double quotes and
// collapse all whitespace runs to single spaces.
func cleanText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, `"`, `\"`)
	text = strings.ReplaceAll(text, "\n", " ")
	return whitespaceRE.ReplaceAllString(text, " ")
}

func capElements(elements []crawler.Element, limit int) []crawler.Element {
	if len(elements) > limit {
		return elements[:limit]
	}
	return elements
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (g *Generator) renderComponent(body, sourceURL string) string {
	timestamp := timeNow().Format("2006-01-02 15:04:05")
	return fmt.Sprintf(`// Generated by dcrawl
// Generated on: %s
// Source: %s

import React from 'react';

function %s() {
  return (
    <div className="min-h-screen bg-white">
%s
    </div>
  );
}

export default %s;
`, timestamp, sourceURL, g.componentName, body, g.componentName)
}
