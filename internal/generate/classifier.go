package generate

import (
	"regexp"
	"strings"
)

const maxClassTokens = 8

// fallbackClass guarantees every generated element carries at least minimal
// spacing styling.
const fallbackClass = "p-2"

// tailwindPatterns recognizes utility tokens already present on a node so
// they can be carried into the generated markup verbatim.
var tailwindPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(p|m|px|py|mx|my|pt|pb|pl|pr|mt|mb|ml|mr)-\d+$`),
	regexp.MustCompile(`^text-(xs|sm|base|lg|xl|2xl|3xl|4xl|5xl|6xl)$`),
	regexp.MustCompile(`^text-(black|white|gray|red|blue|green|yellow)-\d+$`),
	regexp.MustCompile(`^bg-(black|white|gray|red|blue|green|yellow)-\d+$`),
	regexp.MustCompile(`^font-(thin|light|normal|medium|semibold|bold|extrabold|black)$`),
	regexp.MustCompile(`^(flex|block|inline|hidden|relative|absolute|fixed)$`),
	regexp.MustCompile(`^rounded(-sm|-md|-lg|-xl|-full)?$`),
	regexp.MustCompile(`^shadow(-sm|-md|-lg|-xl|-2xl)?$`),
}

// Classes maps a node's computed styles plus any pre-existing utility-like
// class names to an ordered, deduplicated list of Tailwind tokens. Pure and
// deterministic: identical inputs always yield identical output. Style
// matches use substring containment, a deliberately loose heuristic for
// values like "14px / 20px" or "rgba(0, 0, 0, 0.87)".
func Classes(styles map[string]string, existing string) []string {
	tokens := []string{}

	display := styles["display"]
	switch {
	case strings.Contains(display, "flex"):
		tokens = append(tokens, "flex")
	case strings.Contains(display, "block"):
		tokens = append(tokens, "block")
	}

	fontSize := styles["font-size"]
	switch {
	case strings.Contains(fontSize, "24px") || strings.Contains(fontSize, "2rem"):
		tokens = append(tokens, "text-2xl")
	case strings.Contains(fontSize, "20px"):
		tokens = append(tokens, "text-xl")
	case strings.Contains(fontSize, "18px"):
		tokens = append(tokens, "text-lg")
	case strings.Contains(fontSize, "14px"):
		tokens = append(tokens, "text-sm")
	}

	switch styles["font-weight"] {
	case "700", "bold":
		tokens = append(tokens, "font-bold")
	case "600", "500":
		tokens = append(tokens, "font-medium")
	}

	color := styles["color"]
	switch {
	case strings.Contains(color, "rgb(0, 0, 0)") || strings.Contains(color, "#000"):
		tokens = append(tokens, "text-black")
	case strings.Contains(color, "rgb(255, 255, 255)") || strings.Contains(color, "#fff"):
		tokens = append(tokens, "text-white")
	case strings.Contains(color, "gray") || strings.Contains(color, "grey"):
		tokens = append(tokens, "text-gray-600")
	}

	// Gray backgrounds stay unmapped; only the text-color branch
	// recognizes gray.
	background := styles["background-color"]
	switch {
	case strings.Contains(background, "rgb(255, 255, 255)") || strings.Contains(background, "#fff"):
		tokens = append(tokens, "bg-white")
	case strings.Contains(background, "rgb(0, 0, 0)") || strings.Contains(background, "#000"):
		tokens = append(tokens, "bg-black")
	}

	if padding := styles["padding"]; padding != "" && padding != "0px" {
		switch {
		case strings.Contains(padding, "16px") || strings.Contains(padding, "1rem"):
			tokens = append(tokens, "p-4")
		case strings.Contains(padding, "8px"):
			tokens = append(tokens, "p-2")
		default:
			tokens = append(tokens, "p-2")
		}
	}

	if radius := styles["border-radius"]; radius != "" && radius != "0px" {
		tokens = append(tokens, "rounded")
	}
	if shadow := styles["box-shadow"]; shadow != "" && shadow != "none" {
		tokens = append(tokens, "shadow")
	}

	for _, cls := range strings.Fields(existing) {
		if isTailwindClass(cls) {
			tokens = append(tokens, cls)
		}
	}

	tokens = dedupe(tokens)
	if len(tokens) > maxClassTokens {
		tokens = tokens[:maxClassTokens]
	}
	if len(tokens) == 0 {
		return []string{fallbackClass}
	}
	return tokens
}

func isTailwindClass(cls string) bool {
	for _, pattern := range tailwindPatterns {
		if pattern.MatchString(cls) {
			return true
		}
	}
	return false
}

func dedupe(tokens []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
