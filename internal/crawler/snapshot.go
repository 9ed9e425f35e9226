package crawler

import (
	"errors"
	"fmt"
)

// snapshotScript is the fixed payload evaluated against every candidate
// node inside the document context. It is the single place that touches
// browser APIs; any change to the returned shape must be mirrored in
// decodeSnapshot.
const snapshotScript = `(el) => {
	const rect = el.getBoundingClientRect();
	const computed = window.getComputedStyle(el);

	const attrs = {};
	for (const attr of el.attributes || []) {
		attrs[attr.name] = attr.value;
	}

	return {
		tag: el.tagName.toLowerCase(),
		text: (el.textContent || '').trim().substring(0, 100),
		classes: el.className || '',
		styles: {
			'display': computed.display,
			'position': computed.position,
			'width': computed.width,
			'height': computed.height,
			'padding': computed.padding,
			'margin': computed.margin,
			'font-size': computed.fontSize,
			'font-weight': computed.fontWeight,
			'color': computed.color,
			'background-color': computed.backgroundColor,
			'border-radius': computed.borderRadius,
			'box-shadow': computed.boxShadow
		},
		attributes: attrs,
		position: {
			x: rect.x,
			y: rect.y,
			width: rect.width,
			height: rect.height
		},
		visible: rect.width > 0 && rect.height > 0 && computed.display !== 'none'
	};
}`

type elementSnapshot struct {
	Tag        string
	Text       string
	Classes    string
	Styles     map[string]string
	Attributes map[string]string
	Position   Position
	Visible    bool
}

// decodeSnapshot converts the generic value returned by the snapshot script
// into an elementSnapshot. Numeric position fields may arrive as int or
// float64 depending on the evaluation result.
func decodeSnapshot(raw any) (elementSnapshot, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return elementSnapshot{}, fmt.Errorf("snapshot returned %T, want object", raw)
	}

	snap := elementSnapshot{
		Tag:        asString(obj["tag"]),
		Text:       asString(obj["text"]),
		Classes:    asString(obj["classes"]),
		Styles:     asStringMap(obj["styles"]),
		Attributes: asStringMap(obj["attributes"]),
		Visible:    asBool(obj["visible"]),
	}
	if pos, ok := obj["position"].(map[string]any); ok {
		snap.Position = Position{
			X:      asFloat(pos["x"]),
			Y:      asFloat(pos["y"]),
			Width:  asFloat(pos["width"]),
			Height: asFloat(pos["height"]),
		}
	}

	if snap.Tag == "" {
		return elementSnapshot{}, errors.New("snapshot missing tag")
	}
	return snap, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func asStringMap(v any) map[string]string {
	obj, ok := v.(map[string]any)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(obj))
	for key, value := range obj {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}
