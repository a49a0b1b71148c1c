package textkit

import "strings"

// Render substitutes every occurrence of each binding token in template.
// Tokens with no binding are left in place.
func Render(template string, bindings map[string]string) string {
	if len(bindings) == 0 {
		return template
	}
	out := template
	for token, value := range bindings {
		out = strings.ReplaceAll(out, token, value)
	}
	return out
}

// Truncate cuts s to max runes, reserving three for an ellipsis marker.
// Applied after all substitutions so a token is never cut mid-way.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// RenderMax renders then truncates to max runes.
func RenderMax(template string, bindings map[string]string, max int) string {
	return Truncate(Render(template, bindings), max)
}
