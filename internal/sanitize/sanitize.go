// Package sanitize normalizes model output into a standalone HTML document.
package sanitize

import "strings"

const (
	doctype    = "<!DOCTYPE html>"
	htmlFence  = "```html"
	plainFence = "```"
)

// CleanHTML strips markdown code fences from raw model output and makes sure
// the result starts as a proper HTML document. Deterministic and idempotent
// for input without fence markers.
func CleanHTML(raw string) string {
	out := strings.TrimSpace(extractFenced(raw))

	if !strings.HasPrefix(out, doctype) && !strings.HasPrefix(out, "<html") {
		out = doctype + "\n" + out
	}

	return strings.TrimSpace(out)
}

// extractFenced returns the text between the first fence opener and the LAST
// fence closer. The last-close policy tolerates fences inside the generated
// document, at the cost of over-extraction when unrelated fenced blocks
// follow it. A fence opener with no closer after it leaves the text as is.
func extractFenced(s string) string {
	if i := strings.Index(s, htmlFence); i >= 0 {
		start := i + len(htmlFence)
		if end := strings.LastIndex(s, plainFence); end > start {
			return s[start:end]
		}
		return s
	}

	if i := strings.Index(s, plainFence); i >= 0 {
		start := i + len(plainFence)
		if end := strings.LastIndex(s, plainFence); end > start {
			return s[start:end]
		}
		return s
	}

	return s
}
