// Package heuristics infers structured job fields from unstructured page text.
// Every heuristic is a pure function over the full visible text of a page,
// case-insensitive, driven by a fixed ordered rule table where the first
// matching rule wins. Misses are zero values, never errors.
package heuristics

import "strings"

// containsAny reports whether text (already lowercased) contains any of the
// given keywords.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
