package dom

// ResolveText evaluates each selector in order against doc and returns the
// first non-empty trimmed text. Returns "" when nothing matches. A selector
// the query engine cannot parse counts as a non-match and resolution moves on.
func ResolveText(doc Document, selectors []string) string {
	for _, sel := range selectors {
		if text := doc.QueryText(sel); text != "" {
			return text
		}
	}
	return ""
}

// ResolveAttribute behaves like ResolveText but reads an attribute value
// instead of text content.
func ResolveAttribute(doc Document, selectors []string, attr string) string {
	for _, sel := range selectors {
		if val := doc.QueryAttribute(sel, attr); val != "" {
			return val
		}
	}
	return ""
}
