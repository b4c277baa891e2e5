// Package dom abstracts read-only access to an HTML document behind a narrow
// interface so the extraction pipeline can run against parsed HTML in tests
// and against rendered pages in production.
package dom

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is the reader interface the pipeline depends on. Implementations
// never mutate page content; SimulateClick only reports whether a matching
// control exists (live implementations may activate it).
type Document interface {
	// URL returns the page URL the document was loaded from.
	URL() string
	// QueryText returns the trimmed text of the first element matching
	// selector, or "" when nothing matches. Invalid selectors are
	// non-matches, never errors.
	QueryText(selector string) string
	// QueryAttribute returns the named attribute of the first element
	// matching selector, or "" when nothing matches.
	QueryAttribute(selector, attr string) string
	// QueryAllText returns the trimmed text of up to max elements matching
	// selector, skipping empties. max <= 0 means no limit.
	QueryAllText(selector string, max int) []string
	// SimulateClick activates the first element matching selector and
	// reports whether one was found.
	SimulateClick(selector string) bool
	// FullText returns the visible text of the whole document.
	FullText() string
}

// HTMLDocument is a goquery-backed Document over static HTML.
type HTMLDocument struct {
	doc *goquery.Document
	url string
}

// ParseHTML builds an HTMLDocument from raw HTML and the URL it came from.
func ParseHTML(html, url string) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &HTMLDocument{doc: doc, url: url}, nil
}

// URL returns the page URL.
func (d *HTMLDocument) URL() string { return d.url }

// QueryText returns the trimmed text of the first non-empty match.
func (d *HTMLDocument) QueryText(selector string) (text string) {
	// cascadia treats malformed selectors as matching nothing, but guard
	// anyway: a bad selector must not abort the cascade.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	sel := d.doc.Find(selector)
	if sel.Length() == 0 {
		return ""
	}
	return cleanText(sel.First().Text())
}

// QueryAttribute returns the named attribute of the first match.
func (d *HTMLDocument) QueryAttribute(selector, attr string) (val string) {
	defer func() {
		if recover() != nil {
			val = ""
		}
	}()
	sel := d.doc.Find(selector)
	if sel.Length() == 0 {
		return ""
	}
	v, ok := sel.First().Attr(attr)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// QueryAllText returns trimmed text for up to max matches.
func (d *HTMLDocument) QueryAllText(selector string, max int) (out []string) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	d.doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if max > 0 && len(out) >= max {
			return false
		}
		if t := cleanText(s.Text()); t != "" {
			out = append(out, t)
		}
		return true
	})
	return out
}

// SimulateClick reports whether a matching control exists. Static HTML has
// nothing to activate, so presence is all it can offer; the live renderer
// performs the actual click before the HTML ever reaches this package.
func (d *HTMLDocument) SimulateClick(selector string) (found bool) {
	defer func() {
		if recover() != nil {
			found = false
		}
	}()
	return d.doc.Find(selector).Length() > 0
}

// FullText returns the visible text of the page body with scripts and styles
// stripped and whitespace collapsed.
func (d *HTMLDocument) FullText() string {
	clone := goquery.CloneDocument(d.doc)
	clone.Find("script, style, noscript").Remove()
	body := clone.Find("body")
	if body.Length() == 0 {
		return cleanText(clone.Text())
	}
	return cleanText(body.Text())
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// cleanText collapses runs of whitespace and trims the result.
func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
