package heuristics

import (
	"regexp"
	"strings"
)

// salaryPatterns are tried in order; the first match is returned verbatim as
// free text. Salary is never parsed to a numeric range here.
var salaryPatterns = []*regexp.Regexp{
	// $120,000 - $150,000 / $120k-$150k, optional period suffix
	regexp.MustCompile(`\$\s?\d[\d,.]*\s*k?\s*(?:-|–|to)\s*\$?\s?\d[\d,.]*\s*k?(?:\s*(?:per\s+(?:hour|year|month|annum)|/\s*(?:hr|hour|yr|year|mo|month)|annually|hourly))?`),
	// single figure with a unit: $45/hr, $160,000 per year, 95k/year
	regexp.MustCompile(`(?:\$\s?\d[\d,.]*\s*k?|\d[\d,.]*\s*k)\s*(?:per\s+(?:hour|year|month|annum)|/\s*(?:hr|hour|yr|year|mo|month)|annually|hourly)`),
	// bare dollar figure of salary magnitude, e.g. $120,000
	regexp.MustCompile(`\$\s?\d{2,3},\d{3}`),
}

var salaryKeywords = []string{"competitive salary", "competitive compensation", "competitive pay"}

// SalaryText extracts the first salary-looking fragment from page text.
// Structured patterns are tried before keyword fallbacks; "" means no signal.
func SalaryText(pageText string) string {
	text := strings.ToLower(pageText)
	for _, re := range salaryPatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	for _, kw := range salaryKeywords {
		if strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}
