package heuristics

import (
	"regexp"
	"strconv"
	"strings"
)

// employeeCountRe captures an employee count with optional thousands
// separators, a k suffix, or a trailing "+", followed by an employee keyword.
var employeeCountRe = regexp.MustCompile(`([\d,]+)\s*(k)?\s*\+?\s*(?:employees|people|person company|team members|staff)`)

// companySizeBuckets maps an upper bound (exclusive) to its display bucket.
// Evaluated in order.
var companySizeBuckets = []struct {
	below  int
	bucket string
}{
	{11, "1-10"},
	{51, "11-50"},
	{201, "51-200"},
	{501, "201-500"},
	{1001, "501-1000"},
	{5001, "1001-5000"},
	{10001, "5001-10000"},
}

// companySizeKeywords is the fallback when no explicit count is present.
var companySizeKeywords = []struct {
	keywords []string
	bucket   string
}{
	{[]string{"early-stage startup", "early stage startup", "seed-stage"}, "1-10"},
	{[]string{"small startup", "small team"}, "11-50"},
	{[]string{"growing startup", "mid-size", "mid-sized", "medium-sized"}, "51-200"},
	{[]string{"large company", "large enterprise", "enterprise company", "fortune 500", "multinational"}, "10001+"},
}

// CompanySize extracts a bucketed employee-count range from page text.
// Structured extraction (a number followed by an employee keyword) is tried
// first, then keyword buckets. Returns "" when nothing matches; there is no
// sensible default to force.
func CompanySize(pageText string) string {
	text := strings.ToLower(pageText)

	if m := employeeCountRe.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if n, err := strconv.Atoi(raw); err == nil {
			if m[2] == "k" {
				n *= 1000
			}
			return bucketEmployeeCount(n)
		}
	}

	for _, rule := range companySizeKeywords {
		if containsAny(text, rule.keywords) {
			return rule.bucket
		}
	}
	return ""
}

func bucketEmployeeCount(n int) string {
	for _, b := range companySizeBuckets {
		if n < b.below {
			return b.bucket
		}
	}
	return "10001+"
}
