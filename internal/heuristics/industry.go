package heuristics

import "strings"

// canonicalIndustries is the fixed display vocabulary. Order matters for the
// page-text scan: more specific names precede the generic ones that contain
// them as substrings.
var canonicalIndustries = []string{
	"Financial Technology",
	"Financial Services",
	"Information Technology",
	"Software Development",
	"Healthcare",
	"Biotechnology",
	"Pharmaceuticals",
	"E-Commerce",
	"Retail",
	"Education",
	"Manufacturing",
	"Automotive",
	"Aerospace",
	"Telecommunications",
	"Media & Entertainment",
	"Gaming",
	"Cybersecurity",
	"Consulting",
	"Insurance",
	"Real Estate",
	"Transportation & Logistics",
	"Energy",
	"Hospitality",
	"Government",
	"Nonprofit",
}

// industryAliases maps lowercase page-text keywords to canonical names.
// Evaluated in order; first hit wins.
var industryAliases = []struct {
	keyword   string
	canonical string
}{
	{"fintech", "Financial Technology"},
	{"financial technology", "Financial Technology"},
	{"financial services", "Financial Services"},
	{"banking", "Financial Services"},
	{"saas", "Software Development"},
	{"software company", "Software Development"},
	{"software development", "Software Development"},
	{"information technology", "Information Technology"},
	{"healthtech", "Healthcare"},
	{"healthcare", "Healthcare"},
	{"hospital", "Healthcare"},
	{"biotech", "Biotechnology"},
	{"pharmaceutical", "Pharmaceuticals"},
	{"e-commerce", "E-Commerce"},
	{"ecommerce", "E-Commerce"},
	{"edtech", "Education"},
	{"education", "Education"},
	{"manufacturing", "Manufacturing"},
	{"automotive", "Automotive"},
	{"aerospace", "Aerospace"},
	{"telecom", "Telecommunications"},
	{"entertainment", "Media & Entertainment"},
	{"gaming", "Gaming"},
	{"video game", "Gaming"},
	{"cybersecurity", "Cybersecurity"},
	{"information security", "Cybersecurity"},
	{"consulting", "Consulting"},
	{"insurance", "Insurance"},
	{"real estate", "Real Estate"},
	{"logistics", "Transportation & Logistics"},
	{"transportation", "Transportation & Logistics"},
	{"energy", "Energy"},
	{"hospitality", "Hospitality"},
	{"government", "Government"},
	{"public sector", "Government"},
	{"nonprofit", "Nonprofit"},
	{"non-profit", "Nonprofit"},
	{"retail", "Retail"},
}

// NormalizeIndustry maps a raw industry string (as a site displays it) onto
// the canonical vocabulary: exact match first, then substring containment in
// either direction. Unmatched text yields "" rather than a guess.
func NormalizeIndustry(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)

	for _, name := range canonicalIndustries {
		if strings.ToLower(name) == lower {
			return name
		}
	}
	for _, name := range canonicalIndustries {
		canonLower := strings.ToLower(name)
		if strings.Contains(lower, canonLower) || strings.Contains(canonLower, lower) {
			return name
		}
	}
	for _, alias := range industryAliases {
		if strings.Contains(lower, alias.keyword) {
			return alias.canonical
		}
	}
	return ""
}

// Industry scans full page text for industry signals. "" means no signal.
func Industry(pageText string) string {
	text := strings.ToLower(pageText)
	for _, alias := range industryAliases {
		if strings.Contains(text, alias.keyword) {
			return alias.canonical
		}
	}
	return ""
}
