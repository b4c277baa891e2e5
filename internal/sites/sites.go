// Package sites maps hostnames to per-site extraction strategies. Each
// adapter carries the ordered selector lists for that site's markup
// conventions; a generic adapter covers everything else.
package sites

import (
	"regexp"
	"strings"

	"github.com/jordan/job-tracker/internal/types"
)

// SiteKey identifies a configured site adapter.
type SiteKey string

// Configured site keys.
const (
	SiteLinkedIn      SiteKey = "linkedin"
	SiteIndeed        SiteKey = "indeed"
	SiteGlassdoor     SiteKey = "glassdoor"
	SiteGoogle        SiteKey = "google"
	SiteDice          SiteKey = "dice"
	SiteMonster       SiteKey = "monster"
	SiteZipRecruiter  SiteKey = "ziprecruiter"
	SiteStackOverflow SiteKey = "stackoverflow"
	SiteWellfound     SiteKey = "wellfound"
	SiteGeneric       SiteKey = "generic"
)

// Adapter is a static, compile-time extraction strategy for one site.
// Selector lists are ordered cascades: first non-empty match wins.
type Adapter struct {
	Key      SiteKey
	Platform types.SourcePlatform

	// hostSubstrings trigger selection of this adapter.
	hostSubstrings []string
	// jobPagePatterns recognize job-detail URLs for this site.
	jobPagePatterns []*regexp.Regexp

	titleSelectors       []string
	companySelectors     []string
	companyURLSelectors  []string
	locationSelectors    []string
	descriptionSelectors []string
	showMoreSelectors    []string
}

// ShowMoreSelectors returns the cascade of "expand description" controls for
// this site.
func (a *Adapter) ShowMoreSelectors() []string { return a.showMoreSelectors }

// IsJobPage reports whether url looks like a job-detail page for this site.
// The generic adapter has no patterns and always reports false; extraction
// still proceeds, the caller just withholds the tracking affordance.
func (a *Adapter) IsJobPage(url string) bool {
	for _, re := range a.jobPagePatterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// Detect returns the first adapter whose registered hostname substring is
// contained in hostname, or the generic adapter when no site matches.
func Detect(hostname string) *Adapter {
	host := strings.ToLower(hostname)
	for _, a := range adapters {
		for _, sub := range a.hostSubstrings {
			if strings.Contains(host, sub) {
				return a
			}
		}
	}
	return genericAdapter
}

// ByKey returns the adapter for a key, or the generic adapter for an
// unconfigured key.
func ByKey(key SiteKey) *Adapter {
	for _, a := range adapters {
		if a.Key == key {
			return a
		}
	}
	return genericAdapter
}
