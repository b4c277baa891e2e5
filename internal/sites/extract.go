package sites

import (
	"regexp"
	"strings"

	"github.com/jordan/job-tracker/internal/dom"
	"github.com/jordan/job-tracker/internal/types"
)

// cityStateRe matches "San Francisco, CA" style fragments. Precision of the
// whole-page fallback is unverified; it exists only as a last resort when a
// site's dedicated location markup is absent.
var cityStateRe = regexp.MustCompile(`^[A-Z][A-Za-z .'\-]+,\s*[A-Z]{2}\b`)

var remoteLocationRe = regexp.MustCompile(`(?i)^remote(\s*[-(].*)?$`)

// locationBlocklist excludes navigation/chrome phrases the scan would
// otherwise mistake for locations.
var locationBlocklist = []string{
	"search by",
	"preferences",
	"sign in",
	"sign up",
	"notifications",
	"easy apply",
	"save job",
	"similar jobs",
}

const maxLocationCandidateLen = 60

// Extract resolves this site's selector cascades against doc and returns a
// partial JobPosting. Every field is independently optional; a field whose
// cascade finds nothing is simply left empty.
func (a *Adapter) Extract(doc dom.Document) types.JobPosting {
	posting := types.JobPosting{
		Title:       dom.ResolveText(doc, a.titleSelectors),
		CompanyName: dom.ResolveText(doc, a.companySelectors),
		CompanyURL:  dom.ResolveAttribute(doc, a.companyURLSelectors, "href"),
		Location:    dom.ResolveText(doc, a.locationSelectors),
		Description: dom.ResolveText(doc, a.descriptionSelectors),

		SourceURL:      doc.URL(),
		SourcePlatform: a.Platform,
	}

	if posting.Location == "" {
		posting.Location = fallbackLocation(doc)
	}
	return posting
}

// fallbackLocation scans short text nodes for city/state-shaped fragments,
// skipping known non-location phrases.
func fallbackLocation(doc dom.Document) string {
	candidates := doc.QueryAllText("span, p, li, div", 400)
	for _, text := range candidates {
		if len(text) > maxLocationCandidateLen {
			continue
		}
		if isBlockedPhrase(text) {
			continue
		}
		if cityStateRe.MatchString(text) || remoteLocationRe.MatchString(text) {
			return text
		}
	}
	return ""
}

func isBlockedPhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, blocked := range locationBlocklist {
		if strings.Contains(lower, blocked) {
			return true
		}
	}
	return false
}
