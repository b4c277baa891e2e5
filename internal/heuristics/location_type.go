package heuristics

import (
	"strings"

	"github.com/jordan/job-tracker/internal/types"
)

// locationTypeRules: hybrid is checked before remote so a posting advertising
// "hybrid remote" classifies as hybrid.
var locationTypeRules = []struct {
	keywords []string
	value    types.LocationType
}{
	{[]string{"hybrid"}, types.LocationHybrid},
	{[]string{"remote", "work from home", "work-from-home", "fully distributed"}, types.LocationRemote},
	{[]string{"on-site", "onsite", "on site", "in office", "in-office", "in person", "in-person"}, types.LocationOnsite},
}

// LocationType infers where the work happens. There is no sensible default,
// so an empty value means the page gave no signal.
func LocationType(pageText string) types.LocationType {
	text := strings.ToLower(pageText)
	for _, rule := range locationTypeRules {
		if containsAny(text, rule.keywords) {
			return rule.value
		}
	}
	return ""
}
