package heuristics

import (
	"strings"

	"github.com/jordan/job-tracker/internal/types"
)

// jobTypeRules is evaluated in order; the first rule whose keywords appear in
// the page text wins. "remote" precedes "full-time" deliberately: a posting
// that is both remote and full-time is classified remote.
var jobTypeRules = []struct {
	keywords []string
	value    types.JobType
}{
	{[]string{"remote", "work from home", "work-from-home", "wfh"}, types.JobTypeRemote},
	{[]string{"internship", "intern position", "co-op", "coop program"}, types.JobTypeInternship},
	{[]string{"volunteer", "unpaid position"}, types.JobTypeVolunteer},
	{[]string{"part-time", "part time"}, types.JobTypePartTime},
	{[]string{"contract", "contractor", "freelance", "1099"}, types.JobTypeContract},
	{[]string{"temporary", "temp position", "seasonal"}, types.JobTypeTemporary},
	{[]string{"full-time", "full time"}, types.JobTypeFullTime},
}

// JobType classifies the employment arrangement from page text.
// Defaults to full-time when no keyword matches.
func JobType(pageText string) types.JobType {
	text := strings.ToLower(pageText)
	for _, rule := range jobTypeRules {
		if containsAny(text, rule.keywords) {
			return rule.value
		}
	}
	return types.JobTypeFullTime
}
