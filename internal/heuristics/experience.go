package heuristics

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jordan/job-tracker/internal/types"
)

// experienceRules is evaluated in order; more specific seniority signals come
// before generic ones so "senior engineering manager" reads as management.
var experienceRules = []struct {
	keywords []string
	value    types.ExperienceLevel
}{
	{[]string{"engineering manager", "director of", "head of", "vp of", "vice president", "chief "}, types.LevelManagement},
	{[]string{"principal engineer", "principal ", "staff engineer", "distinguished engineer", "architect"}, types.LevelPrincipal},
	{[]string{"senior ", "sr. ", "sr "}, types.LevelSenior},
	{[]string{"entry level", "entry-level", "junior ", "jr. ", "new grad", "recent graduate", "internship"}, types.LevelEntry},
}

var yearsRe = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)

// ExperienceLevel infers seniority from page text. Title keywords take
// precedence; otherwise a years-of-experience figure is bucketed. Defaults
// to mid when nothing matches.
func ExperienceLevel(pageText string) types.ExperienceLevel {
	text := strings.ToLower(pageText)
	for _, rule := range experienceRules {
		if containsAny(text, rule.keywords) {
			return rule.value
		}
	}
	if m := yearsRe.FindStringSubmatch(text); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case years <= 1:
				return types.LevelEntry
			case years <= 4:
				return types.LevelMid
			case years <= 9:
				return types.LevelSenior
			default:
				return types.LevelPrincipal
			}
		}
	}
	return types.LevelMid
}
