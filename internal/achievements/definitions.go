package achievements

import "fmt"

// Kind classifies what statistic an achievement is measured against.
type Kind string

// Recognized achievement kinds.
const (
	KindApplicationCount  Kind = "application_count"
	KindStreak            Kind = "streak"
	KindInterviewCount    Kind = "interview_count"
	KindOfferCount        Kind = "offer_count"
	KindDailyApplications Kind = "daily_applications"
)

// Definition describes one achievement and the threshold that unlocks it.
type Definition struct {
	Kind        Kind   `json:"kind"`
	Threshold   int    `json:"threshold"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Rarity      string `json:"rarity"`
}

// Key returns the stable identifier stored in the database,
// e.g. "application_count_10".
func (d Definition) Key() string {
	return fmt.Sprintf("%s_%d", d.Kind, d.Threshold)
}

// Definitions is the full fixed achievement table. Order matters only for
// presentation: within a kind, thresholds ascend.
var Definitions = []Definition{
	// Application count milestones
	{KindApplicationCount, 1, "First Step", "Applied to your first job", "milestone", "common"},
	{KindApplicationCount, 5, "Getting Started", "Applied to 5 jobs", "milestone", "common"},
	{KindApplicationCount, 10, "Double Digits", "Applied to 10 jobs", "milestone", "uncommon"},
	{KindApplicationCount, 25, "Quarter Century", "Applied to 25 jobs", "milestone", "uncommon"},
	{KindApplicationCount, 50, "Half Century", "Applied to 50 jobs", "milestone", "rare"},
	{KindApplicationCount, 100, "Century Club", "Applied to 100 jobs", "milestone", "epic"},
	{KindApplicationCount, 200, "Persistent", "Applied to 200 jobs", "milestone", "legendary"},
	{KindApplicationCount, 500, "Job Hunter", "Applied to 500 jobs", "milestone", "mythic"},

	// Streak milestones
	{KindStreak, 1, "Streak Starter", "Maintained your goal for 1 day", "streak", "common"},
	{KindStreak, 3, "Three Days Strong", "Maintained your goal for 3 consecutive days", "streak", "common"},
	{KindStreak, 7, "Week Warrior", "Maintained your goal for 7 consecutive days", "streak", "uncommon"},
	{KindStreak, 14, "Two Week Champion", "Maintained your goal for 14 consecutive days", "streak", "rare"},
	{KindStreak, 30, "Month Master", "Maintained your goal for 30 consecutive days", "streak", "epic"},
	{KindStreak, 60, "Unstoppable", "Maintained your goal for 60 consecutive days", "streak", "legendary"},
	{KindStreak, 100, "Streak Legend", "Maintained your goal for 100 consecutive days", "streak", "mythic"},

	// Interview milestones
	{KindInterviewCount, 1, "First Interview", "Got your first interview", "milestone", "uncommon"},
	{KindInterviewCount, 5, "Interview Pro", "Got 5 interviews", "milestone", "rare"},
	{KindInterviewCount, 10, "Interview Expert", "Got 10 interviews", "milestone", "epic"},

	// Offer milestones
	{KindOfferCount, 1, "First Offer", "Received your first job offer", "milestone", "rare"},
	{KindOfferCount, 3, "Multiple Offers", "Received 3 job offers", "milestone", "legendary"},

	// Single-day volume
	{KindDailyApplications, 5, "Speed Demon", "Applied to 5 jobs in one day", "speed", "uncommon"},
	{KindDailyApplications, 10, "Application Machine", "Applied to 10 jobs in one day", "speed", "rare"},
}

// ByKey returns the definition for the given key, or nil if unknown.
func ByKey(key string) *Definition {
	for i := range Definitions {
		if Definitions[i].Key() == key {
			return &Definitions[i]
		}
	}
	return nil
}
