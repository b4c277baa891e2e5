// Package streaks computes daily-goal streaks from application activity.
// A day counts toward a streak when the user submitted at least their daily
// goal of applications on that calendar day.
package streaks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jordan/job-tracker/internal/db"
)

// Lookback bounds how far back streak math reaches. Streaks longer than a
// year are reported as capped at the lookback horizon.
const Lookback = 365 * 24 * time.Hour

// Store is the subset of database access the service needs.
type Store interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	DailyApplicationCounts(ctx context.Context, userID uuid.UUID, since time.Time) ([]db.DailyCount, error)
}

// Stats summarizes a user's streak state.
type Stats struct {
	CurrentStreak      int  `json:"current_streak"`
	LongestStreak      int  `json:"longest_streak"`
	TodayCount         int  `json:"today_count"`
	DailyGoal          int  `json:"daily_goal"`
	GoalMetToday       bool `json:"goal_met_today"`
	GoalsMetLast30Days int  `json:"goals_met_last_30_days"`
}

// CalendarDay is one cell of the activity calendar.
type CalendarDay struct {
	Date         string `json:"date"` // YYYY-MM-DD
	Applications int    `json:"applications"`
	GoalMet      bool   `json:"goal_met"`
}

// Service computes streak statistics.
type Service struct {
	store Store
	now   func() time.Time
}

// New creates a streak service. now may be nil to use the wall clock.
func New(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Stats returns the user's current streak state.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %s", userID)
	}
	goal := user.DailyGoal
	if goal < 1 {
		goal = 1
	}

	today := dateOnly(s.now())
	counts, err := s.store.DailyApplicationCounts(ctx, userID, today.Add(-Lookback))
	if err != nil {
		return nil, err
	}
	byDay := indexByDay(counts)

	stats := &Stats{
		DailyGoal:  goal,
		TodayCount: byDay[today],
	}
	stats.GoalMetToday = stats.TodayCount >= goal
	stats.CurrentStreak = currentStreak(byDay, today, goal)
	stats.LongestStreak = longestStreak(byDay, goal)

	for i := 0; i < 30; i++ {
		if byDay[today.AddDate(0, 0, -i)] >= goal {
			stats.GoalsMetLast30Days++
		}
	}
	return stats, nil
}

// Calendar returns per-day activity for the last days days, oldest first.
// Days with no applications are included with a zero count.
func (s *Service) Calendar(ctx context.Context, userID uuid.UUID, days int) ([]CalendarDay, error) {
	if days <= 0 {
		days = 90
	}
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %s", userID)
	}
	goal := user.DailyGoal
	if goal < 1 {
		goal = 1
	}

	today := dateOnly(s.now())
	start := today.AddDate(0, 0, -(days - 1))
	counts, err := s.store.DailyApplicationCounts(ctx, userID, start)
	if err != nil {
		return nil, err
	}
	byDay := indexByDay(counts)

	calendar := make([]CalendarDay, 0, days)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		n := byDay[d]
		calendar = append(calendar, CalendarDay{
			Date:         d.Format("2006-01-02"),
			Applications: n,
			GoalMet:      n >= goal,
		})
	}
	return calendar, nil
}

// Motivation returns a short progress message for the dashboard.
func (s *Service) Motivation(ctx context.Context, userID uuid.UUID) (string, error) {
	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return "", err
	}
	remaining := stats.DailyGoal - stats.TodayCount
	switch {
	case stats.CurrentStreak == 0 && stats.TodayCount == 0:
		return "Start your streak today: apply to your first job to build momentum.", nil
	case stats.CurrentStreak == 0 && remaining > 0:
		return fmt.Sprintf("Good progress. Apply to %d more to reach your daily goal.", remaining), nil
	case stats.CurrentStreak > 0 && remaining > 0:
		return fmt.Sprintf("Don't break your %d-day streak: %d more to go today.", stats.CurrentStreak, remaining), nil
	default:
		return fmt.Sprintf("You're on a %d-day streak and hitting your daily goal.", stats.CurrentStreak), nil
	}
}

// currentStreak walks back from today counting consecutive goal-met days.
// A day with fewer applications than the goal ends the streak, today
// included.
func currentStreak(byDay map[time.Time]int, today time.Time, goal int) int {
	streak := 0
	for d := today; byDay[d] >= goal; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// longestStreak finds the longest run of consecutive goal-met days.
func longestStreak(byDay map[time.Time]int, goal int) int {
	longest := 0
	for d, n := range byDay {
		if n < goal {
			continue
		}
		// Only start counting at the beginning of a run.
		if byDay[d.AddDate(0, 0, -1)] >= goal {
			continue
		}
		run := 0
		for ; byDay[d] >= goal; d = d.AddDate(0, 0, 1) {
			run++
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func indexByDay(counts []db.DailyCount) map[time.Time]int {
	byDay := make(map[time.Time]int, len(counts))
	for _, c := range counts {
		byDay[dateOnly(c.Day)] = c.Count
	}
	return byDay
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
