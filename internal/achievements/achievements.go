// Package achievements unlocks badges as application activity crosses fixed
// thresholds. The definition table is static; unlocked achievements are
// persisted so they survive stat changes (a deleted application never
// re-locks a badge).
package achievements

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jordan/job-tracker/internal/db"
	"github.com/jordan/job-tracker/internal/streaks"
)

// Store is the subset of database access the service needs.
type Store interface {
	CountApplications(ctx context.Context, userID uuid.UUID) (int, error)
	CountApplicationsByStatus(ctx context.Context, userID uuid.UUID, status string) (int, error)
	DailyApplicationCounts(ctx context.Context, userID uuid.UUID, since time.Time) ([]db.DailyCount, error)
	UnlockAchievement(ctx context.Context, userID uuid.UUID, key string) (bool, error)
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]db.Achievement, error)
}

// StreakSource supplies the current streak, normally *streaks.Service.
type StreakSource interface {
	Stats(ctx context.Context, userID uuid.UUID) (*streaks.Stats, error)
}

// UserStats are the measurements achievements are checked against.
type UserStats struct {
	TotalApplications int
	CurrentStreak     int
	TotalInterviews   int // reached interview stage: status interview or offer
	TotalOffers       int
	TodayApplications int
}

// Evaluate returns every definition whose threshold the stats satisfy.
func Evaluate(stats UserStats) []Definition {
	var met []Definition
	for _, def := range Definitions {
		var value int
		switch def.Kind {
		case KindApplicationCount:
			value = stats.TotalApplications
		case KindStreak:
			value = stats.CurrentStreak
		case KindInterviewCount:
			value = stats.TotalInterviews
		case KindOfferCount:
			value = stats.TotalOffers
		case KindDailyApplications:
			value = stats.TodayApplications
		}
		if value >= def.Threshold {
			met = append(met, def)
		}
	}
	return met
}

// Status pairs a definition with its unlock state and progress.
type Status struct {
	Definition
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
	Progress   int        `json:"progress"`
}

// Service checks and persists achievement unlocks.
type Service struct {
	store  Store
	streak StreakSource
	now    func() time.Time
}

// New creates an achievement service. now may be nil to use the wall clock.
func New(store Store, streak StreakSource, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, streak: streak, now: now}
}

// CheckAndUnlock evaluates the user's stats and persists any newly crossed
// thresholds. It returns only the achievements unlocked by this call.
func (s *Service) CheckAndUnlock(ctx context.Context, userID uuid.UUID) ([]Definition, error) {
	stats, err := s.collectStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	var newlyUnlocked []Definition
	for _, def := range Evaluate(stats) {
		fresh, err := s.store.UnlockAchievement(ctx, userID, def.Key())
		if err != nil {
			return nil, err
		}
		if fresh {
			newlyUnlocked = append(newlyUnlocked, def)
		}
	}
	return newlyUnlocked, nil
}

// List returns the full achievement table annotated with the user's unlock
// state and progress toward locked ones.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Status, error) {
	stats, err := s.collectStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.store.ListAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, a := range unlocked {
		unlockedAt[a.Key] = a.UnlockedAt
	}

	statuses := make([]Status, 0, len(Definitions))
	for _, def := range Definitions {
		st := Status{Definition: def, Progress: progressFor(def, stats)}
		if at, ok := unlockedAt[def.Key()]; ok {
			st.Unlocked = true
			t := at
			st.UnlockedAt = &t
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func progressFor(def Definition, stats UserStats) int {
	var value int
	switch def.Kind {
	case KindApplicationCount:
		value = stats.TotalApplications
	case KindStreak:
		value = stats.CurrentStreak
	case KindInterviewCount:
		value = stats.TotalInterviews
	case KindOfferCount:
		value = stats.TotalOffers
	case KindDailyApplications:
		value = stats.TodayApplications
	}
	if value > def.Threshold {
		return def.Threshold
	}
	return value
}

func (s *Service) collectStats(ctx context.Context, userID uuid.UUID) (UserStats, error) {
	var stats UserStats

	total, err := s.store.CountApplications(ctx, userID)
	if err != nil {
		return stats, err
	}
	stats.TotalApplications = total

	// Interview stage includes offers: an offer implies the candidate
	// interviewed.
	interviews, err := s.store.CountApplicationsByStatus(ctx, userID, db.StatusInterview)
	if err != nil {
		return stats, err
	}
	offers, err := s.store.CountApplicationsByStatus(ctx, userID, db.StatusOffer)
	if err != nil {
		return stats, err
	}
	stats.TotalInterviews = interviews + offers
	stats.TotalOffers = offers

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	counts, err := s.store.DailyApplicationCounts(ctx, userID, today)
	if err != nil {
		return stats, err
	}
	for _, c := range counts {
		stats.TodayApplications += c.Count
	}

	if s.streak != nil {
		streakStats, err := s.streak.Stats(ctx, userID)
		if err != nil {
			return stats, err
		}
		stats.CurrentStreak = streakStats.CurrentStreak
	}
	return stats, nil
}
