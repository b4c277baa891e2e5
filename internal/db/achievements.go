package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UnlockAchievement records an achievement for the user. Returns true if the
// achievement was newly unlocked, false if it was already recorded.
func (db *DB) UnlockAchievement(ctx context.Context, userID uuid.UUID, key string) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`INSERT INTO achievements (user_id, achievement_key) VALUES ($1, $2)
		 ON CONFLICT (user_id, achievement_key) DO NOTHING`,
		userID, key,
	)
	if err != nil {
		return false, fmt.Errorf("failed to unlock achievement %s: %w", key, err)
	}
	return result.RowsAffected() > 0, nil
}

// ListAchievements retrieves the user's unlocked achievements, oldest first
func (db *DB) ListAchievements(ctx context.Context, userID uuid.UUID) ([]Achievement, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT user_id, achievement_key, unlocked_at
		 FROM achievements WHERE user_id = $1 ORDER BY unlocked_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []Achievement
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.UserID, &a.Key, &a.UnlockedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, nil
}
