package store

import (
	"database/sql"
	"time"
)

// UpsertWellnessSnapshot writes the user's current wellness snapshot,
// replacing any previous one. The write is a single idempotent upsert:
// recomputing from unchanged inputs produces the same stored row.
func (db *DB) UpsertWellnessSnapshot(s *WellnessSnapshot) error {
	_, err := db.conn.Exec(
		`INSERT INTO wellness_snapshots
		(user_id, score, label, mood_entries, fitness_level, avg_stress_tier,
		 avg_sleep_hours, streak_days, computed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			score = excluded.score,
			label = excluded.label,
			mood_entries = excluded.mood_entries,
			fitness_level = excluded.fitness_level,
			avg_stress_tier = excluded.avg_stress_tier,
			avg_sleep_hours = excluded.avg_sleep_hours,
			streak_days = excluded.streak_days,
			computed_at = excluded.computed_at`,
		s.UserID, s.Score, s.Label, s.MoodEntries, s.FitnessLevel,
		s.AvgStressTier, s.AvgSleepHours, s.StreakDays,
		s.ComputedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// GetWellnessSnapshot returns the user's current snapshot, or nil if none
// has been computed yet.
func (db *DB) GetWellnessSnapshot(userID string) (*WellnessSnapshot, error) {
	row := db.conn.QueryRow(
		`SELECT user_id, score, label, mood_entries, fitness_level,
		 avg_stress_tier, avg_sleep_hours, streak_days, computed_at
		FROM wellness_snapshots WHERE user_id = ?`,
		userID,
	)

	var s WellnessSnapshot
	var computedAt string
	err := row.Scan(&s.UserID, &s.Score, &s.Label, &s.MoodEntries, &s.FitnessLevel,
		&s.AvgStressTier, &s.AvgSleepHours, &s.StreakDays, &computedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.ComputedAt, _ = time.Parse(time.RFC3339, computedAt)
	return &s, nil
}
