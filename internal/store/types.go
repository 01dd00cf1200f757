// Package store provides SQLite database access for vitalog observations and
// the derived wellness snapshot.
package store

import "time"

// MoodEntry is a logged mood observation with its derived signals.
// Entries are append-only and immutable once written.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Mood      string    `json:"mood"`
	Body      string    `json:"body,omitempty"`
	Sentiment float64   `json:"sentiment"`
	Insight   string    `json:"insight"`
	Shared    bool      `json:"shared"`
	CreatedAt time.Time `json:"created_at"`
}

// StressReading is a heart-rate sample with its derived stress tier.
type StressReading struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	HeartRate    int       `json:"heart_rate"`
	Tier         int       `json:"tier"`
	Source       string    `json:"source"`
	Intervention bool      `json:"intervention"`
	CreatedAt    time.Time `json:"created_at"`
}

// SleepSession is a logged night of sleep with its derived duration.
type SleepSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMin     int       `json:"duration_min"`
	Quality         int       `json:"quality"`
	RoutineFollowed bool      `json:"routine_followed"`
}

// ExerciseCompletion records a finished exercise session. Each row snapshots
// the streak and fitness level as they stood at completion time.
type ExerciseCompletion struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Exercise     string    `json:"exercise"`
	Score        int       `json:"score"`
	Streak       int       `json:"streak"`
	FitnessLevel int       `json:"fitness_level"`
	CreatedAt    time.Time `json:"created_at"`
}

// WellnessSnapshot is the single current derived aggregate per user. It is
// replaced, not versioned, on every recompute.
type WellnessSnapshot struct {
	UserID        string    `json:"user_id"`
	Score         int       `json:"score"`
	Label         string    `json:"label"`
	MoodEntries   int       `json:"mood_entries"`
	FitnessLevel  int       `json:"fitness_level"`
	AvgStressTier float64   `json:"avg_stress_tier"`
	AvgSleepHours float64   `json:"avg_sleep_hours"`
	StreakDays    int       `json:"streak_days"`
	ComputedAt    time.Time `json:"computed_at"`
}
