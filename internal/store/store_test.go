package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMoodEntries_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	entries := []MoodEntry{
		{ID: "m1", UserID: "u1", Mood: "happy", Body: "great morning", Sentiment: 0.2, Insight: "a", Shared: true, CreatedAt: base},
		{ID: "m2", UserID: "u1", Mood: "sad", Sentiment: -0.1, Insight: "b", CreatedAt: base.Add(time.Hour)},
		{ID: "m3", UserID: "u2", Mood: "calm", Sentiment: 0, Insight: "c", CreatedAt: base},
	}
	for i := range entries {
		require.NoError(t, db.InsertMoodEntry(&entries[i]))
	}

	got, err := db.ListMoodEntries("u1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "m2", got[0].ID, "newest first")
	require.Equal(t, "m1", got[1].ID)
	require.Equal(t, "great morning", got[1].Body)
	require.True(t, got[1].Shared)
	require.Equal(t, 0.2, got[1].Sentiment)
	require.True(t, got[1].CreatedAt.Equal(base))

	count, err := db.CountMoodEntries("u1")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = db.CountMoodEntries("nobody")
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestStressReadings_RoundTripAndAvg(t *testing.T) {
	db := newTestDB(t)

	base := time.Date(2026, 8, 2, 8, 0, 0, 0, time.UTC)
	readings := []StressReading{
		{ID: "s1", UserID: "u1", HeartRate: 65, Tier: 3, Source: "manual", CreatedAt: base},
		{ID: "s2", UserID: "u1", HeartRate: 95, Tier: 8, Source: "wearable", Intervention: true, CreatedAt: base.Add(time.Hour)},
	}
	for i := range readings {
		require.NoError(t, db.InsertStressReading(&readings[i]))
	}

	got, err := db.ListStressReadings("u1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "s2", got[0].ID)
	require.True(t, got[0].Intervention)

	avg, err := db.AvgStressTier("u1")
	require.NoError(t, err)
	require.Equal(t, 5.5, avg)

	// No readings means 0, not an error.
	avg, err = db.AvgStressTier("nobody")
	require.NoError(t, err)
	require.Equal(t, 0.0, avg)
}

func TestSleepSessions_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	night := time.Date(2026, 8, 3, 23, 0, 0, 0, time.UTC)
	s := SleepSession{
		ID: "n1", UserID: "u1",
		Start: night, End: night.Add(7 * time.Hour),
		DurationMin: 420, Quality: 8, RoutineFollowed: true,
	}
	require.NoError(t, db.InsertSleepSession(&s))

	got, err := db.ListSleepSessions("u1", 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 420, got[0].DurationMin)
	require.Equal(t, 8, got[0].Quality)
	require.True(t, got[0].RoutineFollowed)
	require.True(t, got[0].Start.Equal(night))
}

func TestExerciseCompletions_LatestSnapshot(t *testing.T) {
	db := newTestDB(t)

	latest, err := db.LatestExerciseCompletion("u1")
	require.NoError(t, err)
	require.Nil(t, latest, "no completions yet")

	base := time.Date(2026, 8, 4, 7, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		c := ExerciseCompletion{
			ID: string(rune('a'+i)), UserID: "u1", Exercise: "breathing",
			Score: 10 * i, Streak: i, FitnessLevel: i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.InsertExerciseCompletion(&c))
	}

	latest, err = db.LatestExerciseCompletion("u1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, 3, latest.Streak)
	require.Equal(t, 3, latest.FitnessLevel)
	require.Equal(t, 30, latest.Score)

	all, err := db.ListExerciseCompletions("u1", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, 3, all[0].Streak, "newest first")
}

func TestWellnessSnapshot_UpsertReplaces(t *testing.T) {
	db := newTestDB(t)

	got, err := db.GetWellnessSnapshot("u1")
	require.NoError(t, err)
	require.Nil(t, got, "no snapshot before first compute")

	now := time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)
	first := WellnessSnapshot{
		UserID: "u1", Score: 45, Label: "Fair",
		MoodEntries: 1, FitnessLevel: 2, AvgStressTier: 5.5,
		AvgSleepHours: 6.5, StreakDays: 2, ComputedAt: now,
	}
	require.NoError(t, db.UpsertWellnessSnapshot(&first))

	second := first
	second.Score = 96
	second.Label = "Excellent"
	second.ComputedAt = now.Add(time.Hour)
	require.NoError(t, db.UpsertWellnessSnapshot(&second))

	got, err = db.GetWellnessSnapshot("u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 96, got.Score)
	require.Equal(t, "Excellent", got.Label)

	// Only one row per user: last write wins, no history.
	var count int
	require.NoError(t, db.Conn().QueryRow(
		"SELECT COUNT(*) FROM wellness_snapshots WHERE user_id = ?", "u1",
	).Scan(&count))
	require.Equal(t, 1, count)
}
