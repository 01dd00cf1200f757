package store

import (
	"database/sql"
	"time"
)

// InsertMoodEntry appends a mood entry.
func (db *DB) InsertMoodEntry(e *MoodEntry) error {
	_, err := db.conn.Exec(
		`INSERT INTO mood_entries
		(id, user_id, mood, body, sentiment, insight, shared, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Mood, e.Body, e.Sentiment, e.Insight, e.Shared,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListMoodEntries returns up to limit mood entries for a user, newest first.
func (db *DB) ListMoodEntries(userID string, limit int) ([]MoodEntry, error) {
	rows, err := db.conn.Query(
		`SELECT id, user_id, mood, body, sentiment, insight, shared, created_at
		FROM mood_entries WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []MoodEntry
	for rows.Next() {
		var e MoodEntry
		var body sql.NullString
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Mood, &body, &e.Sentiment, &e.Insight, &e.Shared, &createdAt); err != nil {
			return nil, err
		}
		e.Body = body.String
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountMoodEntries returns the total number of mood entries for a user.
func (db *DB) CountMoodEntries(userID string) (int, error) {
	var count int
	err := db.conn.QueryRow(
		"SELECT COUNT(*) FROM mood_entries WHERE user_id = ?", userID,
	).Scan(&count)
	return count, err
}

// InsertStressReading appends a stress reading.
func (db *DB) InsertStressReading(r *StressReading) error {
	_, err := db.conn.Exec(
		`INSERT INTO stress_readings
		(id, user_id, heart_rate, tier, source, intervention, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, r.HeartRate, r.Tier, r.Source, r.Intervention,
		r.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListStressReadings returns up to limit stress readings for a user, newest first.
func (db *DB) ListStressReadings(userID string, limit int) ([]StressReading, error) {
	rows, err := db.conn.Query(
		`SELECT id, user_id, heart_rate, tier, source, intervention, created_at
		FROM stress_readings WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var readings []StressReading
	for rows.Next() {
		var r StressReading
		var createdAt string
		if err := rows.Scan(&r.ID, &r.UserID, &r.HeartRate, &r.Tier, &r.Source, &r.Intervention, &createdAt); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		readings = append(readings, r)
	}
	return readings, rows.Err()
}

// AvgStressTier returns the average stress tier across all of a user's
// readings, or 0 if the user has none.
func (db *DB) AvgStressTier(userID string) (float64, error) {
	var avg sql.NullFloat64
	err := db.conn.QueryRow(
		"SELECT AVG(tier) FROM stress_readings WHERE user_id = ?", userID,
	).Scan(&avg)
	if err != nil {
		return 0, err
	}
	return avg.Float64, nil
}

// InsertSleepSession appends a sleep session.
func (db *DB) InsertSleepSession(s *SleepSession) error {
	_, err := db.conn.Exec(
		`INSERT INTO sleep_sessions
		(id, user_id, start_at, end_at, duration_min, quality, routine_followed)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID,
		s.Start.UTC().Format(time.RFC3339), s.End.UTC().Format(time.RFC3339),
		s.DurationMin, s.Quality, s.RoutineFollowed,
	)
	return err
}

// ListSleepSessions returns up to limit sleep sessions for a user, most
// recent sleep start first.
func (db *DB) ListSleepSessions(userID string, limit int) ([]SleepSession, error) {
	rows, err := db.conn.Query(
		`SELECT id, user_id, start_at, end_at, duration_min, quality, routine_followed
		FROM sleep_sessions WHERE user_id = ? ORDER BY start_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sessions []SleepSession
	for rows.Next() {
		var s SleepSession
		var start, end string
		if err := rows.Scan(&s.ID, &s.UserID, &start, &end, &s.DurationMin, &s.Quality, &s.RoutineFollowed); err != nil {
			return nil, err
		}
		s.Start, _ = time.Parse(time.RFC3339, start)
		s.End, _ = time.Parse(time.RFC3339, end)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// InsertExerciseCompletion appends an exercise completion.
func (db *DB) InsertExerciseCompletion(c *ExerciseCompletion) error {
	_, err := db.conn.Exec(
		`INSERT INTO exercise_completions
		(id, user_id, exercise, score, streak, fitness_level, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Exercise, c.Score, c.Streak, c.FitnessLevel,
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// LatestExerciseCompletion returns the user's most recent completion, or nil
// if they have none.
func (db *DB) LatestExerciseCompletion(userID string) (*ExerciseCompletion, error) {
	row := db.conn.QueryRow(
		`SELECT id, user_id, exercise, score, streak, fitness_level, created_at
		FROM exercise_completions WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		userID,
	)

	var c ExerciseCompletion
	var createdAt string
	err := row.Scan(&c.ID, &c.UserID, &c.Exercise, &c.Score, &c.Streak, &c.FitnessLevel, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &c, nil
}

// ListExerciseCompletions returns up to limit completions for a user, newest first.
func (db *DB) ListExerciseCompletions(userID string, limit int) ([]ExerciseCompletion, error) {
	rows, err := db.conn.Query(
		`SELECT id, user_id, exercise, score, streak, fitness_level, created_at
		FROM exercise_completions WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var completions []ExerciseCompletion
	for rows.Next() {
		var c ExerciseCompletion
		var createdAt string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Exercise, &c.Score, &c.Streak, &c.FitnessLevel, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		completions = append(completions, c)
	}
	return completions, rows.Err()
}
