// Package tracker is the service layer between the CLI and the store: each
// user action derives its interpreted signals through the engine and persists
// the result, and the wellness snapshot is recomputed from the accumulated
// signals across all categories.
package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fernbrook-labs/vitalog/internal/engine"
	"github.com/fernbrook-labs/vitalog/internal/store"
)

// Service wraps the store and the signal engine.
type Service struct {
	db     *store.DB
	picker engine.Picker
	now    func() time.Time
	newID  func() string
}

// New creates a Service over the given database.
func New(db *store.DB) *Service {
	return &Service{
		db:     db,
		picker: engine.UniformPicker,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// LogMood derives sentiment and insight for a mood entry and persists it.
func (s *Service) LogMood(userID, mood, body string, shared bool) (*store.MoodEntry, error) {
	if !engine.IsValidMood(mood) {
		return nil, fmt.Errorf("unknown mood %q (valid: %v): %w", mood, engine.Moods, engine.ErrInvalidInput)
	}

	sentiment := engine.ScoreSentiment(body)
	entry := &store.MoodEntry{
		ID:        s.newID(),
		UserID:    userID,
		Mood:      mood,
		Body:      body,
		Sentiment: sentiment,
		Insight:   engine.GenerateInsightWith(s.picker, mood, sentiment),
		Shared:    shared,
		CreatedAt: s.now(),
	}
	if err := s.db.InsertMoodEntry(entry); err != nil {
		return nil, fmt.Errorf("inserting mood entry: %w", err)
	}
	return entry, nil
}

// RecordStress classifies a heart-rate sample and persists the reading.
func (s *Service) RecordStress(userID string, heartRateBpm int, source string) (*store.StressReading, error) {
	if heartRateBpm < engine.MinHeartRate || heartRateBpm > engine.MaxHeartRate {
		return nil, fmt.Errorf("heart rate %d outside %d-%d bpm: %w",
			heartRateBpm, engine.MinHeartRate, engine.MaxHeartRate, engine.ErrInvalidInput)
	}
	if !engine.IsValidSource(source) {
		return nil, fmt.Errorf("unknown source %q (valid: %v): %w", source, engine.Sources, engine.ErrInvalidInput)
	}

	tier := engine.ClassifyStress(heartRateBpm)
	reading := &store.StressReading{
		ID:           s.newID(),
		UserID:       userID,
		HeartRate:    heartRateBpm,
		Tier:         tier,
		Source:       source,
		Intervention: engine.ShouldTriggerIntervention(tier),
		CreatedAt:    s.now(),
	}
	if err := s.db.InsertStressReading(reading); err != nil {
		return nil, fmt.Errorf("inserting stress reading: %w", err)
	}
	return reading, nil
}

// LogSleep validates and persists a sleep session. The end must not precede
// the start and the quality rating must be within 1-10; shape violations are
// rejected before any duration is derived.
func (s *Service) LogSleep(userID string, start, end time.Time, quality int, routineFollowed bool) (*store.SleepSession, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("sleep end %s before start %s: %w",
			end.Format(time.RFC3339), start.Format(time.RFC3339), engine.ErrInvalidInput)
	}
	if quality < 1 || quality > 10 {
		return nil, fmt.Errorf("quality %d outside 1-10: %w", quality, engine.ErrInvalidInput)
	}

	session := &store.SleepSession{
		ID:              s.newID(),
		UserID:          userID,
		Start:           start,
		End:             end,
		DurationMin:     int(end.Sub(start).Minutes()),
		Quality:         quality,
		RoutineFollowed: routineFollowed,
	}
	if err := s.db.InsertSleepSession(session); err != nil {
		return nil, fmt.Errorf("inserting sleep session: %w", err)
	}
	return session, nil
}

// CompleteExercise advances the user's streak and fitness level and appends a
// completion record snapshotting both.
func (s *Service) CompleteExercise(userID, exercise string, score int) (*store.ExerciseCompletion, error) {
	latest, err := s.db.LatestExerciseCompletion(userID)
	if err != nil {
		return nil, fmt.Errorf("loading latest completion: %w", err)
	}

	var streak, level int
	if latest != nil {
		streak = latest.Streak
		level = latest.FitnessLevel
	}
	progress := engine.AdvanceProgress(streak, level)

	completion := &store.ExerciseCompletion{
		ID:           s.newID(),
		UserID:       userID,
		Exercise:     exercise,
		Score:        score,
		Streak:       progress.Streak,
		FitnessLevel: progress.FitnessLevel,
		CreatedAt:    s.now(),
	}
	if err := s.db.InsertExerciseCompletion(completion); err != nil {
		return nil, fmt.Errorf("inserting completion: %w", err)
	}
	return completion, nil
}

// SleepSummary returns the averages over the user's most recent sleep window.
func (s *Service) SleepSummary(userID string) (engine.SleepSummary, error) {
	sessions, err := s.db.ListSleepSessions(userID, engine.DefaultSleepWindow)
	if err != nil {
		return engine.SleepSummary{}, fmt.Errorf("loading sleep sessions: %w", err)
	}
	return engine.AggregateSleep(sleepSamples(sessions)), nil
}

// RecomputeWellness reads the per-category aggregates back from storage,
// recomputes the wellness score from scratch, and replaces the user's
// snapshot. The four reads are independent and issued concurrently; the
// score is only computed once all of them have completed. If any read fails
// the previous snapshot is left untouched.
func (s *Service) RecomputeWellness(userID string) (*store.WellnessSnapshot, error) {
	var (
		moodCount int
		latest    *store.ExerciseCompletion
		avgTier   float64
		sessions  []store.SleepSession
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		moodCount, err = s.db.CountMoodEntries(userID)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = s.db.LatestExerciseCompletion(userID)
		return err
	})
	g.Go(func() error {
		var err error
		avgTier, err = s.db.AvgStressTier(userID)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.db.ListSleepSessions(userID, engine.DefaultSleepWindow)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading aggregates: %w", err)
	}

	var fitnessLevel, streakDays int
	if latest != nil {
		fitnessLevel = latest.FitnessLevel
		streakDays = latest.Streak
	}
	sleep := engine.AggregateSleep(sleepSamples(sessions))

	breakdown := engine.ComputeScore(engine.ScoreInputs{
		MoodEntries:   moodCount,
		FitnessLevel:  fitnessLevel,
		AvgStressTier: avgTier,
		AvgSleepHours: sleep.AvgHours,
		StreakDays:    streakDays,
	})

	snapshot := &store.WellnessSnapshot{
		UserID:        userID,
		Score:         breakdown.Total,
		Label:         breakdown.Label,
		MoodEntries:   moodCount,
		FitnessLevel:  fitnessLevel,
		AvgStressTier: avgTier,
		AvgSleepHours: sleep.AvgHours,
		StreakDays:    streakDays,
		ComputedAt:    s.now(),
	}
	if err := s.db.UpsertWellnessSnapshot(snapshot); err != nil {
		return nil, fmt.Errorf("writing snapshot: %w", err)
	}
	return snapshot, nil
}

// Breakdown recomputes the per-bucket score contributions for display without
// writing anything.
func (s *Service) Breakdown(snapshot *store.WellnessSnapshot) engine.ScoreBreakdown {
	return engine.ComputeScore(engine.ScoreInputs{
		MoodEntries:   snapshot.MoodEntries,
		FitnessLevel:  snapshot.FitnessLevel,
		AvgStressTier: snapshot.AvgStressTier,
		AvgSleepHours: snapshot.AvgSleepHours,
		StreakDays:    snapshot.StreakDays,
	})
}

func sleepSamples(sessions []store.SleepSession) []engine.SleepSample {
	samples := make([]engine.SleepSample, len(sessions))
	for i, sess := range sessions {
		samples[i] = engine.SleepSample{DurationMin: sess.DurationMin, Quality: sess.Quality}
	}
	return samples
}
