package engine

// ScoreInputs are the per-user aggregates the wellness score is computed
// from. They are re-read from storage on every recompute; the score is a pure
// function of this struct.
type ScoreInputs struct {
	MoodEntries   int     `json:"mood_entries"`
	FitnessLevel  int     `json:"fitness_level"`
	AvgStressTier float64 `json:"avg_stress_tier"`
	AvgSleepHours float64 `json:"avg_sleep_hours"`
	StreakDays    int     `json:"streak_days"`
}

// ScoreBreakdown is the wellness score with its per-bucket contributions.
type ScoreBreakdown struct {
	Mood     int `json:"mood"`
	Exercise int `json:"exercise"`
	Stress   int `json:"stress"`
	Sleep    int `json:"sleep"`
	Streak   int `json:"streak"`

	Total int    `json:"total"`
	Label string `json:"label"`
}

// ComputeScore combines the per-category aggregates into a single wellness
// score in [0, 100] plus a qualitative label.
//
// Each bucket contributes independently, then the sum is clamped to 100:
//   - mood activity:     20 points if any mood entries exist
//   - exercise activity: 25 points if the fitness level is above zero
//   - stress:            20 points for avg tier in (0, 5], 10 above 5, 0 for no data
//   - sleep:             25 points for 7-9h average, 15 for any other non-zero average
//   - streak:            2 points per streak day, uncapped before the final clamp
func ComputeScore(in ScoreInputs) ScoreBreakdown {
	var b ScoreBreakdown

	if in.MoodEntries > 0 {
		b.Mood = 20
	}

	if in.FitnessLevel > 0 {
		b.Exercise = 25
	}

	switch {
	case in.AvgStressTier > 5:
		b.Stress = 10
	case in.AvgStressTier > 0:
		b.Stress = 20
	}

	switch {
	case in.AvgSleepHours >= 7 && in.AvgSleepHours <= 9:
		b.Sleep = 25
	case in.AvgSleepHours > 0:
		b.Sleep = 15
	}

	b.Streak = 2 * in.StreakDays

	b.Total = b.Mood + b.Exercise + b.Stress + b.Sleep + b.Streak
	if b.Total > 100 {
		b.Total = 100
	}
	b.Label = ScoreLabel(b.Total)
	return b
}

// ScoreLabel maps a wellness score to its qualitative label.
func ScoreLabel(score int) string {
	switch {
	case score >= 75:
		return "Excellent"
	case score >= 50:
		return "Good"
	case score >= 25:
		return "Fair"
	default:
		return "Needs Attention"
	}
}
