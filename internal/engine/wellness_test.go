package engine

import "testing"

func TestComputeScore_AllBuckets(t *testing.T) {
	in := ScoreInputs{
		MoodEntries:   5,
		FitnessLevel:  10,
		AvgStressTier: 4,
		AvgSleepHours: 8,
		StreakDays:    3,
	}
	got := ComputeScore(in)

	// 20 + 25 + 20 + 25 + 6 = 96
	if got.Mood != 20 || got.Exercise != 25 || got.Stress != 20 || got.Sleep != 25 || got.Streak != 6 {
		t.Errorf("unexpected bucket breakdown: %+v", got)
	}
	if got.Total != 96 {
		t.Errorf("expected total 96, got %d", got.Total)
	}
	if got.Label != "Excellent" {
		t.Errorf("expected Excellent, got %q", got.Label)
	}
}

func TestComputeScore_NoData(t *testing.T) {
	got := ComputeScore(ScoreInputs{})
	if got.Total != 0 {
		t.Errorf("expected 0 for no data, got %d", got.Total)
	}
	if got.Label != "Needs Attention" {
		t.Errorf("expected Needs Attention, got %q", got.Label)
	}
}

func TestComputeScore_StreakClampsTotal(t *testing.T) {
	in := ScoreInputs{
		MoodEntries:   5,
		FitnessLevel:  10,
		AvgStressTier: 4,
		AvgSleepHours: 8,
		StreakDays:    50,
	}
	got := ComputeScore(in)
	if got.Streak != 100 {
		t.Errorf("streak bucket should be uncapped before the clamp, got %d", got.Streak)
	}
	if got.Total != 100 {
		t.Errorf("expected total clamped to 100, got %d", got.Total)
	}
}

func TestComputeScore_HighStressHalvesBucket(t *testing.T) {
	got := ComputeScore(ScoreInputs{AvgStressTier: 7.5})
	if got.Stress != 10 {
		t.Errorf("expected 10 for avg tier above 5, got %d", got.Stress)
	}

	got = ComputeScore(ScoreInputs{AvgStressTier: 5})
	if got.Stress != 20 {
		t.Errorf("expected 20 for avg tier at 5, got %d", got.Stress)
	}

	got = ComputeScore(ScoreInputs{AvgStressTier: 0})
	if got.Stress != 0 {
		t.Errorf("expected 0 for no stress data, got %d", got.Stress)
	}
}

func TestComputeScore_SleepBand(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0, 0},    // no data
		{5.5, 15}, // outside the 7-9 band
		{7, 25},
		{8.2, 25},
		{9, 25},
		{10.5, 15},
	}
	for _, c := range cases {
		got := ComputeScore(ScoreInputs{AvgSleepHours: c.hours})
		if got.Sleep != c.want {
			t.Errorf("sleep bucket for %.1fh = %d, want %d", c.hours, got.Sleep, c.want)
		}
	}
}

func TestScoreLabel(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "Excellent"}, {75, "Excellent"},
		{74, "Good"}, {50, "Good"},
		{49, "Fair"}, {25, "Fair"},
		{24, "Needs Attention"}, {0, "Needs Attention"},
	}
	for _, c := range cases {
		if got := ScoreLabel(c.score); got != c.want {
			t.Errorf("ScoreLabel(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestComputeScore_Idempotent(t *testing.T) {
	in := ScoreInputs{
		MoodEntries:   2,
		FitnessLevel:  7,
		AvgStressTier: 6.2,
		AvgSleepHours: 6.8,
		StreakDays:    4,
	}
	first := ComputeScore(in)
	for i := 0; i < 5; i++ {
		if got := ComputeScore(in); got != first {
			t.Fatalf("recompute %d differs: %+v vs %+v", i, got, first)
		}
	}
}
