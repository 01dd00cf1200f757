package engine

import (
	"strings"
	"testing"
)

// fixedPicker always selects the same index, making pool selection
// deterministic in tests.
type fixedPicker struct{ idx int }

func (p fixedPicker) Pick(n int) int {
	if p.idx >= n {
		return n - 1
	}
	return p.idx
}

func TestGenerateInsight_KnownMood(t *testing.T) {
	got := GenerateInsightWith(fixedPicker{0}, MoodHappy, 0)
	if got != insightPools[MoodHappy][0] {
		t.Errorf("expected first happy pool message, got %q", got)
	}
}

func TestGenerateInsight_UnknownMoodFallback(t *testing.T) {
	got := GenerateInsightWith(fixedPicker{0}, "melancholic", 0)
	if got != fallbackInsight {
		t.Errorf("expected fallback message, got %q", got)
	}
}

func TestGenerateInsight_NegativeSuffix(t *testing.T) {
	got := GenerateInsightWith(fixedPicker{1}, MoodSad, -0.5)
	if !strings.HasSuffix(got, negativeSuffix) {
		t.Errorf("expected self-care suffix, got %q", got)
	}
	if !strings.HasPrefix(got, insightPools[MoodSad][1]) {
		t.Errorf("expected second sad pool message as base, got %q", got)
	}
}

func TestGenerateInsight_PositiveSuffix(t *testing.T) {
	got := GenerateInsightWith(fixedPicker{2}, MoodHappy, 0.4)
	if !strings.HasSuffix(got, positiveSuffix) {
		t.Errorf("expected encouragement suffix, got %q", got)
	}
}

func TestGenerateInsight_NeutralSentimentNoSuffix(t *testing.T) {
	for _, sentiment := range []float64{-0.3, 0, 0.3} {
		got := GenerateInsightWith(fixedPicker{0}, MoodCalm, sentiment)
		if strings.HasSuffix(got, negativeSuffix) || strings.HasSuffix(got, positiveSuffix) {
			t.Errorf("sentiment %.1f should not append a suffix, got %q", sentiment, got)
		}
	}
}

func TestGenerateInsight_EveryMoodHasAPool(t *testing.T) {
	for _, mood := range Moods {
		pool, ok := insightPools[mood]
		if !ok || len(pool) == 0 {
			t.Errorf("mood %q has no insight pool", mood)
		}
	}
}

func TestGenerateInsight_DefaultPickerStaysInPool(t *testing.T) {
	// The default picker is random; every result must still come from the pool.
	pool := insightPools[MoodAnxious]
	for i := 0; i < 20; i++ {
		got := GenerateInsight(MoodAnxious, 0)
		found := false
		for _, msg := range pool {
			if got == msg {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("result %q not in anxious pool", got)
		}
	}
}
