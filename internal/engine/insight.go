package engine

import "math/rand"

// Picker selects an index in [0, n). Production code uses the uniform-random
// default; tests inject a fixed picker for deterministic output.
type Picker interface {
	Pick(n int) int
}

type randPicker struct{}

func (randPicker) Pick(n int) int { return rand.Intn(n) }

// UniformPicker is the default uniform-random pool selector.
var UniformPicker Picker = randPicker{}

// insightPools maps each mood category to its pool of candidate coaching
// messages.
var insightPools = map[string][]string{
	MoodHappy: {
		"Your positive mood is a great foundation for the day.",
		"Moments like this are worth savoring. What contributed to it?",
		"Happiness noted. Consider what you can repeat tomorrow.",
	},
	MoodCalm: {
		"A calm state is a great time for reflection or planning.",
		"Your steadiness today can anchor the rest of your week.",
		"Calm moods are worth noticing. What helped you get here?",
	},
	MoodNeutral: {
		"A neutral day is still a data point. Keep checking in.",
		"Steady and even. Small positive actions can tip the balance.",
		"Nothing remarkable is fine. Consistency in tracking matters most.",
	},
	MoodAnxious: {
		"Anxious feelings often ease with a few minutes of slow breathing.",
		"Naming what worries you can shrink it. Try writing one thing down.",
		"Anxiety is a signal, not a verdict. A short walk may help.",
	},
	MoodSad: {
		"Low days happen. Reaching out to someone you trust can help.",
		"Be gentle with yourself today. Small comforts count.",
		"Sadness noted. A familiar routine can provide some footing.",
	},
	MoodAngry: {
		"Anger carries energy. Physical movement is a safe outlet.",
		"Stepping away before responding usually pays off.",
		"Strong feelings fade. Revisit the trigger once you've cooled down.",
	},
	MoodStressed: {
		"Stress compounds quietly. A short break now beats a long one later.",
		"Try listing what's actually urgent. It's usually shorter than it feels.",
		"Under pressure, sleep and hydration matter more, not less.",
	},
}

// fallbackInsight is used for mood categories outside the fixed set.
const fallbackInsight = "Keep tracking your mood to identify patterns."

// Suffixes appended when the sentiment of the entry text is strongly polar.
const (
	negativeSuffix = " Your words suggest you might benefit from extra self-care today."
	positiveSuffix = " Your positive energy is wonderful to see!"
)

// GenerateInsight produces coaching text for a mood entry using the default
// uniform-random pool selection.
func GenerateInsight(mood string, sentiment float64) string {
	return GenerateInsightWith(UniformPicker, mood, sentiment)
}

// GenerateInsightWith produces coaching text for a mood entry, selecting from
// the mood's message pool via the given picker. A sentiment below -0.3
// appends a self-care suffix; above 0.3 appends an encouragement suffix.
// Unknown moods fall back to a single generic message.
func GenerateInsightWith(p Picker, mood string, sentiment float64) string {
	msg := fallbackInsight
	if pool, ok := insightPools[mood]; ok {
		msg = pool[p.Pick(len(pool))]
	}

	switch {
	case sentiment < -0.3:
		msg += negativeSuffix
	case sentiment > 0.3:
		msg += positiveSuffix
	}
	return msg
}
