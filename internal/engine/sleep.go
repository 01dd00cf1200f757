package engine

import "math"

// DefaultSleepWindow is the number of most-recent sleep sessions considered
// when computing averages.
const DefaultSleepWindow = 7

// SleepSample is the slice of a sleep session the aggregator needs.
type SleepSample struct {
	DurationMin int
	Quality     int
}

// SleepSummary holds windowed sleep averages, both rounded to one decimal.
// Zero values mean "no data", not an error.
type SleepSummary struct {
	AvgHours   float64 `json:"avg_hours"`
	AvgQuality float64 `json:"avg_quality"`
}

// AggregateSleep reduces a window of sleep sessions into average nightly
// hours and average quality. Callers pass the most recent sessions (newest
// first); anything beyond DefaultSleepWindow is ignored. An empty window
// yields the zero summary.
func AggregateSleep(samples []SleepSample) SleepSummary {
	if len(samples) == 0 {
		return SleepSummary{}
	}
	if len(samples) > DefaultSleepWindow {
		samples = samples[:DefaultSleepWindow]
	}

	var totalMin, totalQuality int
	for _, s := range samples {
		totalMin += s.DurationMin
		totalQuality += s.Quality
	}

	n := float64(len(samples))
	avgMin := float64(totalMin) / n
	return SleepSummary{
		AvgHours:   round1(avgMin / 60),
		AvgQuality: round1(float64(totalQuality) / n),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
