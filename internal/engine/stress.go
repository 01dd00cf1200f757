package engine

// Heart rate bounds accepted for a stress reading. Values outside this range
// are rejected as invalid input rather than classified.
const (
	MinHeartRate = 20
	MaxHeartRate = 250
)

// interventionTier is the lowest stress tier that warrants an intervention
// prompt.
const interventionTier = 7

// ClassifyStress maps a heart rate sample (bpm) to a discrete stress tier.
//
// The mapping is a monotonic step function over fixed breakpoints; boundary
// values belong to the higher bucket:
//
//	<60 → 2, <70 → 3, <80 → 5, <90 → 7, <100 → 8, else → 9
func ClassifyStress(heartRateBpm int) int {
	switch {
	case heartRateBpm < 60:
		return 2
	case heartRateBpm < 70:
		return 3
	case heartRateBpm < 80:
		return 5
	case heartRateBpm < 90:
		return 7
	case heartRateBpm < 100:
		return 8
	default:
		return 9
	}
}

// ShouldTriggerIntervention reports whether a stress tier is high enough to
// prompt the user toward a calming exercise.
func ShouldTriggerIntervention(tier int) bool {
	return tier >= interventionTier
}
