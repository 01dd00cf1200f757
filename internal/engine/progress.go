package engine

// MaxFitnessLevel is the ceiling for the fitness level.
const MaxFitnessLevel = 100

// Progress holds the streak and fitness level after an exercise completion.
type Progress struct {
	Streak       int `json:"streak"`
	FitnessLevel int `json:"fitness_level"`
}

// AdvanceProgress updates streak and fitness level for a completed exercise.
// The streak counts consecutive completions and always increments; the
// fitness level increments but saturates at MaxFitnessLevel.
func AdvanceProgress(currentStreak, currentFitnessLevel int) Progress {
	level := currentFitnessLevel + 1
	if level > MaxFitnessLevel {
		level = MaxFitnessLevel
	}
	return Progress{
		Streak:       currentStreak + 1,
		FitnessLevel: level,
	}
}
