// Package engine implements the wellness signal derivation rules: the pure
// functions that turn raw user observations (free text, heart rate samples,
// sleep timestamps, exercise completions) into interpreted signals (sentiment,
// stress tier, coaching insight, sleep averages, streak/level progression, and
// the aggregate wellness score).
//
// Every function here is deterministic for the same inputs, with one
// deliberate exception: insight message selection, which draws uniformly from
// a message pool through an injectable Picker.
package engine

import "errors"

// ErrInvalidInput is returned (wrapped) when an observation fails shape
// validation, e.g. a sleep session ending before it starts.
var ErrInvalidInput = errors.New("invalid input")

// Mood categories recognized by the insight generator.
const (
	MoodHappy    = "happy"
	MoodCalm     = "calm"
	MoodNeutral  = "neutral"
	MoodAnxious  = "anxious"
	MoodSad      = "sad"
	MoodAngry    = "angry"
	MoodStressed = "stressed"
)

// Moods lists all recognized mood categories in display order.
var Moods = []string{
	MoodHappy, MoodCalm, MoodNeutral, MoodAnxious, MoodSad, MoodAngry, MoodStressed,
}

// IsValidMood reports whether the given category is one of the fixed mood set.
func IsValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// Stress reading source tags.
const (
	SourceManual    = "manual"
	SourceWearable  = "wearable"
	SourceSimulated = "simulated"
)

// Sources lists all recognized stress reading sources.
var Sources = []string{SourceManual, SourceWearable, SourceSimulated}

// IsValidSource reports whether the given tag is one of the fixed source set.
func IsValidSource(source string) bool {
	for _, s := range Sources {
		if s == source {
			return true
		}
	}
	return false
}
