package engine

import "strings"

// positiveWords and negativeWords are the closed lexicons for sentiment
// scoring. Matching is substring containment against the lowercased input,
// so "happiness" matches "happy" and "stressful" matches "stress".
var positiveWords = []string{
	"happy", "joy", "love", "great", "good", "wonderful", "excited",
	"grateful", "peaceful", "amazing", "proud", "hopeful", "relaxed",
	"energized", "content",
}

var negativeWords = []string{
	"sad", "angry", "anxious", "stress", "tired", "worried", "awful",
	"terrible", "lonely", "depressed", "frustrated", "overwhelmed",
	"afraid", "upset", "exhausted",
}

// ScoreSentiment maps free text to a sentiment value in [-1, 1].
//
// Each positive lexicon word found in the lowercased text adds +0.1 and each
// negative word subtracts 0.1; the running total is clamped to [-1, 1].
// There is no tokenization, stemming, or negation handling. Empty text
// scores 0.
func ScoreSentiment(text string) float64 {
	if text == "" {
		return 0
	}

	lower := strings.ToLower(text)

	score := 0.0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			score += 0.1
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			score -= 0.1
		}
	}

	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}
