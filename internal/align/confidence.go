package align

import (
	"fmt"
	"math"
)

// phraseConfidence scores an exact-phrase hit. Full marks for a long phrase
// with no skipped opening words; shorter windows and skipped words erode
// trust in the match.
func phraseConfidence(m phraseMatch) int {
	confidence := 100
	switch {
	case m.wordCount < 5:
		confidence -= 15
	case m.wordCount < 7:
		confidence -= 10
	}
	skipped := m.wordsSkipped * 5
	if skipped > 15 {
		skipped = 15
	}
	return confidence - skipped
}

// similarityConfidence maps the combined 0-1 score directly onto 0-100.
func similarityConfidence(combined float64) int {
	return int(math.Round(combined * 100))
}

// partialWordsConfidence is the base score for the reserved partial_words
// kind; no current matcher produces it.
func partialWordsConfidence() int {
	return partialWordsScore
}

// penalize lowers a confidence by amount without dropping below the floor.
// Correction passes only ever lower confidence.
func penalize(confidence, amount int) int {
	confidence -= amount
	if confidence < confidenceFloor {
		confidence = confidenceFloor
	}
	return confidence
}

func phraseDetail(m phraseMatch) string {
	if m.wordsSkipped == 0 {
		return fmt.Sprintf("%d-word phrase", m.wordCount)
	}
	return fmt.Sprintf("%d-word phrase, skipped %d opening words", m.wordCount, m.wordsSkipped)
}

func similarityDetail(m similarityMatch) string {
	return fmt.Sprintf("%s similarity %.2f", m.dominant(), m.combined)
}
