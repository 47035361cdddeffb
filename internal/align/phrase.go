package align

import "strings"

// phraseWordCounts are the window sizes tried per offset, longest first so a
// longer literal match always beats a shorter one.
var phraseWordCounts = [...]int{10, 7, 5, 3}

// phraseMatch records a literal containment hit of a transcript word window
// inside a subtitle segment.
type phraseMatch struct {
	segment      int
	wordCount    int
	wordsSkipped int
}

// matchOptions tunes a matcher pass. The collision-resolution retry widens
// the offset spread and excludes already-claimed segments.
type matchOptions struct {
	skipWords   int
	wideOffsets bool
	excluded    map[int]struct{}
}

func (o matchOptions) offsets() [3]int {
	if o.wideOffsets {
		return [3]int{o.skipWords, o.skipWords + 5, o.skipWords + 10}
	}
	return [3]int{o.skipWords, o.skipWords + 1, o.skipWords + 2}
}

func (o matchOptions) isExcluded(segment int) bool {
	_, ok := o.excluded[segment]
	return ok
}

// findPhrase performs the greedy deterministic phrase search: smallest offset
// first, then longest window, scanning segments in file order and returning
// on the first containment hit. The iteration order is part of the matching
// contract; callers depend on the tie-break, not just on correctness.
func findPhrase(words []string, normSegments []string, opts matchOptions) (phraseMatch, bool) {
	for _, offset := range opts.offsets() {
		if offset >= len(words) {
			continue
		}
		for _, wordCount := range phraseWordCounts {
			phrase, ok := buildPhrase(words, offset, wordCount)
			if !ok {
				continue
			}
			for i, segment := range normSegments {
				if opts.isExcluded(i) {
					continue
				}
				if strings.Contains(segment, phrase) {
					return phraseMatch{segment: i, wordCount: wordCount, wordsSkipped: offset}, true
				}
			}
		}
	}
	return phraseMatch{}, false
}

// findPhraseAll collects one hit per segment across every (offset, window)
// combination, visiting combinations in the same preference order as
// findPhrase so each segment keeps its most-preferred hit.
func findPhraseAll(words []string, normSegments []string, opts matchOptions) map[int]phraseMatch {
	hits := make(map[int]phraseMatch)
	for _, offset := range opts.offsets() {
		if offset >= len(words) {
			continue
		}
		for _, wordCount := range phraseWordCounts {
			phrase, ok := buildPhrase(words, offset, wordCount)
			if !ok {
				continue
			}
			for i, segment := range normSegments {
				if opts.isExcluded(i) {
					continue
				}
				if _, seen := hits[i]; seen {
					continue
				}
				if strings.Contains(segment, phrase) {
					hits[i] = phraseMatch{segment: i, wordCount: wordCount, wordsSkipped: offset}
				}
			}
		}
	}
	return hits
}

// buildPhrase joins wordCount words starting at offset. Phrases shorter than
// minPhraseChars are rejected to avoid spurious short-string hits.
func buildPhrase(words []string, offset, wordCount int) (string, bool) {
	if offset+wordCount > len(words) {
		return "", false
	}
	phrase := strings.Join(words[offset:offset+wordCount], " ")
	if len(phrase) < minPhraseChars {
		return "", false
	}
	return phrase, true
}
