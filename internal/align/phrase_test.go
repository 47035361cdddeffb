package align

import (
	"strings"
	"testing"
)

var phraseWords = strings.Fields("alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima")

func TestMatchOptionsOffsets(t *testing.T) {
	if got := (matchOptions{}).offsets(); got != [3]int{0, 1, 2} {
		t.Fatalf("default offsets = %v, want [0 1 2]", got)
	}
	wide := matchOptions{skipWords: collisionSkipWords, wideOffsets: true}
	if got := wide.offsets(); got != [3]int{15, 20, 25} {
		t.Fatalf("wide offsets = %v, want [15 20 25]", got)
	}
}

func TestFindPhrasePrefersLongestWindow(t *testing.T) {
	segments := []string{
		"unrelated chatter about nothing in particular",
		strings.Join(phraseWords[:3], " ") + " and then something else entirely",
		strings.Join(phraseWords[:10], " ") + " plus trailing context",
	}

	hit, ok := findPhrase(phraseWords, segments, matchOptions{})
	if !ok {
		t.Fatal("findPhrase() found no match")
	}
	if hit.segment != 2 {
		t.Fatalf("segment = %d, want 2 (longest window wins over earlier short hit)", hit.segment)
	}
	if hit.wordCount != 10 || hit.wordsSkipped != 0 {
		t.Fatalf("hit = %+v, want wordCount=10 wordsSkipped=0", hit)
	}
}

func TestFindPhraseSkipsOpeningWords(t *testing.T) {
	// Segment carries words 1..10 but never word 0, forcing the offset-1 pass.
	segments := []string{
		"completely different material",
		strings.Join(phraseWords[1:11], " "),
	}

	hit, ok := findPhrase(phraseWords, segments, matchOptions{})
	if !ok {
		t.Fatal("findPhrase() found no match")
	}
	if hit.segment != 1 || hit.wordsSkipped != 1 || hit.wordCount != 10 {
		t.Fatalf("hit = %+v, want segment=1 wordsSkipped=1 wordCount=10", hit)
	}
}

func TestFindPhraseRejectsShortPhrases(t *testing.T) {
	words := []string{"a", "b", "c"}
	segments := []string{"a b c d e f"}

	if _, ok := findPhrase(words, segments, matchOptions{}); ok {
		t.Fatal("findPhrase() matched a phrase below the minimum length")
	}
}

func TestFindPhraseHonorsExclusions(t *testing.T) {
	phrase := strings.Join(phraseWords[:10], " ")
	segments := []string{phrase, "filler text", phrase}

	opts := matchOptions{excluded: map[int]struct{}{0: {}}}
	hit, ok := findPhrase(phraseWords, segments, opts)
	if !ok {
		t.Fatal("findPhrase() found no match")
	}
	if hit.segment != 2 {
		t.Fatalf("segment = %d, want 2 (segment 0 excluded)", hit.segment)
	}
}

func TestFindPhraseAllKeepsMostPreferredHit(t *testing.T) {
	phrase := strings.Join(phraseWords[:10], " ")
	segments := []string{
		phrase + " with some continuation",
		strings.Join(phraseWords[:3], " ") + " then different words",
	}

	hits := findPhraseAll(phraseWords, segments, matchOptions{})
	if len(hits) != 2 {
		t.Fatalf("findPhraseAll() returned %d hits, want 2", len(hits))
	}
	if hits[0].wordCount != 10 {
		t.Fatalf("segment 0 wordCount = %d, want 10 (full window preferred)", hits[0].wordCount)
	}
	if hits[1].wordCount != 3 {
		t.Fatalf("segment 1 wordCount = %d, want 3", hits[1].wordCount)
	}
}

func TestBuildPhrase(t *testing.T) {
	if _, ok := buildPhrase(phraseWords, 9, 3); !ok {
		t.Fatal("buildPhrase rejected an in-range window")
	}
	if _, ok := buildPhrase(phraseWords, 10, 3); ok {
		t.Fatal("buildPhrase accepted a window past the end of the transcript")
	}
	if _, ok := buildPhrase([]string{"ab", "cd", "ef"}, 0, 3); ok {
		t.Fatal("buildPhrase accepted a phrase below minPhraseChars")
	}
}
