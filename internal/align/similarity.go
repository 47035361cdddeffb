package align

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// combined score weights. Trigram overlap carries the most signal on
// transcript text; the edit-distance style measures keep it honest.
const (
	trigramWeight = 0.4
	jaroWeight    = 0.3
	diceWeight    = 0.3
)

// similarityMatch is a fuzzy hit on a single segment with its component and
// combined scores.
type similarityMatch struct {
	segment  int
	trigram  float64
	jaro     float64
	dice     float64
	combined float64
}

// dominant names the individually highest measure with a fixed tie-break
// order (trigram, then jaro, then dice); "combined" when all three tie. The
// label is purely cosmetic and feeds the human-readable method detail.
func (m similarityMatch) dominant() string {
	if m.trigram == m.jaro && m.jaro == m.dice {
		return "combined"
	}
	best, name := m.trigram, "trigram"
	if m.jaro > best {
		best, name = m.jaro, "jaro"
	}
	if m.dice > best {
		name = "dice"
	}
	return name
}

// similarityScorer computes the three independent 0-1 measures between a
// chapter's opening text and segment text.
type similarityScorer struct {
	trigram *metrics.Jaccard
	jaro    *metrics.Jaro
	dice    *metrics.SorensenDice
}

func newSimilarityScorer() *similarityScorer {
	trigram := metrics.NewJaccard()
	trigram.NgramSize = 3
	return &similarityScorer{
		trigram: trigram,
		jaro:    metrics.NewJaro(),
		dice:    metrics.NewSorensenDice(),
	}
}

func (s *similarityScorer) score(segment int, search, segmentText string) similarityMatch {
	m := similarityMatch{
		segment: segment,
		trigram: strutil.Similarity(search, segmentText, s.trigram),
		jaro:    strutil.Similarity(search, segmentText, s.jaro),
		dice:    strutil.Similarity(search, segmentText, s.dice),
	}
	m.combined = trigramWeight*m.trigram + jaroWeight*m.jaro + diceWeight*m.dice
	return m
}

// searchText builds the normalized search string: the first searchWindowWords
// words starting at the skip offset.
func searchText(words []string, skip int) string {
	if skip >= len(words) {
		return ""
	}
	end := skip + searchWindowWords
	if end > len(words) {
		end = len(words)
	}
	return strings.Join(words[skip:end], " ")
}

// findSimilarity scores every non-excluded segment and returns the best one
// whose combined score clears the gate. The gate is a hard filter, not a soft
// penalty: a sub-threshold segment never becomes a candidate.
func findSimilarity(scorer *similarityScorer, words []string, normSegments []string, opts matchOptions) (similarityMatch, bool) {
	search := searchText(words, opts.skipWords)
	if search == "" {
		return similarityMatch{}, false
	}
	best := similarityMatch{segment: -1}
	for i, segment := range normSegments {
		if opts.isExcluded(i) || segment == "" {
			continue
		}
		m := scorer.score(i, search, segment)
		if m.combined < similarityGate {
			continue
		}
		if best.segment < 0 || m.combined > best.combined {
			best = m
		}
	}
	if best.segment < 0 {
		return similarityMatch{}, false
	}
	return best, true
}

// findSimilarityAll returns every segment clearing the gate, in segment order.
func findSimilarityAll(scorer *similarityScorer, words []string, normSegments []string, opts matchOptions) []similarityMatch {
	search := searchText(words, opts.skipWords)
	if search == "" {
		return nil
	}
	var hits []similarityMatch
	for i, segment := range normSegments {
		if opts.isExcluded(i) || segment == "" {
			continue
		}
		m := scorer.score(i, search, segment)
		if m.combined < similarityGate {
			continue
		}
		hits = append(hits, m)
	}
	return hits
}
