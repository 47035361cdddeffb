package align

import (
	"math"
	"sort"
	"strings"

	"slate/internal/subtitle"
	"slate/internal/transcripts"
)

// resolver holds the immutable inputs shared by every pass of one alignment
// request: parsed segments, their normalized text, and the normalized word
// sequences of each chapter transcript.
type resolver struct {
	segments []subtitle.Segment
	norm     []string
	sources  []transcripts.ChapterSource
	words    [][]string
	scorer   *similarityScorer
}

func newResolver(segments []subtitle.Segment, sources []transcripts.ChapterSource) *resolver {
	norm := make([]string, len(segments))
	for i, segment := range segments {
		norm[i] = normalizeText(segment.Text)
	}
	words := make([][]string, len(sources))
	for i, source := range sources {
		words[i] = normalizeWords(source.Transcript)
	}
	return &resolver{
		segments: segments,
		norm:     norm,
		sources:  sources,
		words:    words,
		scorer:   newSimilarityScorer(),
	}
}

// run executes the primary pass followed by the two correction passes. Each
// pass takes the previous result set and returns the next; collision
// resolution always runs before the order-consistency check.
func (r *resolver) run() []ChapterResult {
	results := r.primaryPass()
	results = r.resolveCollisions(results)
	return applyOrderPenalty(results)
}

// primaryPass matches every chapter independently over the entire segment
// sequence. The search is deliberately not restricted to segments after the
// previous chapter's match: edited videos reorder chapters.
func (r *resolver) primaryPass() []ChapterResult {
	results := make([]ChapterResult, len(r.sources))
	for i, source := range r.sources {
		primary := r.matchChapter(i, matchOptions{})
		result := ChapterResult{
			Chapter:      source.Chapter,
			Name:         source.Name,
			DisplayName:  source.DisplayName,
			Status:       statusFor(primary),
			Primary:      primary,
			Alternatives: []MatchCandidate{},
		}
		if primary != nil {
			result.Alternatives = r.alternatives(i, primary)
		}
		results[i] = result
	}
	return results
}

// matchChapter runs the phrase matcher and, only on a miss, the similarity
// matcher for one chapter under the given options.
func (r *resolver) matchChapter(source int, opts matchOptions) *MatchCandidate {
	words := r.words[source]
	if hit, ok := findPhrase(words, r.norm, opts); ok {
		candidate := r.candidate(hit.segment, KindExactPhrase, phraseConfidence(hit), phraseDetail(hit))
		return &candidate
	}
	if hit, ok := findSimilarity(r.scorer, words, r.norm, opts); ok {
		candidate := r.candidate(hit.segment, KindSimilarity, similarityConfidence(hit.combined), similarityDetail(hit))
		return &candidate
	}
	return nil
}

// alternatives collects up to maxAlternatives extra candidates for human
// review by running both matchers in find-all mode. Candidates within
// altMinGapSeconds of the primary are redundant and dropped; candidates
// beyond altWindowSeconds are not locally relevant.
func (r *resolver) alternatives(source int, primary *MatchCandidate) []MatchCandidate {
	words := r.words[source]
	opts := matchOptions{}
	phraseHits := findPhraseAll(words, r.norm, opts)
	similarityHits := make(map[int]similarityMatch)
	for _, hit := range findSimilarityAll(r.scorer, words, r.norm, opts) {
		similarityHits[hit.segment] = hit
	}

	candidates := make([]MatchCandidate, 0, len(phraseHits)+len(similarityHits))
	for segment := range r.segments {
		if segment == primary.SegmentIndex {
			continue
		}
		var candidate MatchCandidate
		if hit, ok := phraseHits[segment]; ok {
			candidate = r.candidate(segment, KindExactPhrase, phraseConfidence(hit), phraseDetail(hit))
		} else if hit, ok := similarityHits[segment]; ok {
			candidate = r.candidate(segment, KindSimilarity, similarityConfidence(hit.combined), similarityDetail(hit))
		} else {
			continue
		}
		gap := math.Abs(candidate.Timestamp - primary.Timestamp)
		if gap <= altMinGapSeconds || gap > altWindowSeconds {
			continue
		}
		candidates = append(candidates, candidate)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].SegmentIndex < candidates[j].SegmentIndex
	})
	if len(candidates) > maxAlternatives {
		candidates = candidates[:maxAlternatives]
	}
	return candidates
}

// resolveCollisions settles cases where several chapters claim the same
// segment. The lowest-numbered chapter keeps its match; every other claimant
// is retried with all currently-claimed segments excluded and the opening
// boilerplate skipped. Claimants that still find nothing keep their contested
// candidate, demoted by collisionPenalty and flagged for review.
func (r *resolver) resolveCollisions(results []ChapterResult) []ChapterResult {
	out := append([]ChapterResult(nil), results...)

	claimants := make(map[int][]int)
	for i, result := range out {
		if result.Primary == nil {
			continue
		}
		claimants[result.Primary.SegmentIndex] = append(claimants[result.Primary.SegmentIndex], i)
	}

	claimed := make(map[int]struct{})
	contested := make([]int, 0, len(claimants))
	for segment, indices := range claimants {
		claimed[segment] = struct{}{}
		if len(indices) > 1 {
			contested = append(contested, segment)
		}
	}
	sort.Ints(contested)

	for _, segment := range contested {
		indices := claimants[segment]
		sort.Slice(indices, func(i, j int) bool {
			if out[indices[i]].Chapter != out[indices[j]].Chapter {
				return out[indices[i]].Chapter < out[indices[j]].Chapter
			}
			return indices[i] < indices[j]
		})
		// indices[0] is the keeper; retry the rest.
		for _, idx := range indices[1:] {
			retry := r.matchChapter(idx, matchOptions{
				skipWords:   collisionSkipWords,
				wideOffsets: true,
				excluded:    claimed,
			})
			if retry != nil {
				out[idx].Primary = retry
				out[idx].Status = statusFor(retry)
				claimed[retry.SegmentIndex] = struct{}{}
				continue
			}
			demoted := *out[idx].Primary
			demoted.Confidence = penalize(demoted.Confidence, collisionPenalty)
			demoted.Detail = demoted.Detail + "; unresolved collision"
			out[idx].Primary = &demoted
			out[idx].Status = StatusLowConfidence
		}
	}
	return out
}

// applyOrderPenalty walks the resolved chapters in timestamp order tracking
// the maximum chapter number seen so far. A chapter numbered below that
// running maximum landed earlier in time than a higher-numbered chapter and
// takes orderPenalty. Edited videos legitimately reorder chapters; the
// penalty surfaces the contradiction instead of hiding it.
func applyOrderPenalty(results []ChapterResult) []ChapterResult {
	out := append([]ChapterResult(nil), results...)

	order := make([]int, 0, len(out))
	for i, result := range out {
		if result.Primary != nil {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := out[order[i]], out[order[j]]
		if a.Primary.Timestamp != b.Primary.Timestamp {
			return a.Primary.Timestamp < b.Primary.Timestamp
		}
		return a.Chapter < b.Chapter
	})

	maxChapter := 0
	for _, idx := range order {
		result := out[idx]
		if result.Chapter < maxChapter {
			demoted := *result.Primary
			demoted.Confidence = penalize(demoted.Confidence, orderPenalty)
			out[idx].Primary = &demoted
			if demoted.Confidence < lowConfidenceThreshold {
				out[idx].Status = StatusLowConfidence
			}
			continue
		}
		if result.Chapter > maxChapter {
			maxChapter = result.Chapter
		}
	}
	return out
}

// candidate materializes a MatchCandidate for a segment hit.
func (r *resolver) candidate(segment int, kind MatchKind, confidence int, detail string) MatchCandidate {
	seg := r.segments[segment]
	return MatchCandidate{
		SegmentIndex: segment,
		Timestamp:    seg.Start,
		Kind:         kind,
		Confidence:   confidence,
		Preview:      preview(seg.Text),
		Detail:       detail,
	}
}

// preview bounds segment text for human review.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewMaxLength {
		return text
	}
	return strings.TrimSpace(string(runes[:previewMaxLength])) + "..."
}
