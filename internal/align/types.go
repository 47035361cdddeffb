package align

// MatchKind classifies how a chapter was linked to a subtitle segment.
type MatchKind string

const (
	// KindExactPhrase marks a literal substring hit of a normalized word window.
	KindExactPhrase MatchKind = "exact_phrase"
	// KindPartialWords marks a scattered word-level match. No matcher produces
	// it today; the kind and its confidence rule are kept for forward
	// compatibility of stored reports.
	KindPartialWords MatchKind = "partial_words"
	// KindSimilarity marks a fuzzy string-similarity match.
	KindSimilarity MatchKind = "similarity"
)

// Status is the per-chapter outcome of an alignment pass.
type Status string

const (
	StatusMatched       Status = "matched"
	StatusLowConfidence Status = "low_confidence"
	StatusNotFound      Status = "not_found"
)

// MatchCandidate is a scored hypothesis linking a chapter to a subtitle
// segment. SegmentIndex is the position within the parsed segment sequence,
// not the cue's own ordinal.
type MatchCandidate struct {
	SegmentIndex int       `json:"segment_index"`
	Timestamp    float64   `json:"timestamp_seconds"`
	Kind         MatchKind `json:"match_kind"`
	Confidence   int       `json:"confidence"`
	Preview      string    `json:"matched_text_preview"`
	Detail       string    `json:"method_detail"`
}

// ChapterResult is the final output unit, one per chapter source.
type ChapterResult struct {
	Chapter      int              `json:"chapter_number"`
	Name         string           `json:"name"`
	DisplayName  string           `json:"display_name"`
	Status       Status           `json:"status"`
	Primary      *MatchCandidate  `json:"primary,omitempty"`
	Alternatives []MatchCandidate `json:"alternatives"`
}

// Report is the result of one full alignment pass.
//
// Formatted is the literal text a human pastes as a video-platform chapter
// list: one "{marker} {display name}" line per chapter with a resolved
// timestamp, sorted by timestamp.
type Report struct {
	Success   bool            `json:"success"`
	Chapters  []ChapterResult `json:"chapters"`
	Formatted string          `json:"formatted"`
	Error     string          `json:"error,omitempty"`
}

// Calibration constants. These values were tuned against real recordings and
// are preserved as-is; behavioral parity matters more than re-derivation.
const (
	// lowConfidenceThreshold separates matched from low_confidence results.
	lowConfidenceThreshold = 70
	// similarityGate is the hard floor on the combined similarity score.
	similarityGate = 0.6
	// searchWindowWords bounds the chapter-opening text used for similarity.
	searchWindowWords = 20
	// collisionSkipWords skips generic chapter-opening boilerplate on retry.
	collisionSkipWords = 15
	// collisionPenalty and orderPenalty apply to unresolved collisions and
	// out-of-order chapters respectively; confidenceFloor bounds both.
	collisionPenalty = 30
	orderPenalty     = 20
	confidenceFloor  = 10
	// maxAlternatives caps the review list per chapter; alternatives closer
	// than altMinGapSeconds to the primary are redundant and ones beyond
	// altWindowSeconds are not locally relevant.
	maxAlternatives   = 5
	altMinGapSeconds  = 5.0
	altWindowSeconds  = 60.0
	minPhraseChars    = 10
	previewMaxLength  = 80
	partialWordsScore = 50
)

func statusFor(primary *MatchCandidate) Status {
	switch {
	case primary == nil:
		return StatusNotFound
	case primary.Confidence < lowConfidenceThreshold:
		return StatusLowConfidence
	default:
		return StatusMatched
	}
}
