package align

import (
	"regexp"
	"strings"
)

// punctuationPattern strips everything but lowercase alphanumerics and
// whitespace after lowering.
var punctuationPattern = regexp.MustCompile(`[^a-z0-9\s]+`)

// normalizeText lowercases, strips punctuation, and collapses whitespace so
// transcript and subtitle text compare on words alone.
func normalizeText(text string) string {
	lowered := strings.ToLower(text)
	stripped := punctuationPattern.ReplaceAllString(lowered, "")
	return strings.Join(strings.Fields(stripped), " ")
}

// normalizeWords returns the normalized word sequence of text.
func normalizeWords(text string) []string {
	normalized := normalizeText(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
