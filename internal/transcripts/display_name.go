package transcripts

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// acronyms are slug words rendered fully upper-case in display names instead
// of title-cased.
var acronyms = map[string]struct{}{
	"ai":   {},
	"api":  {},
	"cli":  {},
	"cpu":  {},
	"css":  {},
	"db":   {},
	"gpu":  {},
	"html": {},
	"http": {},
	"id":   {},
	"io":   {},
	"js":   {},
	"sdk":  {},
	"sql":  {},
	"ui":   {},
	"url":  {},
	"ux":   {},
}

var titleCaser = cases.Title(language.English)

// DisplayName derives a human-readable chapter title from a kebab-case slug:
// "intro-to-sql" becomes "Intro To SQL".
func DisplayName(slug string) string {
	words := strings.Split(slug, "-")
	out := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		if _, ok := acronyms[strings.ToLower(word)]; ok {
			out = append(out, strings.ToUpper(word))
			continue
		}
		if word == strings.ToUpper(word) && len(word) <= 4 {
			// Short all-caps tokens stay as written.
			out = append(out, word)
			continue
		}
		out = append(out, titleCaser.String(word))
	}
	return strings.Join(out, " ")
}
