package subtitle

import (
	"regexp"
	"strconv"
	"strings"

	"slate/internal/timecode"
)

// Segment is one timed cue from the finished video's subtitle track.
type Segment struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// timingPattern matches an SRT cue timing line. Both comma and period are
// accepted before the milliseconds since machine-generated files vary.
var timingPattern = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}[,.]\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}[,.]\d{3})$`)

// Parse reads SRT content into an ordered slice of segments.
//
// Blocks are split on blank lines. A block is accepted only when it has at
// least three non-empty lines, its first line is an integer index, and its
// second line is a timing line; everything after the timing line is joined
// with single spaces into the cue text. Malformed blocks are skipped without
// error: subtitle files are machine generated and minor irregularities are
// expected. File order is preserved.
func Parse(content string) []Segment {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	blocks := strings.Split(content, "\n\n")

	segments := make([]Segment, 0, len(blocks))
	for _, block := range blocks {
		lines := nonEmptyLines(block)
		if len(lines) < 3 {
			continue
		}
		index, err := strconv.Atoi(lines[0])
		if err != nil {
			continue
		}
		timing := timingPattern.FindStringSubmatch(lines[1])
		if timing == nil {
			continue
		}
		segments = append(segments, Segment{
			Index: index,
			Start: timecode.ParseSRT(timing[1]),
			End:   timecode.ParseSRT(timing[2]),
			Text:  strings.Join(lines[2:], " "),
		})
	}
	return segments
}

func nonEmptyLines(block string) []string {
	raw := strings.Split(block, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
