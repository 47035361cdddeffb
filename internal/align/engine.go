package align

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"slate/internal/logging"
	"slate/internal/subtitle"
	"slate/internal/timecode"
	"slate/internal/transcripts"
)

// Extract runs one full alignment pass: parse the subtitle track, match every
// chapter, resolve collisions, and apply the order-consistency penalty.
//
// Expected data irregularities never surface as errors: a chapter that cannot
// be matched is reported as not_found and the call still succeeds. Only
// request-level absences (no parseable segments, no chapter sources) fail the
// report. Identical inputs always produce identical reports.
func Extract(subtitleContent string, sources []transcripts.ChapterSource) Report {
	segments := subtitle.Parse(subtitleContent)
	if len(segments) == 0 {
		return Report{
			Chapters: []ChapterResult{},
			Error:    "subtitle track contains no parseable segments",
		}
	}
	if len(sources) == 0 {
		return Report{
			Chapters: []ChapterResult{},
			Error:    "no chapter transcripts available",
		}
	}

	results := newResolver(segments, sources).run()
	return Report{
		Success:   true,
		Chapters:  results,
		Formatted: FormatChapterList(results),
	}
}

// FormatChapterList renders the paste-ready chapter list: one
// "{marker} {display name}" line per chapter with a resolved timestamp,
// sorted by timestamp ascending.
func FormatChapterList(results []ChapterResult) string {
	resolved := make([]ChapterResult, 0, len(results))
	for _, result := range results {
		if result.Status == StatusNotFound || result.Primary == nil {
			continue
		}
		resolved = append(resolved, result)
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		if resolved[i].Primary.Timestamp != resolved[j].Primary.Timestamp {
			return resolved[i].Primary.Timestamp < resolved[j].Primary.Timestamp
		}
		return resolved[i].Chapter < resolved[j].Chapter
	})

	lines := make([]string, 0, len(resolved))
	for _, result := range resolved {
		lines = append(lines, fmt.Sprintf("%s %s", timecode.FormatMarker(result.Primary.Timestamp), result.DisplayName))
	}
	return strings.Join(lines, "\n")
}

// Engine wraps Extract with component logging, mirroring how workflow stages
// report their decisions.
type Engine struct {
	logger *slog.Logger
}

// New constructs an alignment engine.
func New(logger *slog.Logger) *Engine {
	e := &Engine{}
	e.SetLogger(logger)
	return e
}

// SetLogger updates the engine's logging destination.
func (e *Engine) SetLogger(logger *slog.Logger) {
	e.logger = logging.NewComponentLogger(logger, "align")
}

// Extract runs one alignment pass and logs a per-request summary.
func (e *Engine) Extract(ctx context.Context, subtitleContent string, sources []transcripts.ChapterSource) Report {
	logger := logging.WithContext(ctx, e.logger)
	report := Extract(subtitleContent, sources)
	if !report.Success {
		logger.Warn("alignment request failed",
			logging.String("reason", report.Error),
			logging.Int("chapter_count", len(sources)),
		)
		return report
	}

	var matched, lowConfidence, notFound int
	for _, chapter := range report.Chapters {
		switch chapter.Status {
		case StatusMatched:
			matched++
		case StatusLowConfidence:
			lowConfidence++
		case StatusNotFound:
			notFound++
		}
	}
	logger.Info("alignment complete",
		logging.Int("chapter_count", len(report.Chapters)),
		logging.Int("matched", matched),
		logging.Int("low_confidence", lowConfidence),
		logging.Int("not_found", notFound),
	)
	return report
}
