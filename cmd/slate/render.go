package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"slate/internal/align"
	"slate/internal/timecode"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func statusText(status align.Status, colorize bool) string {
	label := string(status)
	if !colorize {
		return label
	}
	switch status {
	case align.StatusMatched:
		return ansiGreen + label + ansiReset
	case align.StatusLowConfidence:
		return ansiYellow + label + ansiReset
	case align.StatusNotFound:
		return ansiRed + label + ansiReset
	default:
		return label
	}
}

// renderReport writes the per-chapter table followed by the paste-ready
// chapter list.
func renderReport(out io.Writer, report align.Report, colorize bool) {
	chapters := append([]align.ChapterResult(nil), report.Chapters...)
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].Chapter < chapters[j].Chapter
	})

	headers := []string{"Chapter", "Title", "Timestamp", "Status", "Confidence", "Method"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignLeft}
	rows := make([][]string, 0, len(chapters))
	for _, chapter := range chapters {
		timestamp, confidence, method := "-", "-", "-"
		if chapter.Primary != nil {
			timestamp = timecode.FormatMarker(chapter.Primary.Timestamp)
			confidence = strconv.Itoa(chapter.Primary.Confidence)
			method = chapter.Primary.Detail
		}
		rows = append(rows, []string{
			strconv.Itoa(chapter.Chapter),
			chapter.DisplayName,
			timestamp,
			statusText(chapter.Status, colorize),
			confidence,
			method,
		})
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))

	if strings.TrimSpace(report.Formatted) == "" {
		fmt.Fprintln(out, "No chapters could be placed.")
		return
	}
	fmt.Fprintln(out, "Chapter list:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.Formatted)
}
