package transcripts

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ChapterSource is one candidate chapter extracted from recording-time
// transcripts. At most one source exists per (Chapter, Name) pair; when a
// chapter was recorded in several takes the first file in lexicographic order
// with non-empty content wins.
type ChapterSource struct {
	Chapter     int
	Name        string
	DisplayName string
	Transcript  string
}

// fileNamePattern matches recording transcript files: {chapter}-{take}-{name}.txt
// with a two-digit chapter number and a numeric take sequence.
var fileNamePattern = regexp.MustCompile(`^(\d{2})-(\d+)-(.+)\.txt$`)

// combinedFileSuffix marks merged per-chapter artifacts written by the
// recording tooling; they duplicate the takes and must not be matched.
const combinedFileSuffix = "-chapter.txt"

// LoadDir reads every recording transcript in dir and returns one source per
// (chapter, name) pair, sorted by chapter number then name. Files that do not
// match the naming pattern, combined *-chapter.txt artifacts, and files with
// empty content are skipped.
func LoadDir(dir string) ([]ChapterSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read transcript directory %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	type groupKey struct {
		chapter int
		name    string
	}
	seen := make(map[groupKey]struct{})
	sources := make([]ChapterSource, 0, len(names))

	for _, name := range names {
		chapter, slug, ok := parseFileName(name)
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read transcript %q: %w", name, err)
		}
		content := strings.TrimSpace(string(data))
		if content == "" {
			continue
		}
		key := groupKey{chapter: chapter, name: slug}
		if _, dup := seen[key]; dup {
			// Later takes for the same chapter are ignored for matching.
			continue
		}
		seen[key] = struct{}{}
		sources = append(sources, ChapterSource{
			Chapter:     chapter,
			Name:        slug,
			DisplayName: DisplayName(slug),
			Transcript:  content,
		})
	}

	sort.Slice(sources, func(i, j int) bool {
		if sources[i].Chapter != sources[j].Chapter {
			return sources[i].Chapter < sources[j].Chapter
		}
		return sources[i].Name < sources[j].Name
	})
	return sources, nil
}

func parseFileName(name string) (chapter int, slug string, ok bool) {
	if strings.HasSuffix(name, combinedFileSuffix) {
		return 0, "", false
	}
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, "", false
	}
	chapter, err := strconv.Atoi(m[1])
	if err != nil || chapter < 1 || chapter > 99 {
		return 0, "", false
	}
	return chapter, m[3], true
}
