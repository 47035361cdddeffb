package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slate/internal/config"
	"slate/internal/timecode"
)

// WriteTranscript writes a per-chapter transcript under the configured
// transcript directory using the NN-take-name.txt naming scheme.
func WriteTranscript(t testing.TB, cfg *config.Config, chapter, take int, name, text string) string {
	t.Helper()

	dir := cfg.TranscriptDir(cfg.Paths.ProjectDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir transcript dir: %v", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%02d-%d-%s.txt", chapter, take, name))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write transcript %s: %v", path, err)
	}
	return path
}

// Cue is one subtitle entry used to build SRT fixtures.
type Cue struct {
	Start float64
	End   float64
	Text  string
}

// BuildSRT renders cues as an SRT document with sequential indexes.
func BuildSRT(cues ...Cue) string {
	var b strings.Builder
	for i, cue := range cues {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1,
			timecode.FormatSRT(cue.Start),
			timecode.FormatSRT(cue.End),
			cue.Text)
	}
	return b.String()
}

// WriteSubtitle writes SRT content to the first configured candidate path.
func WriteSubtitle(t testing.TB, cfg *config.Config, content string) string {
	t.Helper()

	candidates := cfg.SubtitleCandidates(cfg.Paths.ProjectDir)
	if len(candidates) == 0 {
		t.Fatal("config has no subtitle candidates")
	}
	path := candidates[0]
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir subtitle dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write subtitle %s: %v", path, err)
	}
	return path
}
