package transcripts_test

import (
	"os"
	"path/filepath"
	"testing"

	"slate/internal/transcripts"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01-1-intro.txt", "Welcome to this course on databases")
	writeFile(t, dir, "01-2-intro.txt", "Second take, ignored")
	writeFile(t, dir, "02-1-widgets.txt", "Widgets are everywhere")
	writeFile(t, dir, "05-1-widgets-deep-dive.txt", "Deep dive content")
	writeFile(t, dir, "02-1-widgets-chapter.txt", "combined artifact, excluded")
	writeFile(t, dir, "03-1-empty.txt", "   \n  ")
	writeFile(t, dir, "notes.txt", "not a transcript")
	writeFile(t, dir, "7-1-badchapter.txt", "single digit chapter, excluded")

	sources, err := transcripts.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(sources) != 3 {
		t.Fatalf("expected 3 sources, got %d: %+v", len(sources), sources)
	}
	if sources[0].Chapter != 1 || sources[0].Name != "intro" {
		t.Fatalf("unexpected first source: %+v", sources[0])
	}
	if sources[0].Transcript != "Welcome to this course on databases" {
		t.Fatalf("expected first take to win, got %q", sources[0].Transcript)
	}
	if sources[1].Chapter != 2 || sources[1].Name != "widgets" {
		t.Fatalf("unexpected second source: %+v", sources[1])
	}
	if sources[2].Chapter != 5 || sources[2].Name != "widgets-deep-dive" {
		t.Fatalf("unexpected third source: %+v", sources[2])
	}
	if sources[2].DisplayName != "Widgets Deep Dive" {
		t.Fatalf("unexpected display name: %q", sources[2].DisplayName)
	}
}

func TestLoadDirFirstNonEmptyTakeWins(t *testing.T) {
	dir := t.TempDir()
	// The lexicographically first take is empty, so the second claims the pair.
	writeFile(t, dir, "04-1-queries.txt", "")
	writeFile(t, dir, "04-2-queries.txt", "Query planner walkthrough")

	sources, err := transcripts.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(sources))
	}
	if sources[0].Transcript != "Query planner walkthrough" {
		t.Fatalf("expected non-empty take, got %q", sources[0].Transcript)
	}
}

func TestLoadDirSameChapterDifferentNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "02-1-setup.txt", "setup take")
	writeFile(t, dir, "02-1-teardown.txt", "teardown take")

	sources, err := transcripts.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources for distinct names, got %d", len(sources))
	}
	if sources[0].Name != "setup" || sources[1].Name != "teardown" {
		t.Fatalf("expected name-sorted sources, got %+v", sources)
	}
}

func TestLoadDirMissingDirectory(t *testing.T) {
	if _, err := transcripts.LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		slug string
		want string
	}{
		{"intro", "Intro"},
		{"widgets-deep-dive", "Widgets Deep Dive"},
		{"intro-to-sql", "Intro To SQL"},
		{"building-an-api", "Building An API"},
		{"ai-assisted-ui", "AI Assisted UI"},
		{"sdk-setup", "SDK Setup"},
		{"double--hyphen", "Double Hyphen"},
	}
	for _, tc := range cases {
		if got := transcripts.DisplayName(tc.slug); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.slug, got, tc.want)
		}
	}
}
