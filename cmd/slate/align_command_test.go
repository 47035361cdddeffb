package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"slate/internal/align"
	"slate/internal/testsupport"
)

func seedProject(t *testing.T, env cliTestEnv) {
	t.Helper()
	env.writeTranscript(t, "01-1-intro.txt",
		"Welcome along today we assemble the premium widget kit from scratch and more")
	env.writeTranscript(t, "02-1-inspection.txt",
		"Finally we inspect every seam under bright angled light for defects")
	env.writeSubtitle(t,
		testsupport.Cue{Start: 5, End: 9, Text: "Welcome along, today we assemble the premium widget kit from scratch."},
		testsupport.Cue{Start: 60, End: 64, Text: "Some mid-roll banter about coffee and weather patterns."},
		testsupport.Cue{Start: 95, End: 99, Text: "Finally we inspect every seam under bright angled light."},
	)
}

func TestAlignCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	seedProject(t, env)

	out, _, err := runCLI(t, env, "align", "--json")
	if err != nil {
		t.Fatalf("align --json: %v", err)
	}

	var report align.Report
	if decodeErr := json.Unmarshal([]byte(out), &report); decodeErr != nil {
		t.Fatalf("decode report: %v\noutput: %s", decodeErr, out)
	}
	if !report.Success {
		t.Fatalf("report not successful: %s", report.Error)
	}
	if len(report.Chapters) != 2 {
		t.Fatalf("got %d chapters, want 2", len(report.Chapters))
	}
	for _, chapter := range report.Chapters {
		if chapter.Status != align.StatusMatched {
			t.Fatalf("chapter %d status = %q, want matched", chapter.Chapter, chapter.Status)
		}
	}
	if report.Formatted != "0:05 Intro\n1:35 Inspection" {
		t.Fatalf("Formatted = %q", report.Formatted)
	}
}

func TestAlignCommandTableOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	seedProject(t, env)

	out, _, err := runCLI(t, env, "align")
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	requireContains(t, out, "Intro")
	requireContains(t, out, "Inspection")
	requireContains(t, out, "matched")
	requireContains(t, out, "Chapter list:")
	requireContains(t, out, "0:05 Intro")
}

func TestAlignCommandRecordsHistory(t *testing.T) {
	env := setupCLITestEnv(t)
	seedProject(t, env)

	if _, _, err := runCLI(t, env, "align", "--json"); err != nil {
		t.Fatalf("align: %v", err)
	}

	out, _, err := runCLI(t, env, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "final.srt")
}

func TestAlignCommandNoSave(t *testing.T) {
	env := setupCLITestEnv(t)
	seedProject(t, env)

	if _, _, err := runCLI(t, env, "align", "--json", "--no-save"); err != nil {
		t.Fatalf("align --no-save: %v", err)
	}

	out, _, err := runCLI(t, env, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No alignment runs recorded yet.")
}

func TestAlignCommandSubtitleOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeTranscript(t, "01-1-intro.txt",
		"Welcome along today we assemble the premium widget kit from scratch and more")

	override := filepath.Join(env.baseDir, "elsewhere.srt")
	content := testsupport.BuildSRT(testsupport.Cue{
		Start: 5, End: 9,
		Text: "Welcome along, today we assemble the premium widget kit from scratch.",
	})
	if err := os.WriteFile(override, []byte(content), 0o644); err != nil {
		t.Fatalf("write override subtitle: %v", err)
	}

	out, _, err := runCLI(t, env, "align", "--json", "--subtitle", override)
	if err != nil {
		t.Fatalf("align --subtitle: %v", err)
	}

	var report align.Report
	if decodeErr := json.Unmarshal([]byte(out), &report); decodeErr != nil {
		t.Fatalf("decode report: %v", decodeErr)
	}
	if !report.Success || report.Formatted != "0:05 Intro" {
		t.Fatalf("report = success %v formatted %q", report.Success, report.Formatted)
	}
}

func TestChaptersCommandListsSources(t *testing.T) {
	env := setupCLITestEnv(t)
	seedProject(t, env)

	out, _, err := runCLI(t, env, "chapters")
	if err != nil {
		t.Fatalf("chapters: %v", err)
	}
	requireContains(t, out, "Intro")
	requireContains(t, out, "inspection")
	requireContains(t, out, "Inspection")
}

func TestHistoryListEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No alignment runs recorded yet.")
}
